package catalog

import "net/http"

type modelNotFoundError struct{ id string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.id }

func (e modelNotFoundError) StatusCode() int { return http.StatusNotFound }

// ErrModelNotFound returns an error for an id that is not in the dataset.
func ErrModelNotFound(id string) error { return modelNotFoundError{id: id} }

// IsModelNotFound reports whether the error indicates a missing model id.
func IsModelNotFound(err error) bool {
	_, ok := err.(modelNotFoundError)
	return ok
}

// invalidInputError signals a malformed query parameter (400).
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

func (e invalidInputError) StatusCode() int { return http.StatusBadRequest }

// ErrInvalidInput constructs an invalidInputError.
func ErrInvalidInput(msg string) error { return invalidInputError{msg: msg} }

// IsInvalidInput reports whether err was caused by caller input.
func IsInvalidInput(err error) bool {
	_, ok := err.(invalidInputError)
	return ok
}

// notReadyError is returned while no dataset has been loaded (503).
type notReadyError struct{}

func (notReadyError) Error() string { return "dataset not loaded" }

func (notReadyError) StatusCode() int { return http.StatusServiceUnavailable }

// IsNotReady reports whether err means no dataset is loaded yet.
func IsNotReady(err error) bool {
	_, ok := err.(notReadyError)
	return ok
}
