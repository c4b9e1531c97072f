// Package fsutil holds the small file helpers shared by the service and the
// maintenance commands.
package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// ExpandHome expands a leading '~' to the user's home directory.
// "~user" forms are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// Resolve expands '~' and returns an absolute, cleaned path.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	p, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(p)
}

// PathExists reports whether path exists. Errors other than "not exist"
// (permissions, for instance) count as existing.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// ReadFile reads path after expanding '~'.
func ReadFile(path string) ([]byte, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

// WriteAtomic replaces path with data so readers never observe a partial
// file. Missing parent directories are created.
func WriteAtomic(path string, data []byte) error {
	p, err := ExpandHome(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p); !PathExists(dir) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return atomic.WriteFile(p, bytes.NewReader(data))
}
