// Package leads validates "test your LLM" enquiries and hands accepted ones
// to a Sink.
package leads

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"llmboard/pkg/types"
)

// Accepted is the status reported for a stored lead.
const Accepted = "accepted"

var (
	// Models lists the accepted values of the model field.
	Models = []string{"custom", "claude", "gpt", "llama", "other"}
	// UseCases lists the accepted values of the useCase field.
	UseCases = []string{"content", "customer", "coding", "research", "chatbot", "other"}
)

// maxMessage bounds the free-text message.
const maxMessage = 4000

var leadsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "llmboard",
		Subsystem: "leads",
		Name:      "accepted_total",
		Help:      "Accepted lead submissions",
	},
	[]string{"use_case"},
)

func init() {
	prometheus.MustRegister(leadsTotal)
}

// Lead is an accepted submission.
type Lead struct {
	ID         string
	Request    types.LeadRequest
	ReceivedAt time.Time
}

// ValidationError reports a rejected field. It maps to 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string { return e.Field + ": " + e.Reason }

// StatusCode implements the HTTP layer's status mapping.
func (e ValidationError) StatusCode() int { return http.StatusBadRequest }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}

// Normalize trims every field and lower-cases the enumerations.
func Normalize(req types.LeadRequest) types.LeadRequest {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Model = strings.ToLower(strings.TrimSpace(req.Model))
	req.UseCase = strings.ToLower(strings.TrimSpace(req.UseCase))
	req.Message = strings.TrimSpace(req.Message)
	return req
}

// Validate checks a normalized request.
func Validate(req types.LeadRequest) error {
	if req.FirstName == "" {
		return ValidationError{Field: "firstName", Reason: "is required"}
	}
	if req.LastName == "" {
		return ValidationError{Field: "lastName", Reason: "is required"}
	}
	if req.Email == "" {
		return ValidationError{Field: "email", Reason: "is required"}
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	if req.Model != "" && !oneOf(req.Model, Models) {
		return ValidationError{Field: "model", Reason: "must be one of " + strings.Join(Models, ", ")}
	}
	if req.UseCase != "" && !oneOf(req.UseCase, UseCases) {
		return ValidationError{Field: "useCase", Reason: "must be one of " + strings.Join(UseCases, ", ")}
	}
	if len(req.Message) > maxMessage {
		return ValidationError{Field: "message", Reason: "is too long"}
	}
	return nil
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Sink receives accepted leads. Implementations must be safe for concurrent use.
type Sink interface {
	Store(ctx context.Context, l Lead) error
}

// Intake validates submissions and forwards them to a Sink.
type Intake struct {
	sink Sink
	now  func() time.Time
}

// NewIntake returns an Intake writing to sink.
func NewIntake(sink Sink) *Intake {
	return &Intake{sink: sink, now: time.Now}
}

// Submit normalizes and validates req, assigns an id and stores it.
func (in *Intake) Submit(ctx context.Context, req types.LeadRequest) (types.LeadResponse, error) {
	req = Normalize(req)
	if err := Validate(req); err != nil {
		return types.LeadResponse{}, err
	}
	l := Lead{ID: uuid.NewString(), Request: req, ReceivedAt: in.now().UTC()}
	if err := in.sink.Store(ctx, l); err != nil {
		return types.LeadResponse{}, err
	}
	useCase := req.UseCase
	if useCase == "" {
		useCase = "unspecified"
	}
	leadsTotal.WithLabelValues(useCase).Inc()
	return types.LeadResponse{ID: l.ID, Status: Accepted}, nil
}

// LogSink writes each lead as a structured log line. Contact details are
// reduced to the email domain.
type LogSink struct {
	Logger zerolog.Logger
}

func (s LogSink) Store(_ context.Context, l Lead) error {
	domain := l.Request.Email
	if i := strings.LastIndexByte(domain, '@'); i >= 0 {
		domain = domain[i+1:]
	}
	s.Logger.Info().
		Str("lead_id", l.ID).
		Str("email_domain", domain).
		Str("model", l.Request.Model).
		Str("use_case", l.Request.UseCase).
		Int("message_len", len(l.Request.Message)).
		Time("received_at", l.ReceivedAt).
		Msg("lead accepted")
	return nil
}

// MemorySink keeps leads in memory, for tests.
type MemorySink struct {
	mu    sync.Mutex
	leads []Lead
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Store(_ context.Context, l Lead) error {
	s.mu.Lock()
	s.leads = append(s.leads, l)
	s.mu.Unlock()
	return nil
}

func (s *MemorySink) Leads() []Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Lead, len(s.leads))
	copy(out, s.leads)
	return out
}
