package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/folio/pkg/logger"
)

// Config holds contact settings, parsed with caarlos0/env.
type Config struct {
	Destination string `env:"CONTACT_DESTINATION,required,notEmpty"`
	OwnerEmail  string `env:"CONTACT_OWNER_EMAIL"` // shown in failure messages, defaults to Destination
	Timezone    string `env:"CONTACT_TIMEZONE" envDefault:"Europe/Lisbon"`
}

// Owner returns the address shown to visitors.
func (c Config) Owner() string {
	if c.OwnerEmail != "" {
		return c.OwnerEmail
	}
	return c.Destination
}

// Messages holds the visitor-facing copy for each Code.
type Messages struct {
	Owner string
}

// Text returns the English message for code.
func (m Messages) Text(code Code) string {
	switch code {
	case CodeSent:
		return "Message sent successfully! I'll get back to you within 24 hours."
	case CodeMissingField:
		return "All fields are required."
	case CodeInvalidEmail:
		return "Please enter a valid email address."
	case CodeInvalidLength:
		return fmt.Sprintf("Your message is too long. Please keep it under %d characters.", MaxMessageLength)
	case CodeSendFailed:
		return "Failed to send email. Please try again later or contact me directly at " + m.Owner + "."
	default:
		return "An unexpected error occurred. Please contact me directly at " + m.Owner + "."
	}
}

// Service runs the submission flow: validate, then deliver once.
// It keeps no state between calls.
type Service struct {
	notifier Notifier
	logger   *slog.Logger
	messages Messages
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service. owner is the address offered to visitors
// when delivery fails.
func NewService(n Notifier, owner string, opts ...ServiceOption) *Service {
	s := &Service{
		notifier: n,
		messages: Messages{Owner: owner},
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logger.Component(s.logger, "contact")
	return s
}

// Messages returns the configured copy.
func (s *Service) Messages() Messages {
	return s.messages
}

// Submit validates sub and, when valid, makes exactly one delivery attempt.
//
// Delivery runs on a context detached from ctx's cancellation, so a
// visitor closing the tab does not abort a send already in flight.
// Success is reported only after the provider acknowledged the message.
func (s *Service) Submit(ctx context.Context, sub Submission) Result {
	sub = sub.Normalize()

	if err := Validate(sub); err != nil {
		return s.rejected(ctx, err)
	}

	ref := newCorrelationID()
	sendCtx := WithCorrelationID(context.WithoutCancel(ctx), ref)

	id, err := s.notifier.Notify(sendCtx, sub)
	if err != nil {
		code := CodeUnexpected
		kind := "unexpected"
		switch {
		case errors.Is(err, ErrTransport):
			code, kind = CodeSendFailed, "transport"
		case errors.Is(err, ErrProviderRejected):
			code, kind = CodeSendFailed, "provider_rejected"
		}

		s.logger.ErrorContext(sendCtx, "contact notification failed",
			slog.Any("error", err),
			slog.String("error_kind", kind),
			slog.String("correlation_id", ref),
			slog.String("submitter_domain", sub.EmailDomain()),
		)
		return s.result(code, "")
	}

	s.logger.InfoContext(sendCtx, "contact notification sent",
		slog.String("message_id", id),
		slog.String("correlation_id", ref),
		slog.String("submitter_domain", sub.EmailDomain()),
	)
	return s.result(CodeSent, "")
}

func (s *Service) rejected(ctx context.Context, err error) Result {
	var fe *FieldError
	field := ""
	if errors.As(err, &fe) {
		field = fe.Field
	}

	code := CodeUnexpected
	switch {
	case errors.Is(err, ErrMissingField):
		code = CodeMissingField
	case errors.Is(err, ErrInvalidEmail):
		code = CodeInvalidEmail
	case errors.Is(err, ErrTooLong):
		code = CodeInvalidLength
	}

	s.logger.DebugContext(ctx, "contact submission rejected",
		slog.String("code", string(code)),
		slog.String("field", field),
	)
	return s.result(code, field)
}

func (s *Service) result(code Code, field string) Result {
	return Result{
		Success: code == CodeSent,
		Code:    code,
		Message: s.messages.Text(code),
		Field:   field,
	}
}
