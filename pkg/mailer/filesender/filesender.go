// Package filesender is a development mailer.Sender that writes each email
// to disk instead of delivering it.
package filesender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer"
)

// ErrWriteFailed wraps filesystem errors. It is also joined with
// mailer.ErrTransport so callers treat it like a failed delivery call.
var ErrWriteFailed = errors.New("filesender: write failed")

// Config sets the outbox directory.
type Config struct {
	Dir string `env:"MAIL_OUTBOX_DIR" envDefault:"./tmp/outbox"`
}

// Sender writes {timestamp}_{id}.html plus a .json envelope per email.
type Sender struct {
	logger *slog.Logger
	now    func() time.Time
	dir    string
}

// Option configures a Sender.
type Option func(*Sender)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now for file names.
func WithClock(now func() time.Time) Option {
	return func(s *Sender) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Sender writing into cfg.Dir.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{
		dir:    cfg.Dir,
		now:    time.Now,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logger.Component(s.logger, "filesender")
	return s
}

type envelope struct {
	Headers     map[string]string `json:"headers,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
	SentAt      time.Time         `json:"sent_at"`
	ID          string            `json:"id"`
	From        string            `json:"from,omitempty"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	Subject     string            `json:"subject"`
	Text        string            `json:"text"`
	To          []string          `json:"to"`
	CC          []string          `json:"cc,omitempty"`
	BCC         []string          `json:"bcc,omitempty"`
	Attachments []string          `json:"attachments,omitempty"`
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Join(mailer.ErrTransport, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", s.fail(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", s.fail(err)
	}

	now := s.now()
	base := filepath.Join(s.dir, fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), id))

	if err := os.WriteFile(base+".html", []byte(email.HTML), 0o644); err != nil {
		return "", s.fail(err)
	}

	env := envelope{
		ID:      id.String(),
		SentAt:  now.UTC(),
		From:    email.From,
		To:      email.To,
		CC:      email.CC,
		BCC:     email.BCC,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Text:    email.Text,
		Headers: email.Headers,
	}
	if len(email.Tags) > 0 {
		env.Tags = make(map[string]string, len(email.Tags))
		for k, v := range email.Tags {
			if _, ok := v.(struct{}); ok {
				v = "true"
			}
			env.Tags[k] = fmt.Sprint(v)
		}
	}
	for _, a := range email.Attachments {
		env.Attachments = append(env.Attachments, a.Filename)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", s.fail(err)
	}
	if err := os.WriteFile(base+".json", data, 0o644); err != nil {
		return "", s.fail(err)
	}

	s.logger.InfoContext(ctx, "email written to outbox",
		slog.String("message_id", id.String()),
		slog.String("path", base+".html"),
		slog.Any("to", email.To),
		slog.String("subject", email.Subject),
	)
	return id.String(), nil
}

func (s *Sender) fail(err error) error {
	return errors.Join(mailer.ErrTransport, ErrWriteFailed, err)
}

var _ mailer.Sender = (*Sender)(nil)
