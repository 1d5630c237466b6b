package resend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer"
)

// ErrInvalidConfig is returned by New for unusable settings.
var ErrInvalidConfig = errors.New("resend: invalid config")

// Sender implements mailer.Sender on the Resend API.
type Sender struct {
	client *resend.Client
	logger *slog.Logger
	from   string
}

// Option configures a Sender.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// WithHTTPClient replaces the HTTP client built from Config.Timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithLogger sets the logger used for delivery records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a Sender.
func New(cfg Config, opts ...Option) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: sender email is required", ErrInvalidConfig)
	}

	o := options{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	client := resend.NewCustomClient(o.httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("%w: base url: %w", ErrInvalidConfig, err)
		}
		client.BaseURL = base
	}

	return &Sender{
		client: client,
		logger: logger.Component(o.logger, "resend"),
		from:   cfg.from(),
	}, nil
}

// Send makes one API call and returns the Resend message ID.
//
// Failures where the request never got an answer (timeouts, DNS, refused
// connections, cancelled contexts) wrap mailer.ErrTransport. Everything the
// API answered with wraps mailer.ErrProviderRejected.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	from := email.From
	if from == "" {
		from = s.from
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}
	if len(email.Attachments) > 0 {
		req.Attachments = attachments(email.Attachments)
	}
	if len(email.Tags) > 0 {
		req.Tags = tags(email.Tags)
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if resp == nil || resp.Id == "" {
		return "", fmt.Errorf("%w: empty message id", mailer.ErrProviderRejected)
	}

	s.logger.DebugContext(ctx, "email accepted", slog.String("message_id", resp.Id))
	return resp.Id, nil
}

func classify(err error) error {
	var (
		urlErr *url.Error
		netErr net.Error
	)
	switch {
	case errors.As(err, &urlErr),
		errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return errors.Join(mailer.ErrTransport, err)
	default:
		return errors.Join(mailer.ErrProviderRejected, err)
	}
}

func attachments(in []mailer.Attachment) []*resend.Attachment {
	out := make([]*resend.Attachment, len(in))
	for i, a := range in {
		out[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		}
	}
	return out
}

func tags(in mailer.Tags) []resend.Tag {
	out := make([]resend.Tag, 0, len(in))
	for name, v := range in {
		out = append(out, resend.Tag{Name: name, Value: tagValue(v)})
	}
	return out
}

// tagValue stringifies a tag value. Presence-only tags become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

var _ mailer.Sender = (*Sender)(nil)
