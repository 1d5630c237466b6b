package contact

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer"
)

// Delivery failures. Both also wrap the underlying mailer error.
var (
	ErrProviderRejected = errors.New("contact: provider rejected notification")
	ErrTransport        = errors.New("contact: notification transport failed")
)

const (
	// DefaultTimezone is the zone notification timestamps are shown in.
	DefaultTimezone = "Europe/Lisbon"

	timestampLayout = "Monday 2 January 2006 at 15:04"
	templateName    = "contact.md"
	layoutName      = "contact.html"
)

//go:embed templates
var templatesFS embed.FS

// Templates returns the embedded notification templates.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Notifier delivers a validated submission. It returns the provider's
// message ID.
type Notifier interface {
	Notify(ctx context.Context, s Submission) (string, error)
}

// EmailNotifier sends submissions to a fixed inbox through a mailer.Sender.
type EmailNotifier struct {
	mailer      *mailer.Mailer
	logger      *slog.Logger
	location    *time.Location
	now         func() time.Time
	destination string
	zoneLabel   string
}

// NotifierOption configures an EmailNotifier.
type NotifierOption func(*EmailNotifier)

// WithLocation sets the zone used for the "Received on" timestamp.
func WithLocation(loc *time.Location) NotifierOption {
	return func(n *EmailNotifier) {
		if loc != nil {
			n.location = loc
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) NotifierOption {
	return func(n *EmailNotifier) {
		if now != nil {
			n.now = now
		}
	}
}

// WithNotifierLogger sets the logger.
func WithNotifierLogger(l *slog.Logger) NotifierOption {
	return func(n *EmailNotifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewEmailNotifier creates an EmailNotifier that renders the embedded
// templates and hands them to sender.
func NewEmailNotifier(sender mailer.Sender, destination string, opts ...NotifierOption) *EmailNotifier {
	renderer := mailer.NewRendererWithConfig(Templates(), mailer.RendererConfig{LayoutDir: "layouts"})

	n := &EmailNotifier{
		mailer: mailer.New(sender, renderer, mailer.Config{
			DefaultLayout:   layoutName,
			FallbackSubject: "Portfolio Contact",
		}),
		destination: destination,
		location:    time.UTC,
		now:         time.Now,
		logger:      logger.NewNope(),
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		n.location = loc
	}
	for _, opt := range opts {
		opt(n)
	}
	n.zoneLabel = ZoneLabel(n.location)
	n.logger = logger.Component(n.logger, "contact.notifier")
	return n
}

type notification struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	ReceivedAt string
}

// Notify sends exactly one message. Reply-To is the submitter, so the
// owner can answer from their inbox.
func (n *EmailNotifier) Notify(ctx context.Context, s Submission) (string, error) {
	ref := CorrelationID(ctx)
	if ref == "" {
		ref = newCorrelationID()
	}

	id, err := n.mailer.Send(ctx, mailer.SendParams{
		To:       n.destination,
		ReplyTo:  s.Email,
		Template: templateName,
		Data: notification{
			Name:       s.Name,
			Email:      s.Email,
			Subject:    s.Subject,
			Message:    s.Message,
			ReceivedAt: n.timestamp(),
		},
		Headers: map[string]string{"X-Entity-Ref-ID": ref},
		Tags:    mailer.Tags{"category": "contact", "submission": ref},
	})
	switch {
	case err == nil:
		n.logger.DebugContext(ctx, "notification delivered",
			slog.String("message_id", id),
			slog.String("correlation_id", ref),
		)
		return id, nil
	case errors.Is(err, mailer.ErrTransport):
		return "", errors.Join(ErrTransport, err)
	case errors.Is(err, mailer.ErrProviderRejected):
		return "", errors.Join(ErrProviderRejected, err)
	default:
		return "", err
	}
}

// timestamp renders the current time like
// "Friday 15 March 2024 at 14:30 (Lisbon time)".
func (n *EmailNotifier) timestamp() string {
	return n.now().In(n.location).Format(timestampLayout) + " (" + n.zoneLabel + " time)"
}

// ZoneLabel derives a display name from an IANA zone: "Europe/Lisbon"
// becomes "Lisbon", "America/Sao_Paulo" becomes "Sao Paulo".
func ZoneLabel(loc *time.Location) string {
	name := loc.String()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, "_", " ")
}

type correlationKey struct{}

// WithCorrelationID attaches the per-attempt reference to ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the reference set by WithCorrelationID.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// CorrelationExtractor adds correlation_id to log records.
func CorrelationExtractor(ctx context.Context) (slog.Attr, bool) {
	id := CorrelationID(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return slog.String("correlation_id", id), true
}

func newCorrelationID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

var _ Notifier = (*EmailNotifier)(nil)
