package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"

	"github.com/dmitrymomot/folio/pkg/sanitizer"
)

// Mailer renders templates and hands the result to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams describes a templated email.
type SendParams struct {
	Data        any
	Headers     map[string]string
	Tags        Tags
	To          string
	Template    string // e.g. "contact.md"
	Subject     string // overrides the template's Subject
	Layout      string // overrides Config.DefaultLayout
	From        string
	ReplyTo     string
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Send renders params.Template and delivers it, returning the provider's
// message ID.
//
// The subject is the first non-empty of params.Subject, the template's
// Subject frontmatter and Config.FallbackSubject, executed as a
// text/template against params.Data.
//
// Render failures wrap ErrRenderFailed. Delivery failures wrap
// ErrSendFailed together with the sender's classification.
func (m *Mailer) Send(ctx context.Context, params SendParams) (string, error) {
	if params.To == "" {
		return "", ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if s, ok := result.Metadata["Subject"].(string); ok && s != "" {
			subject = s
		} else {
			subject = m.config.FallbackSubject
		}
	}

	subject, err = executeSubject(subject, params.Data)
	if err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}

	return m.deliver(ctx, &Email{
		To:          []string{params.To},
		Subject:     subject,
		HTML:        result.HTML,
		Text:        result.Text,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Headers:     params.Headers,
		Tags:        params.Tags,
		Attachments: params.Attachments,
	})
}

// SendRaw delivers a prebuilt email. An empty Text is derived from HTML.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}
	if email.Text == "" {
		email.Text = sanitizer.StripHTML(email.HTML)
	}
	return m.deliver(ctx, email)
}

func (m *Mailer) deliver(ctx context.Context, email *Email) (string, error) {
	id, err := m.sender.Send(ctx, email)
	if err != nil {
		return "", errors.Join(ErrSendFailed, err)
	}
	return id, nil
}

func executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
