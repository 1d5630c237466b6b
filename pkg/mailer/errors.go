package mailer

import "errors"

// Delivery classification. Senders join one of these into every failure
// so callers can tell a refused message from a call that never completed.
var (
	ErrProviderRejected = errors.New("mailer: provider rejected message")
	ErrTransport        = errors.New("mailer: transport failure")
)

var (
	ErrNoRecipient        = errors.New("mailer: email must have at least one recipient")
	ErrNoSubject          = errors.New("mailer: email must have a subject")
	ErrNoContent          = errors.New("mailer: email must have HTML content")
	ErrTemplateNotFound   = errors.New("mailer: template not found")
	ErrLayoutNotFound     = errors.New("mailer: layout not found")
	ErrRenderFailed       = errors.New("mailer: failed to render template")
	ErrSendFailed         = errors.New("mailer: failed to send email")
	ErrInvalidFrontmatter = errors.New("mailer: invalid frontmatter")
)
