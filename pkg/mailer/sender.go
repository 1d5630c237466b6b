package mailer

import "context"

// Sender delivers a fully prepared Email.
//
// Implementations make exactly one delivery attempt and return the
// provider's message ID. Failures must wrap ErrProviderRejected or
// ErrTransport.
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, email *Email) (string, error)

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, email *Email) (string, error) {
	return f(ctx, email)
}
