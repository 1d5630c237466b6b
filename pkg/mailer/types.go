package mailer

import "fmt"

// Tags label a message for the provider's dashboards and webhooks.
// A struct{}{} value marks a presence-only tag.
type Tags map[string]any

// SimpleTags builds presence-only tags.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats "Name <email>", or just the address when name is empty.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a message ready for a Sender.
type Email struct {
	Headers     map[string]string
	Tags        Tags
	Subject     string
	HTML        string
	Text        string
	From        string // empty means the sender's default
	ReplyTo     string
	To          []string
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Validate checks the fields every provider requires.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.HTML == "":
		return ErrNoContent
	}
	return nil
}

// Attachment is a file sent with an Email.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string // set for inline images
	Content     []byte
}

