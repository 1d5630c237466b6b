package contact

import (
	"errors"
	"regexp"
)

// MaxMessageLength caps the message in runes.
const MaxMessageLength = 5000

var (
	ErrMissingField = errors.New("contact: required field is empty")
	ErrInvalidEmail = errors.New("contact: invalid email address")
	ErrTooLong      = errors.New("contact: field exceeds maximum length")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError names the field that failed validation.
type FieldError struct {
	Err   error
	Field string
}

func (e *FieldError) Error() string {
	return e.Err.Error() + ": " + e.Field
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks a submission without side effects. Values are trimmed
// first. Empty fields are reported before a malformed email, in the order
// name, email, subject, message.
func Validate(s Submission) error {
	s = s.Normalize()

	for _, f := range []struct{ name, value string }{
		{"name", s.Name},
		{"email", s.Email},
		{"subject", s.Subject},
		{"message", s.Message},
	} {
		if f.value == "" {
			return &FieldError{Field: f.name, Err: ErrMissingField}
		}
	}

	if !emailPattern.MatchString(s.Email) {
		return &FieldError{Field: "email", Err: ErrInvalidEmail}
	}

	if s.messageLength() > MaxMessageLength {
		return &FieldError{Field: "message", Err: ErrTooLong}
	}

	return nil
}
