package contact

import (
	"strings"
	"unicode/utf8"
)

// Submission is one contact form post. It is never stored.
type Submission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Normalize trims every field and collapses line breaks in the single-line
// fields, which end up in mail headers.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    singleLine(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: singleLine(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// EmailDomain returns the part after '@', used in logs instead of the
// full address.
func (s Submission) EmailDomain() string {
	_, domain, ok := strings.Cut(s.Email, "@")
	if !ok {
		return ""
	}
	return strings.ToLower(domain)
}

func (s Submission) messageLength() int {
	return utf8.RuneCountInString(s.Message)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Code identifies a Result for localization.
type Code string

const (
	CodeSent          Code = "sent"
	CodeMissingField  Code = "missing_field"
	CodeInvalidEmail  Code = "invalid_email"
	CodeInvalidLength Code = "invalid_length"
	CodeSendFailed    Code = "send_failed"
	CodeUnexpected    Code = "unexpected"
)

// Result is the outcome of one Submit call.
type Result struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Success bool   `json:"success"`
}
