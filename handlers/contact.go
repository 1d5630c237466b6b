package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/views"
)

// MaxContactBody caps a contact submission body.
const MaxContactBody = 64 << 10

// Contact serves the contact form.
type Contact struct {
	svc  *contact.Service
	site Site
}

// NewContact creates the contact handler.
func NewContact(svc *contact.Service, site Site) *Contact {
	return &Contact{svc: svc, site: site}
}

// Routes registers the form and its submission. No timeout is applied to
// POST: the notification is sent even when the client goes away.
func (h *Contact) Routes(r folio.Router) {
	r.GET("/contact", h.form)
	r.POST("/contact", h.submit)
}

// contactResponse is the JSON body for API clients.
type contactResponse struct {
	Message string       `json:"message"`
	Code    contact.Code `json:"code"`
	Field   string       `json:"field,omitempty"`
	Success bool         `json:"success"`
}

func (h *Contact) form(c folio.Context) error {
	return c.Render(http.StatusOK, views.ContactPage(h.site.page(c, "contact.title", "/contact"), views.ContactForm{}))
}

func (h *Contact) submit(c folio.Context) error {
	sub, err := h.bind(c)
	if err != nil {
		if errors.Is(err, folio.ErrBodyTooLarge) {
			return c.Error(http.StatusRequestEntityTooLarge, c.T("common.errors.bad_request"),
				folio.WithErrorCode("body_too_large"), folio.WithError(err))
		}
		return c.Error(http.StatusBadRequest, c.T("common.errors.bad_request"),
			folio.WithErrorCode("bad_request"), folio.WithError(err))
	}

	res := h.svc.Submit(c, sub)
	msg := h.message(c, res)
	status := statusFor(res.Code)

	if c.IsJSON() || c.WantsJSON() {
		return c.JSON(status, contactResponse{
			Success: res.Success,
			Message: msg,
			Code:    res.Code,
			Field:   res.Field,
		})
	}
	if c.IsHTMX() {
		return c.Render(status, views.ContactResult(res, msg))
	}

	return c.Render(status, views.ContactPage(
		h.site.page(c, "contact.title", "/contact"),
		views.ContactForm{Values: sub, Result: &res, Message: msg},
	))
}

// bind reads a JSON or form body of at most MaxContactBody bytes.
func (h *Contact) bind(c folio.Context) (contact.Submission, error) {
	var sub contact.Submission
	if c.IsJSON() {
		err := c.BindJSON(&sub, MaxContactBody)
		return sub, err
	}

	r := c.Request()
	r.Body = http.MaxBytesReader(c.Response(), r.Body, MaxContactBody)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return sub, errors.Join(folio.ErrBodyTooLarge, err)
		}
		return sub, err
	}

	return contact.Submission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}, nil
}

// message localizes res, falling back to the service's English copy.
func (h *Contact) message(c folio.Context, res contact.Result) string {
	key := "contact.result." + string(res.Code)
	msg := c.T(key, i18n.M{
		"owner": h.svc.Messages().Owner,
		"max":   contact.MaxMessageLength,
	})
	if msg == key {
		return res.Message
	}
	return msg
}

func statusFor(code contact.Code) int {
	switch code {
	case contact.CodeSent:
		return http.StatusOK
	case contact.CodeMissingField, contact.CodeInvalidEmail, contact.CodeInvalidLength:
		return http.StatusUnprocessableEntity
	case contact.CodeSendFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
