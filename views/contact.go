package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/folio/pkg/contact"
)

// ContactForm is the state of the contact form after a request.
type ContactForm struct {
	Values  contact.Submission
	Result  *contact.Result
	Message string // localized Result message
}

// ContactPage is the full contact page.
func ContactPage(p Page, f ContactForm) templ.Component {
	return Layout(p, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="contact"><h1>`)
		h.text(p.t("contact.title"))
		h.raw("</h1><p>")
		h.text(p.t("contact.intro"))
		h.raw("</p>")
		h.render(ctx, ContactFormView(p, f))
		h.raw("</section>")
	}))
}

// ContactFormView is the form with its result slot. Field values survive
// a failed submission and are cleared after a successful one.
func ContactFormView(p Page, f ContactForm) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		values := f.Values
		if f.Result != nil && f.Result.Success {
			values = contact.Submission{}
		}
		invalid := ""
		if f.Result != nil && !f.Result.Success {
			invalid = f.Result.Field
		}

		h.raw(`<form id="contact-form" method="post" action="/contact" hx-post="/contact" hx-target="#contact-result" hx-swap="innerHTML" hx-disabled-elt="find button[type=submit]"`)
		h.raw(` hx-on::after-request="if (this.querySelector('#contact-result [data-success=true]')) this.reset()">`)

		field(h, "name", "text", p.t("contact.form.name"), values.Name, invalid == "name")
		field(h, "email", "email", p.t("contact.form.email"), values.Email, invalid == "email")
		field(h, "subject", "text", p.t("contact.form.subject"), values.Subject, invalid == "subject")

		h.raw(`<label for="contact-message">`)
		h.text(p.t("contact.form.message"))
		h.raw(`</label><textarea id="contact-message" name="message" rows="6" required`)
		h.attr("maxlength", itoa(contact.MaxMessageLength))
		if invalid == "message" {
			h.raw(` aria-invalid="true"`)
		}
		h.raw(">")
		h.text(values.Message)
		h.raw(`</textarea><button type="submit"><span class="idle">`)
		h.text(p.t("contact.form.submit"))
		h.raw(`</span><span class="htmx-indicator">`)
		h.text(p.t("contact.form.sending"))
		h.raw(`</span></button><div id="contact-result" aria-live="polite">`)
		if f.Result != nil {
			h.render(ctx, ContactResult(*f.Result, f.Message))
		}
		h.raw("</div></form>")
	})
}

// ContactResult is the success or failure alert. htmx swaps it into
// #contact-result.
func ContactResult(r contact.Result, message string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		class := "alert alert-error"
		if r.Success {
			class = "alert alert-success"
		}
		if message == "" {
			message = r.Message
		}

		h.raw("<div")
		h.attr("class", class)
		h.attr("role", "alert")
		h.attr("data-code", string(r.Code))
		if r.Success {
			h.raw(` data-success="true"`)
		}
		if r.Field != "" {
			h.attr("data-field", r.Field)
		}
		h.raw(">")
		h.text(message)
		h.raw("</div>")
	})
}

func field(h *htmlWriter, name, typ, label, value string, invalid bool) {
	id := "contact-" + name
	h.raw("<label")
	h.attr("for", id)
	h.raw(">")
	h.text(label)
	h.raw("</label><input")
	h.attr("id", id)
	h.attr("name", name)
	h.attr("type", typ)
	h.attr("value", value)
	h.raw(" required")
	if invalid {
		h.raw(` aria-invalid="true"`)
	}
	h.raw(">")
}
