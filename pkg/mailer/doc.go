// Package mailer renders markdown email templates and delivers them through a
// pluggable Sender.
//
// A Mailer combines a Renderer with a Sender:
//
//	sender := resend.New(resendCfg)
//	m := mailer.New(sender, mailer.NewRenderer(templates.FS), mailer.Config{
//		DefaultLayout: "base.html",
//	})
//
//	id, err := m.Send(ctx, mailer.SendParams{
//		To:       "owner@example.com",
//		ReplyTo:  visitor.Email,
//		Template: "contact.md",
//		Data:     visitor,
//	})
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter. The Subject
// key is itself a text/template:
//
//	---
//	Subject: Portfolio Contact from {{.Name}}
//	---
//	**Email:** {{.Email}}
//
//	[!button|Reply](mailto:{{.Email}})
//
// The rendered body is placed into an html/template layout as {{.Content}}
// and sanitized with bluemonday before it leaves the package. The processed
// markdown doubles as the plain-text part.
//
// # Errors
//
// Senders classify failures with ErrProviderRejected (the provider answered
// and refused) or ErrTransport (the call never completed). Mailer joins
// ErrSendFailed on top, so both stay visible to errors.Is.
package mailer
