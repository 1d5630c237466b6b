// Package contact implements the portfolio's contact form: validation, the
// owner notification email and the submit flow that ties them together.
//
//	notifier := contact.NewEmailNotifier(sender, cfg.Destination,
//		contact.WithLocation(loc),
//	)
//	svc := contact.NewService(notifier, cfg.Owner(), contact.WithLogger(log))
//
//	res := svc.Submit(ctx, contact.Submission{
//		Name:    "Ana",
//		Email:   "ana@example.com",
//		Subject: "Hello",
//		Message: "Loved your projects!",
//	})
//
// Every call makes at most one delivery attempt. Nothing is stored and
// identical submissions are delivered twice.
package contact
