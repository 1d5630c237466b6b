// Package handlers maps the portfolio's features onto HTTP routes.
//
// Each handler implements folio.Handler and takes its services through the
// constructor:
//
//	app := folio.New(
//	    folio.WithHandlers(
//	        handlers.NewHome(site),
//	        handlers.NewContact(contactSvc, site),
//	        handlers.NewProjects(projectSvc, site),
//	        handlers.NewLocation(geoSvc, store),
//	        handlers.NewPreferences(store),
//	        handlers.NewCV(cvStorage, cvKey),
//	    ),
//	    folio.WithErrorHandler(handlers.ErrorHandler(site)),
//	)
//
// Pages are negotiated: JSON for Accept: application/json, a partial for
// htmx requests, and the full document otherwise.
package handlers
