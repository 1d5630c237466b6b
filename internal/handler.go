package internal

// Handler groups the routes of one feature (contact form, projects, CV)
// and registers them when the app is built:
//
//	func (h *Contact) Routes(r folio.Router) {
//	    r.GET("/contact", h.page)
//	    r.POST("/contact", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc serves one request. A returned error is rendered by the
// app's ErrorHandler unless the response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler turns a handler error into a response.
type ErrorHandler func(Context, error) error
