package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/handlers"
	"github.com/dmitrymomot/folio/locales"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/cookie"
	"github.com/dmitrymomot/folio/pkg/preferences"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	ownerEmail = "owner@example.com"
)

var testSite = handlers.Site{Languages: locales.Supported}

func newStore(t *testing.T) *preferences.Store {
	t.Helper()
	svc, err := locales.New()
	require.NoError(t, err)
	return preferences.NewStore(svc)
}

// newApp wires hs behind the production middleware chain.
func newApp(t *testing.T, store *preferences.Store, hs ...folio.Handler) *folio.App {
	t.Helper()
	svc, err := locales.New()
	require.NoError(t, err)

	return folio.New(
		folio.WithCookieOptions(cookie.WithSecret(testSecret)),
		folio.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.Preferences(store),
			middlewares.Locale(svc),
		),
		folio.WithHandlers(hs...),
		folio.WithErrorHandler(handlers.ErrorHandler(testSite)),
		folio.WithNotFoundHandler(handlers.NotFound),
		folio.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
	)
}

func serve(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func formRequest(method, target string, values map[string]string) *http.Request {
	form := make([]string, 0, len(values))
	for k, v := range values {
		form = append(form, k+"="+v)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(strings.Join(form, "&")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, s contact.Submission) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func prefsCookie(t *testing.T, s preferences.Settings) *http.Cookie {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, cookie.New(cookie.WithSecret(testSecret)).SetSigned(rec, preferences.DefaultCookieName, string(data), 60))
	return rec.Result().Cookies()[0]
}
