package middlewares_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/pkg/cookie"
	"github.com/dmitrymomot/folio/pkg/htmx"
	"github.com/dmitrymomot/folio/pkg/i18n"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testContext struct {
	response http.ResponseWriter
	request  *http.Request
	cookies  *cookie.Manager
	logger   *slog.Logger
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: w,
		request:  r,
		cookies:  cookie.New(cookie.WithSecret(testSecret)),
		logger:   slog.New(slog.DiscardHandler),
	}
}

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Param(string) string           { return "" }
func (c *testContext) Query(name string) string      { return c.request.URL.Query().Get(name) }
func (c *testContext) QueryDefault(name, def string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return def
}
func (c *testContext) Form(name string) string      { return c.request.FormValue(name) }
func (c *testContext) Header(name string) string    { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.response.Header().Set(name, value) }
func (c *testContext) RealIP() string               { return c.request.RemoteAddr }
func (c *testContext) IsJSON() bool                 { return false }
func (c *testContext) WantsJSON() bool              { return false }
func (c *testContext) BindJSON(any, int64) error    { return nil }

func (c *testContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error { c.response.WriteHeader(code); return nil }

func (c *testContext) Redirect(code int, url string) error {
	http.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func (c *testContext) IsHTMX() bool { return htmx.IsHTMX(c.request) }

func (c *testContext) Render(code int, component internal.Component) error {
	c.response.WriteHeader(code)
	return component.Render(c.request.Context(), c.response)
}

func (c *testContext) RenderPartial(code int, fullPage, partial internal.Component) error {
	if c.IsHTMX() {
		return c.Render(code, partial)
	}
	return c.Render(code, fullPage)
}

func (c *testContext) Written() bool                     { return false }
func (c *testContext) Logger() *slog.Logger              { return c.logger }
func (c *testContext) LogDebug(msg string, attrs ...any) {}
func (c *testContext) LogInfo(msg string, attrs ...any)  {}
func (c *testContext) LogWarn(msg string, attrs ...any)  {}
func (c *testContext) LogError(msg string, attrs ...any) {}

func (c *testContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) Get(key any) any { return c.request.Context().Value(key) }

func (c *testContext) SetContext(ctx context.Context) { c.request = c.request.WithContext(ctx) }

func (c *testContext) Cookie(name string) (string, error) { return c.cookies.Get(c.request, name) }
func (c *testContext) SetCookie(name, value string, maxAge int) {
	c.cookies.Set(c.response, name, value, maxAge)
}
func (c *testContext) DeleteCookie(name string) { c.cookies.Delete(c.response, name) }
func (c *testContext) CookieSigned(name string) (string, error) {
	return c.cookies.GetSigned(c.request, name)
}
func (c *testContext) SetCookieSigned(name, value string, maxAge int) error {
	return c.cookies.SetSigned(c.response, name, value, maxAge)
}

func (c *testContext) T(key string, placeholders ...i18n.M) string {
	if tr, ok := c.Get(internal.TranslatorKey{}).(*i18n.Translator); ok {
		return tr.T(key, placeholders...)
	}
	return key
}

func (c *testContext) Language() string {
	lang, _ := c.Get(internal.LanguageKey{}).(string)
	return lang
}

func (c *testContext) Format() *i18n.LocaleFormat {
	if tr, ok := c.Get(internal.TranslatorKey{}).(*i18n.Translator); ok {
		return tr.Format()
	}
	return i18n.FormatForLanguage(c.Language())
}

var _ internal.Context = (*testContext)(nil)
