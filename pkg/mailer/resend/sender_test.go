package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/mailer"
	"github.com/dmitrymomot/folio/pkg/mailer/resend"
)

func testEmail() *mailer.Email {
	return &mailer.Email{
		To:      []string{"owner@example.com"},
		ReplyTo: "ana@example.com",
		Subject: "Portfolio Contact from Ana: Hello",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
		Headers: map[string]string{"X-Entity-Ref-ID": "0190f1c2"},
		Tags:    mailer.Tags{"submission": "0190f1c2"},
	}
}

func newSender(t *testing.T, baseURL string, opts ...resend.Option) *resend.Sender {
	t.Helper()
	s, err := resend.New(resend.Config{
		APIKey:      "re_test",
		SenderEmail: "onboarding@resend.dev",
		SenderName:  "Portfolio Contact",
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
	}, opts...)
	require.NoError(t, err)
	return s
}

func TestSender_Send_Success(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	t.Cleanup(srv.Close)

	id, err := newSender(t, srv.URL).Send(context.Background(), testEmail())
	require.NoError(t, err)
	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", id)

	assert.Equal(t, "Portfolio Contact <onboarding@resend.dev>", got["from"])
	assert.Equal(t, "Portfolio Contact from Ana: Hello", got["subject"])
	assert.Equal(t, "Hello", got["text"])
	assert.Contains(t, got, "reply_to")
	assert.Contains(t, got, "tags")
}

func TestSender_Send_ProviderRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field."}`))
	}))
	t.Cleanup(srv.Close)

	_, err := newSender(t, srv.URL).Send(context.Background(), testEmail())
	require.ErrorIs(t, err, mailer.ErrProviderRejected)
	require.NotErrorIs(t, err, mailer.ErrTransport)
}

func TestSender_Send_EmptyID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	_, err := newSender(t, srv.URL).Send(context.Background(), testEmail())
	require.ErrorIs(t, err, mailer.ErrProviderRejected)
}

func TestSender_Send_Transport(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := newSender(t, url).Send(context.Background(), testEmail())
		require.ErrorIs(t, err, mailer.ErrTransport)
		require.NotErrorIs(t, err, mailer.ErrProviderRejected)
	})

	t.Run("client timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		t.Cleanup(srv.Close)

		s := newSender(t, srv.URL, resend.WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
		_, err := s.Send(context.Background(), testEmail())
		require.ErrorIs(t, err, mailer.ErrTransport)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		t.Cleanup(srv.Close)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newSender(t, srv.URL).Send(ctx, testEmail())
		require.ErrorIs(t, err, mailer.ErrTransport)
	})
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := resend.New(resend.Config{SenderEmail: "a@b.co"})
	require.ErrorIs(t, err, resend.ErrInvalidConfig)

	_, err = resend.New(resend.Config{APIKey: "k"})
	require.ErrorIs(t, err, resend.ErrInvalidConfig)

	assert.False(t, resend.Config{}.Enabled())
}
