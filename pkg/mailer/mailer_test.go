package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func newTestMailer(fs fstest.MapFS) (*Mailer, *MockSender) {
	sender := &MockSender{}
	return New(sender, NewRenderer(fs), Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Portfolio notification",
	}), sender
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	m, sender := newTestMailer(contactFS())
	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
		return e.To[0] == "owner@example.com" &&
			e.Subject == "Portfolio Contact from Ana" &&
			e.ReplyTo == "ana@example.com" &&
			e.Headers["X-Entity-Ref-ID"] == "ref-1" &&
			e.Tags["submission"] == "ref-1" &&
			e.HTML != "" && e.Text != ""
	})).Return("msg_123", nil).Once()

	id, err := m.Send(context.Background(), SendParams{
		To:       "owner@example.com",
		ReplyTo:  "ana@example.com",
		Template: "contact.md",
		Data:     map[string]string{"Name": "Ana", "Message": "Hi"},
		Headers:  map[string]string{"X-Entity-Ref-ID": "ref-1"},
		Tags:     Tags{"submission": "ref-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)
	sender.AssertExpectations(t)
}

func TestMailer_Send_SubjectResolution(t *testing.T) {
	t.Parallel()

	fs := contactFS()
	fs["plain.md"] = &fstest.MapFile{Data: []byte("No frontmatter here")}

	tests := []struct {
		name     string
		template string
		subject  string
		want     string
	}{
		{name: "explicit wins", template: "contact.md", subject: "Hi {{.Name}}", want: "Hi Ana"},
		{name: "frontmatter", template: "contact.md", want: "Portfolio Contact from Ana"},
		{name: "fallback", template: "plain.md", want: "Portfolio notification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, sender := newTestMailer(fs)
			sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
				return e.Subject == tt.want
			})).Return("id", nil).Once()

			_, err := m.Send(context.Background(), SendParams{
				To:       "owner@example.com",
				Template: tt.template,
				Subject:  tt.subject,
				Data:     map[string]string{"Name": "Ana", "Message": "x"},
			})
			require.NoError(t, err)
			sender.AssertExpectations(t)
		})
	}
}

func TestMailer_Send_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no recipient", func(t *testing.T) {
		t.Parallel()
		m, sender := newTestMailer(contactFS())
		_, err := m.Send(context.Background(), SendParams{Template: "contact.md"})
		require.ErrorIs(t, err, ErrNoRecipient)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("render failure", func(t *testing.T) {
		t.Parallel()
		m, sender := newTestMailer(contactFS())
		_, err := m.Send(context.Background(), SendParams{To: "o@example.com", Template: "missing.md"})
		require.ErrorIs(t, err, ErrRenderFailed)
		require.ErrorIs(t, err, ErrTemplateNotFound)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("bad subject template", func(t *testing.T) {
		t.Parallel()
		m, sender := newTestMailer(contactFS())
		_, err := m.Send(context.Background(), SendParams{
			To:       "o@example.com",
			Template: "contact.md",
			Subject:  "{{.Name",
			Data:     map[string]string{"Name": "Ana"},
		})
		require.ErrorIs(t, err, ErrRenderFailed)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("sender failure keeps classification", func(t *testing.T) {
		t.Parallel()
		m, sender := newTestMailer(contactFS())
		sender.On("Send", mock.Anything, mock.Anything).
			Return("", errors.Join(ErrTransport, errors.New("dial tcp: connection refused"))).Once()

		_, err := m.Send(context.Background(), SendParams{
			To:       "o@example.com",
			Template: "contact.md",
			Data:     map[string]string{"Name": "Ana", "Message": "x"},
		})
		require.ErrorIs(t, err, ErrSendFailed)
		require.ErrorIs(t, err, ErrTransport)
		require.NotErrorIs(t, err, ErrProviderRejected)
	})
}

func TestMailer_Send_CustomLayout(t *testing.T) {
	t.Parallel()

	fs := contactFS()
	fs["layouts/plain.html"] = &fstest.MapFile{Data: []byte(`<section class="plain">{{.Content}}</section>`)}

	m, sender := newTestMailer(fs)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
		return strings.Contains(e.HTML, `class="plain"`)
	})).Return("id", nil).Once()

	_, err := m.Send(context.Background(), SendParams{
		To:       "o@example.com",
		Template: "contact.md",
		Layout:   "plain.html",
		Data:     map[string]string{"Name": "Ana", "Message": "x"},
	})
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_SendRaw(t *testing.T) {
	t.Parallel()

	m, sender := newTestMailer(contactFS())
	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
		return e.Text == "Hello & welcome"
	})).Return("raw-1", nil).Once()

	id, err := m.SendRaw(context.Background(), &Email{
		To:      []string{"o@example.com"},
		Subject: "Test",
		HTML:    "<p>Hello &amp; welcome</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "raw-1", id)
	sender.AssertExpectations(t)

	_, err = m.SendRaw(context.Background(), &Email{Subject: "x", HTML: "y"})
	require.ErrorIs(t, err, ErrNoRecipient)
	_, err = m.SendRaw(context.Background(), &Email{To: []string{"a@b.co"}, HTML: "y"})
	require.ErrorIs(t, err, ErrNoSubject)
	_, err = m.SendRaw(context.Background(), &Email{To: []string{"a@b.co"}, Subject: "x"})
	require.ErrorIs(t, err, ErrNoContent)
}

func TestMailer_SendRaw_SenderFailure(t *testing.T) {
	t.Parallel()

	m, _ := newTestMailer(contactFS())
	m.sender = SenderFunc(func(context.Context, *Email) (string, error) {
		return "", errors.Join(ErrProviderRejected, errors.New("422 invalid from"))
	})

	_, err := m.SendRaw(context.Background(), &Email{To: []string{"a@b.co"}, Subject: "x", HTML: "<p>y</p>"})
	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, ErrProviderRejected)
}

