package i18n_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/i18n"
)

func newTestI18n(t *testing.T, opts ...i18n.Option) *i18n.I18n {
	t.Helper()

	fsys := fstest.MapFS{
		"en/contact.yaml": {Data: []byte(`
result:
  sent: "Message sent successfully!"
  send_failed: "Failed to send email. Contact me directly at {{owner}}."
form:
  submit: Send
`)},
		"pt/contact.yaml": {Data: []byte(`
form:
  submit: Enviar
`)},
		"pt-BR/contact.yaml": {Data: []byte(`
result:
  sent: "Mensagem enviada com sucesso!"
`)},
		"ja/contact.yaml": {Data: []byte(`
result:
  sent: "メッセージを送信しました!"
`)},
		"README.md": {Data: []byte("ignored")},
	}

	base := []i18n.Option{
		i18n.WithDefaultLanguage("en"),
		i18n.WithLanguages("en-GB", "pt-br", "pt-PT", "ja"),
		i18n.WithYAMLDir(fsys),
	}
	inst, err := i18n.New(append(base, opts...)...)
	require.NoError(t, err)
	return inst
}

func TestNew_Languages(t *testing.T) {
	t.Parallel()

	inst := newTestI18n(t)
	assert.Equal(t, []string{"en", "en-GB", "pt-BR", "pt-PT", "ja"}, inst.Languages())
	assert.Equal(t, "en", inst.DefaultLanguage())
}

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := i18n.New(i18n.WithDefaultLanguage(""))
	require.ErrorIs(t, err, i18n.ErrEmptyLanguage)

	_, err = i18n.New(i18n.WithLanguages("not a tag!"))
	require.ErrorIs(t, err, i18n.ErrInvalidTag)

	_, err = i18n.New(i18n.WithTranslations("en", "", map[string]any{"a": "b"}))
	require.ErrorIs(t, err, i18n.ErrEmptyNamespace)

	_, err = i18n.New(i18n.WithYAMLDir(fstest.MapFS{"root.yaml": {Data: []byte("a: b")}}))
	require.ErrorIs(t, err, i18n.ErrInvalidFile)
}

func TestT_Fallback(t *testing.T) {
	t.Parallel()

	var missing []string
	inst := newTestI18n(t, i18n.WithMissingKeyHandler(func(lang, ns, key string) {
		missing = append(missing, lang+":"+ns+":"+key)
	}))

	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"exact", "pt-BR", "result.sent", "Mensagem enviada com sucesso!"},
		{"base language", "pt-BR", "form.submit", "Enviar"},
		{"default language", "pt-PT", "result.sent", "Message sent successfully!"},
		{"japanese", "ja", "result.sent", "メッセージを送信しました!"},
		{"missing key", "ja", "result.nope", "result.nope"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inst.T(tt.lang, "contact", tt.key), tt.name)
	}
	assert.Equal(t, []string{"ja:contact:result.nope"}, missing)
}

func TestT_Placeholders(t *testing.T) {
	t.Parallel()

	inst := newTestI18n(t)
	got := inst.T("en", "contact", "result.send_failed", i18n.M{"owner": "me@example.com"})
	assert.Equal(t, "Failed to send email. Contact me directly at me@example.com.", got)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	inst := newTestI18n(t)

	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"pt-PT,pt;q=0.9,en;q=0.8", "pt-PT"},
		{"pt-BR", "pt-BR"},
		{"en-GB,en;q=0.9", "en-GB"},
		{"ja-JP,ja;q=0.9", "ja"},
		{"de-DE", "en"},
		{";;;garbage", "en"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inst.Match(tt.header), "header %q", tt.header)
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	inst := newTestI18n(t)
	assert.Equal(t, "pt-BR", inst.Supported("pt-br"))
	assert.Equal(t, "ja", inst.Supported("ja"))
	assert.Empty(t, inst.Supported("fr"))
	assert.Empty(t, inst.Supported(""))
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	inst := newTestI18n(t)

	t.Run("namespaced keys", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "pt-BR", nil)
		assert.Equal(t, "Enviar", tr.T("contact.form.submit"))
		assert.True(t, tr.Has("contact.result.sent"))
		assert.False(t, tr.Has("contact.result.unknown"))
		assert.Equal(t, "contact.result.unknown", tr.T("contact.result.unknown"))
		assert.Equal(t, "plainkey", tr.T("plainkey"))
	})

	t.Run("default language", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(inst, "", nil)
		assert.Equal(t, "en", tr.Language())
	})

	t.Run("nil i18n panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { i18n.NewTranslator(nil, "en", nil) })
	})

	t.Run("locale formats", func(t *testing.T) {
		t.Parallel()
		ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

		assert.Equal(t, "12.345", i18n.NewTranslator(inst, "pt-BR", nil).Format().FormatNumber(12345))
		assert.Equal(t, "1,234,567", i18n.NewTranslator(inst, "en", nil).Format().FormatNumber(1234567))
		assert.Equal(t, "-999", i18n.NewTranslator(inst, "en", nil).Format().FormatNumber(-999))
		assert.Equal(t, "5 Mar 2024", i18n.NewTranslator(inst, "en-GB", nil).Format().FormatDate(ts))
		assert.Equal(t, "2024/03/05", i18n.NewTranslator(inst, "ja", nil).Format().FormatDate(ts))

		custom := i18n.NewLocaleFormat(i18n.WithThousandSeparator(" "))
		assert.Same(t, custom, i18n.NewTranslator(inst, "en", custom).Format())
	})
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hi Ana, 3 new", i18n.ReplacePlaceholders("Hi {{name}}, {{count}} new", i18n.M{"name": "Ana", "count": 3}))
	assert.Equal(t, "Hi {{name}}", i18n.ReplacePlaceholders("Hi {{name}}", i18n.M{"other": 1}))
	assert.Equal(t, "plain", i18n.ReplacePlaceholders("plain", nil))
}
