package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/folio/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips script injection", `<p>Hello</p><script>alert('xss')</script>`, "Hello"},
		{"strips tags", `<p>Hello <strong>world</strong></p>`, "Hello world"},
		{"strips event handlers", `<img src="x" onerror="alert('xss')">`, ""},
		{"keeps link text", `<a href="javascript:alert('xss')">click</a>`, "click"},
		{"decodes entities", `Tom &amp; Jerry`, "Tom & Jerry"},
		{"plain text", "just text", "just text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestEmailHTML(t *testing.T) {
	t.Parallel()

	t.Run("keeps layout markup", func(t *testing.T) {
		t.Parallel()
		in := `<table width="100%" cellpadding="0"><tr><td style="color: #333"><a class="btn" href="mailto:ana@example.com">Reply</a></td></tr></table>`
		out := sanitizer.EmailHTML(in)
		assert.Contains(t, out, `<table`)
		assert.Contains(t, out, `href="mailto:ana@example.com"`)
		assert.Contains(t, out, `class="btn"`)
	})

	t.Run("removes script and handlers", func(t *testing.T) {
		t.Parallel()
		in := `<p onclick="steal()">Hi</p><script>alert(1)</script><a href="javascript:alert(1)">x</a>`
		out := sanitizer.EmailHTML(in)
		assert.NotContains(t, out, "script")
		assert.NotContains(t, out, "onclick")
		assert.NotContains(t, out, "javascript:")
		assert.Contains(t, out, "Hi")
	})
}
