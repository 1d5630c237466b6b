package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "Ana", want: "Ana"},
		{in: "<Ana>", want: "&lt;Ana&gt;"},
		{in: "Tom & Jerry", want: "Tom &amp; Jerry"},
		{in: `say "hi"`, want: "say &quot;hi&quot;"},
		{in: "# x", want: `\# x`},
		{in: "ana@example.com", want: `ana\@example\.com`},
		{in: "[a](b)", want: `\[a\]\(b\)`},
		{in: "*bold* _it_", want: `\*bold\* \_it\_`},
		{in: "    code", want: "&#32;&#32;&#32;&#32;code"},
		{in: "\tx", want: "&#9;x"},
		{in: "one\ntwo", want: "one\\\ntwo"},
		{in: "one\r\ntwo", want: "one\\\ntwo"},
		{in: "one\n\ntwo", want: "one\n\ntwo"},
		{in: "José 山田", want: "José 山田"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EscapeMarkdown(tt.in))
		})
	}
}

func TestEscapeMarkdown_RendersLiterally(t *testing.T) {
	t.Parallel()

	render := func(s string) string {
		var buf bytes.Buffer
		require.NoError(t, goldmark.New().Convert([]byte(EscapeMarkdown(s)), &buf))
		return buf.String()
	}

	tests := []struct {
		name     string
		in       string
		contains []string
		excludes []string
	}{
		{
			name:     "angle brackets",
			in:       "<Ana> likes Vec<T>",
			contains: []string{"&lt;Ana&gt; likes Vec&lt;T&gt;"},
			excludes: []string{"raw HTML omitted"},
		},
		{
			name:     "heading marker",
			in:       "# x",
			contains: []string{"<p># x</p>"},
			excludes: []string{"<h1>"},
		},
		{
			name:     "link syntax",
			in:       "[click](https://evil.example)",
			contains: []string{"[click](https://evil.example)"},
			excludes: []string{"<a "},
		},
		{
			name:     "emphasis",
			in:       "*not bold*",
			contains: []string{"*not bold*"},
			excludes: []string{"<em>"},
		},
		{
			name:     "indented line",
			in:       "    not code",
			contains: []string{"not code"},
			excludes: []string{"<pre>", "<code>"},
		},
		{
			name:     "line breaks",
			in:       "first\nsecond\n\nthird",
			contains: []string{"first<br", "second</p>", "<p>third</p>"},
		},
		{
			name:     "list marker",
			in:       "1. item\n- other",
			contains: []string{"1. item", "- other"},
			excludes: []string{"<ol>", "<ul>", "<li>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := render(tt.in)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
