package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		meta    map[string]any
		body    string
	}{
		{
			name:    "frontmatter",
			content: "---\nSubject: New message\nPriority: 2\n---\n# Hello\n\nBody.\n",
			meta:    map[string]any{"Subject": "New message", "Priority": 2},
			body:    "# Hello\n\nBody.\n",
		},
		{
			name:    "no frontmatter",
			content: "# Just markdown",
			meta:    map[string]any{},
			body:    "# Just markdown",
		},
		{
			name:    "empty frontmatter",
			content: "---\n---\nBody",
			meta:    map[string]any{},
			body:    "Body",
		},
		{
			name:    "windows line endings",
			content: "---\r\nSubject: Hi\r\n---\r\nBody",
			meta:    map[string]any{"Subject": "Hi"},
			body:    "Body",
		},
		{
			name:    "empty body",
			content: "---\nSubject: Hi\n---\n",
			meta:    map[string]any{"Subject": "Hi"},
			body:    "",
		},
		{
			name:    "delimiter inside body",
			content: "---\nSubject: Hi\n---\nabove\n---\nbelow",
			meta:    map[string]any{"Subject": "Hi"},
			body:    "above\n---\nbelow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.meta, tmpl.Metadata)
			assert.Equal(t, tt.body, tmpl.Body)
		})
	}
}

func TestParseTemplate_Invalid(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"missing closing delimiter": "---\nSubject: Hi\nBody",
		"nothing after opening":     "---\n",
		"invalid yaml":              "---\nSubject: [oops\n---\nBody",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseTemplate([]byte(content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
		})
	}
}
