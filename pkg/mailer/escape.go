package mailer

import "strings"

// markdownPunct is the ASCII punctuation CommonMark allows to be backslash-escaped,
// minus the characters written as entity references below.
const markdownPunct = "!#$%'()*+,-./:;=?@[\\]^_`{|}~"

// EscapeMarkdown makes s render as literal text inside a markdown template.
//
// HTML-significant characters become entity references, other punctuation is
// backslash-escaped, leading indentation is encoded so it cannot open a code
// block, and single newlines turn into hard line breaks. Blank lines still
// separate paragraphs.
func EscapeMarkdown(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")

	var b strings.Builder
	b.Grow(len(s) * 2)

	prevBlank := true
	for i, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if i > 0 {
			if !prevBlank && !blank {
				b.WriteString("\\\n")
			} else {
				b.WriteByte('\n')
			}
		}
		if !blank {
			escapeLine(&b, line)
		}
		prevBlank = blank
	}

	return b.String()
}

func escapeLine(b *strings.Builder, line string) {
	leading := true
	for _, r := range line {
		if leading {
			switch r {
			case ' ':
				b.WriteString("&#32;")
				continue
			case '\t':
				b.WriteString("&#9;")
				continue
			}
			leading = false
		}

		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '"':
			b.WriteString("&quot;")
		case r < 0x80 && strings.ContainsRune(markdownPunct, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
}
