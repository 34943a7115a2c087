package minify

import (
	"bytes"
	"strings"

	"go.trai.ch/stitch/internal/core/ports"
)

var _ ports.Minifier = (*JS)(nil)

// JS strips comments and blank lines from scripts. It does not touch the
// code itself: automatic semicolon insertion makes whitespace collapsing in
// JavaScript unsafe without a real parser, so line structure is preserved.
type JS struct{}

// NewJS creates a JS minifier.
func NewJS() *JS {
	return &JS{}
}

// Minify removes // and /* */ comments outside string literals, trims
// trailing whitespace and drops blank lines.
func (m *JS) Minify(src []byte) []byte {
	s := string(src)
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]

		switch {
		case c == '"' || c == '\'' || c == '`':
			quote := c
			out.WriteByte(c)
			i++
			for i < len(s) {
				out.WriteByte(s[i])
				if s[i] == '\\' && i+1 < len(s) {
					i++
					out.WriteByte(s[i])
				} else if s[i] == quote {
					i++
					break
				}
				i++
			}

		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i < len(s) && s[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)
				continue
			}
			// Keep a newline if the comment spanned lines, so statement
			// boundaries survive.
			if strings.Contains(s[i:i+2+end+2], "\n") {
				out.WriteByte('\n')
			}
			i += 2 + end + 2

		default:
			out.WriteByte(c)
			i++
		}
	}

	lines := strings.Split(out.String(), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		kept = append(kept, trimmed)
	}

	return bytes.TrimSpace([]byte(strings.Join(kept, "\n")))
}
