// Package minify implements the per-kind content minifiers applied during
// minifying builds. Both minifiers are deliberately conservative: they only
// drop comments and redundant whitespace, never rewrite identifiers or
// restructure code.
package minify

import (
	"bytes"
	"strings"

	"go.trai.ch/stitch/internal/core/ports"
)

var _ ports.Minifier = (*CSS)(nil)

// CSS strips comments and collapses whitespace in stylesheets.
type CSS struct{}

// NewCSS creates a CSS minifier.
func NewCSS() *CSS {
	return &CSS{}
}

// Minify removes /* */ comments, collapses whitespace runs and drops spaces
// around CSS punctuation. Quoted strings pass through untouched.
func (m *CSS) Minify(src []byte) []byte {
	out := make([]byte, 0, len(src))
	s := string(src)
	i := 0
	pendingSpace := false

	last := func() byte {
		if len(out) == 0 {
			return 0
		}
		return out[len(out)-1]
	}

	for i < len(s) {
		c := s[i]

		switch {
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)
				continue
			}
			i += 2 + end + 2

		case c == '"' || c == '\'':
			if pendingSpace && len(out) > 0 && !isCSSPunct(last()) {
				out = append(out, ' ')
			}
			pendingSpace = false
			quote := c
			out = append(out, c)
			i++
			for i < len(s) {
				out = append(out, s[i])
				if s[i] == '\\' && i+1 < len(s) {
					i++
					out = append(out, s[i])
				} else if s[i] == quote {
					i++
					break
				}
				i++
			}

		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			pendingSpace = true
			i++

		case isCSSPunct(c):
			pendingSpace = false
			out = append(out, c)
			i++

		default:
			if pendingSpace && len(out) > 0 && !isCSSPunct(last()) {
				out = append(out, ' ')
			}
			pendingSpace = false
			out = append(out, c)
			i++
		}
	}

	return bytes.TrimSpace(out)
}

func isCSSPunct(c byte) bool {
	switch c {
	case '{', '}', ':', ';', ',', '>':
		return true
	}
	return false
}
