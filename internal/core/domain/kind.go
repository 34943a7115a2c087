package domain

import "go.trai.ch/zerr"

// Kind identifies the content kind of a pack. It selects the minifier
// applied during builds and the markup and MIME type used when serving.
type Kind string

const (
	// KindCSS is a stylesheet pack.
	KindCSS Kind = "css"
	// KindJS is a script pack.
	KindJS Kind = "js"
)

// ParseKind converts a manifest string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCSS:
		return KindCSS, nil
	case KindJS:
		return KindJS, nil
	default:
		return "", zerr.With(ErrUnknownKind, "kind", s)
	}
}

func (k Kind) String() string {
	return string(k)
}
