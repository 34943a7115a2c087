// Package render produces the HTML and HTTP surface strings for packs.
package render

import (
	"fmt"

	"go.trai.ch/stitch/internal/core/domain"
)

// Tag returns the HTML include tag referencing a pack by its URL.
func Tag(kind domain.Kind, url string) string {
	switch kind {
	case domain.KindJS:
		return fmt.Sprintf("<script src=%q></script>", url)
	default:
		return fmt.Sprintf("<link rel=\"stylesheet\" href=%q/>", url)
	}
}

// ContentType returns the Content-Type header value for a pack kind.
func ContentType(kind domain.Kind) string {
	switch kind {
	case domain.KindJS:
		return "text/javascript; charset=utf-8"
	default:
		return "text/css; charset=utf-8"
	}
}
