package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/stitch/internal/core/domain"
)

func TestTag(t *testing.T) {
	assert.Equal(t,
		`<link rel="stylesheet" href="/packs/site.css"/>`,
		Tag(domain.KindCSS, "/packs/site.css"))
	assert.Equal(t,
		`<script src="/packs/app.js"></script>`,
		Tag(domain.KindJS, "/packs/app.js"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/css; charset=utf-8", ContentType(domain.KindCSS))
	assert.Equal(t, "text/javascript; charset=utf-8", ContentType(domain.KindJS))
}
