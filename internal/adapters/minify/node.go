package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the minifier set Graft node.
const NodeID graft.ID = "adapter.minifiers"

// Set maps each pack kind to its minifier.
type Set map[domain.Kind]ports.Minifier

// Defaults returns the built-in minifier per pack kind.
func Defaults() Set {
	return Set{
		domain.KindCSS: NewCSS(),
		domain.KindJS:  NewJS(),
	}
}

func init() {
	graft.Register(graft.Node[Set]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Set, error) {
			return Defaults(), nil
		},
	})
}
