package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/core/ports"
)

// SourceNodeID is the unique identifier for the file source Graft node.
const SourceNodeID graft.ID = "adapter.file_source"

func init() {
	graft.Register(graft.Node[ports.FileSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSource, error) {
			return NewSource(), nil
		},
	})
}
