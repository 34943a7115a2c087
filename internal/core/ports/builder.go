package ports

import (
	"context"

	"go.trai.ch/stitch/internal/core/domain"
)

// ContentBuilder produces a pack artifact from an ordered list of
// filesystem paths. A failed build returns an error and no artifact; a
// partial bundle is never produced.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ContentBuilder interface {
	Build(ctx context.Context, kind domain.Kind, paths []string, cfg domain.BuildConfig) (domain.Artifact, error)
}
