package bundle

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/adapters/minify"
	"go.trai.ch/stitch/internal/adapters/telemetry"
	"go.trai.ch/stitch/internal/adapters/watcher"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/cache"
	"go.trai.ch/stitch/internal/metrics"
)

// BuilderNodeID is the unique identifier for the content builder Graft node.
const BuilderNodeID graft.ID = "engine.content_builder"

// CacheNodeID is the unique identifier for the artifact cache Graft node.
const CacheNodeID graft.ID = "engine.cache"

func init() {
	graft.Register(graft.Node[ports.ContentBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.SourceNodeID, minify.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.ContentBuilder, error) {
			source, err := graft.Dep[ports.FileSource](ctx)
			if err != nil {
				return nil, err
			}
			minifiers, err := graft.Dep[minify.Set](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(source, minifiers, tracer), nil
		},
	})

	graft.Register(graft.Node[*cache.Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BuilderNodeID, watcher.NodeID, logger.NodeID, metrics.NodeID},
		Run: func(ctx context.Context) (*cache.Cache, error) {
			builder, err := graft.Dep[ports.ContentBuilder](ctx)
			if err != nil {
				return nil, err
			}
			notifier, err := graft.Dep[ports.ChangeNotifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[*metrics.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return cache.New(builder, notifier, log, m), nil
		},
	})
}
