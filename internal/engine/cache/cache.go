// Package cache implements the process-wide pack artifact cache with
// single-flight rebuild coordination and file-change invalidation.
package cache

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/metrics"
)

// Cache stores one artifact per pack identity.
//
// The hit path is lock-free: a request that finds a non-evicted entry
// returns it without taking any lock or touching the filesystem. Rebuilds
// serialize on one coarse mutex shared by all packs; rebuilds are rare and
// cheap, so correctness wins over per-identity parallelism here. The
// double-checked lookup under the mutex guarantees exactly one build per
// cold identity no matter how many requests race.
type Cache struct {
	store sync.Map // pack identity -> *entry
	mu    sync.Mutex

	builder  ports.ContentBuilder
	notifier ports.ChangeNotifier
	logger   ports.Logger
	metrics  *metrics.Metrics
}

// entry pairs a built artifact with the watch that invalidates it.
// sub is nil when the artifact was built without auto-refresh.
type entry struct {
	artifact domain.Artifact
	sub      ports.Subscription
}

// New creates an empty Cache. metrics may be nil.
func New(builder ports.ContentBuilder, notifier ports.ChangeNotifier, logger ports.Logger, m *metrics.Metrics) *Cache {
	return &Cache{
		builder:  builder,
		notifier: notifier,
		logger:   logger,
		metrics:  m,
	}
}

// GetOrBuild returns the cached artifact for the pack, building it first if
// the cache holds no live entry. Concurrent requests for a cold identity
// trigger exactly one build; the losers block on the coordination lock and
// observe the winner's artifact.
//
// A failed build installs nothing, so the next request naturally retries.
// The build configuration of whichever request performs the build shapes
// the cached artifact; cache hits ignore the caller's configuration.
func (c *Cache) GetOrBuild(ctx context.Context, pack *domain.Pack, cfg domain.BuildConfig) (domain.Artifact, error) {
	identity := pack.Path()

	if v, ok := c.store.Load(identity); ok {
		c.metrics.IncCacheHit()
		return v.(*entry).artifact, nil
	}
	c.metrics.IncCacheMiss()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have finished the build while we waited.
	if v, ok := c.store.Load(identity); ok {
		return v.(*entry).artifact, nil
	}

	paths := pack.FilePaths()

	start := time.Now()
	artifact, err := c.builder.Build(ctx, pack.Kind(), paths, cfg)
	if err != nil {
		c.metrics.IncRebuildFailure()
		return domain.Artifact{}, err
	}
	c.metrics.ObserveRebuild(time.Since(start))

	e := &entry{artifact: artifact}
	if cfg.AutoRefresh {
		sub, subErr := c.notifier.Subscribe(paths, func(path string) {
			c.evict(identity, path)
		})
		if subErr != nil {
			// Degraded mode: serve the artifact without invalidation
			// rather than failing the request.
			c.metrics.IncWatchError()
			c.logger.Warn("failed to watch pack files, serving without auto-refresh",
				"pack", identity, "error", subErr.Error())
		} else {
			e.sub = sub
		}
	}

	c.store.Store(identity, e)
	c.logger.Info("pack built", "pack", identity, "files", len(paths), "bytes", len(artifact.Content))
	return artifact, nil
}

// evict atomically removes the entry for identity and tears down its watch.
// The next GetOrBuild for the identity rebuilds lazily.
func (c *Cache) evict(identity, path string) {
	v, ok := c.store.LoadAndDelete(identity)
	if !ok {
		return
	}
	e := v.(*entry)
	if e.sub != nil {
		_ = e.sub.Close()
	}
	c.metrics.IncEviction()
	c.logger.Info("pack invalidated", "pack", identity, "file", path)
}
