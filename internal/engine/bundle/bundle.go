package bundle

import (
	"context"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/engine/cache"
	"go.trai.ch/stitch/internal/render"
)

// Bundle is the request-facing view of one pack. The first content access
// locks the pack's file list so the cache key and watch set stay stable for
// the process lifetime.
type Bundle struct {
	pack  *domain.Pack
	cache *cache.Cache
}

// NewBundle ties a pack to the artifact cache.
func NewBundle(pack *domain.Pack, c *cache.Cache) *Bundle {
	return &Bundle{pack: pack, cache: c}
}

// Path returns the pack identity, which doubles as the HTTP route.
func (b *Bundle) Path() string {
	return b.pack.Path()
}

// Kind returns the pack's content kind.
func (b *Bundle) Kind() domain.Kind {
	return b.pack.Kind()
}

// LogicalPaths returns the declared logical paths in declaration order.
func (b *Bundle) LogicalPaths() []string {
	return b.pack.Paths()
}

// Artifact returns the built artifact for the pack, building it on first
// access and on each access after an invalidation.
func (b *Bundle) Artifact(ctx context.Context, cfg domain.BuildConfig) (domain.Artifact, error) {
	b.pack.Lock()
	return b.cache.GetOrBuild(ctx, b.pack, cfg)
}

// Content returns the concatenated pack content.
func (b *Bundle) Content(ctx context.Context, cfg domain.BuildConfig) ([]byte, error) {
	artifact, err := b.Artifact(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return artifact.Content, nil
}

// LastModified returns the latest last-write timestamp across the pack's
// files as of the last build.
func (b *Bundle) LastModified(ctx context.Context, cfg domain.BuildConfig) (time.Time, error) {
	artifact, err := b.Artifact(ctx, cfg)
	if err != nil {
		return time.Time{}, err
	}
	return artifact.LastModified, nil
}

// Tag returns the HTML include tag for the pack.
func (b *Bundle) Tag() string {
	return render.Tag(b.pack.Kind(), b.pack.Path())
}
