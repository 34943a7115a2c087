package bundle

import (
	"errors"

	"go.trai.ch/zerr"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/engine/cache"
)

// ErrUnknownBundle is returned when a bundle is looked up by an identity the
// manifest never declared.
var ErrUnknownBundle = errors.New("no bundle registered for path")

// Registry holds the bundles declared by the manifest, addressable by pack
// identity. It is built once at startup and read-only afterwards.
type Registry struct {
	bundles map[string]*Bundle
	order   []string
}

// NewRegistry creates a bundle per manifest pack, preserving manifest order.
func NewRegistry(manifest *domain.Manifest, c *cache.Cache) *Registry {
	r := &Registry{bundles: make(map[string]*Bundle, len(manifest.Packs))}
	for _, pack := range manifest.Packs {
		r.bundles[pack.Path()] = NewBundle(pack, c)
		r.order = append(r.order, pack.Path())
	}
	return r
}

// Lookup returns the bundle for a pack identity.
func (r *Registry) Lookup(path string) (*Bundle, error) {
	b, ok := r.bundles[path]
	if !ok {
		return nil, zerr.With(ErrUnknownBundle, "path", path)
	}
	return b, nil
}

// All returns the bundles in manifest order.
func (r *Registry) All() []*Bundle {
	out := make([]*Bundle, 0, len(r.order))
	for _, path := range r.order {
		out = append(out, r.bundles[path])
	}
	return out
}
