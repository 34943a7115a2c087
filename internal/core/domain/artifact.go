package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Artifact is the built result for a pack: the concatenated content of its
// constituent files plus the latest last-write timestamp across them.
// An Artifact is immutable once constructed; the cache replaces entries as
// whole values, never in place.
type Artifact struct {
	Content      []byte
	LastModified time.Time
}

// Sum returns the XXHash digest of the content in fixed-width hex.
// The HTTP layer uses it as the ETag value.
func (a Artifact) Sum() string {
	return fmt.Sprintf("%016x", xxhash.Sum64(a.Content))
}

// BuildConfig carries the per-request build options. It is not part of a
// pack's identity: whichever request triggers a rebuild determines the
// configuration of the cached artifact until the next invalidation.
type BuildConfig struct {
	// Minify applies the per-kind minifier to each file before concatenation.
	Minify bool
	// AutoRefresh installs a file-change watch that evicts the cached
	// artifact when any constituent file changes. When false the artifact
	// is cached for the process lifetime.
	AutoRefresh bool
}
