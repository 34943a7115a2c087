// Package domain contains the core domain types for stitch.
package domain

import (
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// ResolveFunc maps a root-relative logical path to an absolute filesystem
// path. It is injected at construction so the domain stays free of
// filesystem concerns.
type ResolveFunc func(logical string) (string, error)

// Pack is a named, ordered set of asset files treated as one unit for
// caching and delivery. Its own logical path is its identity and doubles as
// the cache key and the HTTP route.
//
// Declaration order is semantically significant: it is the concatenation
// order of the built artifact. Once a pack is locked by the first content
// request its file list is immutable.
type Pack struct {
	path string
	kind Kind

	mu      sync.Mutex
	locked  bool
	logical []string
	files   []string
	seen    map[string]struct{}

	resolve ResolveFunc
}

// NewPack creates an empty pack with the given identity and kind.
// The pack path must itself be root-relative.
func NewPack(path string, kind Kind, resolve ResolveFunc) (*Pack, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, zerr.With(ErrInvalidPackPath, "path", path)
	}
	return &Pack{
		path:    path,
		kind:    kind,
		seen:    make(map[string]struct{}),
		resolve: resolve,
	}, nil
}

// Path returns the pack's identity.
func (p *Pack) Path() string {
	return p.path
}

// Kind returns the pack's content kind.
func (p *Pack) Kind() Kind {
	return p.kind
}

// AddPath appends a logical path to the pack, resolving it to a filesystem
// path as it goes. It fails with ErrPackLocked after the pack is locked and
// with ErrEmptyPath, ErrPathNotRooted or ErrDuplicatePath for malformed
// input.
func (p *Pack) AddPath(logical string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.locked {
		return zerr.With(zerr.With(ErrPackLocked, "pack", p.path), "path", logical)
	}
	if logical == "" {
		return zerr.With(ErrEmptyPath, "pack", p.path)
	}
	if !strings.HasPrefix(logical, "/") && !strings.HasPrefix(logical, "\\") {
		return zerr.With(zerr.With(ErrPathNotRooted, "pack", p.path), "path", logical)
	}
	if _, dup := p.seen[logical]; dup {
		return zerr.With(zerr.With(ErrDuplicatePath, "pack", p.path), "path", logical)
	}

	file, err := p.resolve(logical)
	if err != nil {
		return err
	}

	p.seen[logical] = struct{}{}
	p.logical = append(p.logical, logical)
	p.files = append(p.files, file)
	return nil
}

// AddPaths applies AddPath to each element in order. On failure the paths
// added before the failing element remain in the pack; packs are built by a
// single goroutine at configuration time.
func (p *Pack) AddPaths(logicals []string) error {
	for _, logical := range logicals {
		if err := p.AddPath(logical); err != nil {
			return err
		}
	}
	return nil
}

// Lock permanently freezes the pack's file list. The first content request
// locks the pack so the cache key and watch set stay in step with a fixed
// file set. Locking is idempotent.
func (p *Pack) Lock() {
	p.mu.Lock()
	p.locked = true
	p.mu.Unlock()
}

// Locked reports whether the pack has been locked.
func (p *Pack) Locked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locked
}

// Paths returns a copy of the declared logical paths in declaration order.
func (p *Pack) Paths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.logical))
	copy(out, p.logical)
	return out
}

// FilePaths returns a copy of the resolved filesystem paths, positionally
// matching Paths.
func (p *Pack) FilePaths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.files))
	copy(out, p.files)
	return out
}
