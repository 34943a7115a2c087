package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver maps root-relative logical asset paths to absolute filesystem
// paths under a fixed asset root. Resolution is pure string manipulation;
// no I/O is performed.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver for the given asset root directory.
// The root is made absolute and stripped of trailing separators once.
func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to get absolute path of asset root"), "root", root)
	}
	return &Resolver{root: filepath.Clean(abs)}, nil
}

// Root returns the absolute asset root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve joins a logical path onto the asset root and canonicalizes the
// result. Mixed separators are normalized to the host convention and
// leading separators are stripped before joining. A path whose cleaned
// form escapes the root is rejected.
func (r *Resolver) Resolve(logical string) (string, error) {
	normalized := strings.ReplaceAll(logical, "\\", "/")
	normalized = strings.TrimLeft(normalized, "/")

	resolved := filepath.Join(r.root, filepath.FromSlash(normalized))

	// filepath.Join cleans ".." segments, so a crafted path can only land
	// at or above the root, never inside with traversal left over.
	if resolved != r.root && !strings.HasPrefix(resolved, r.root+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(domain.ErrPathEscapesRoot, "root", r.root), "path", logical)
	}
	return resolved, nil
}
