package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/core/domain"
)

func testResolve(logical string) (string, error) {
	return filepath.Join("/srv/assets", filepath.FromSlash(logical)), nil
}

func TestPack_AddPath(t *testing.T) {
	t.Run("appends in declaration order", func(t *testing.T) {
		p, err := domain.NewPack("/packs/site.css", domain.KindCSS, testResolve)
		require.NoError(t, err)

		require.NoError(t, p.AddPath("/css/a.css"))
		require.NoError(t, p.AddPath("/css/b.css"))
		require.NoError(t, p.AddPath("/css/theme/c.css"))

		assert.Equal(t, []string{"/css/a.css", "/css/b.css", "/css/theme/c.css"}, p.Paths())
		assert.Equal(t, []string{
			filepath.Join("/srv/assets", "css", "a.css"),
			filepath.Join("/srv/assets", "css", "b.css"),
			filepath.Join("/srv/assets", "css", "theme", "c.css"),
		}, p.FilePaths())
	})

	t.Run("rejects empty path", func(t *testing.T) {
		p, err := domain.NewPack("/packs/site.css", domain.KindCSS, testResolve)
		require.NoError(t, err)

		err = p.AddPath("")
		require.ErrorIs(t, err, domain.ErrEmptyPath)
	})

	t.Run("rejects path without root marker", func(t *testing.T) {
		p, err := domain.NewPack("/packs/site.css", domain.KindCSS, testResolve)
		require.NoError(t, err)

		err = p.AddPath("css/a.css")
		require.ErrorIs(t, err, domain.ErrPathNotRooted)
	})

	t.Run("rejects duplicate path", func(t *testing.T) {
		p, err := domain.NewPack("/packs/site.css", domain.KindCSS, testResolve)
		require.NoError(t, err)

		require.NoError(t, p.AddPath("/css/a.css"))
		err = p.AddPath("/css/a.css")
		require.ErrorIs(t, err, domain.ErrDuplicatePath)
	})

	t.Run("rejects any path after lock", func(t *testing.T) {
		p, err := domain.NewPack("/packs/site.css", domain.KindCSS, testResolve)
		require.NoError(t, err)
		require.NoError(t, p.AddPath("/css/a.css"))

		p.Lock()
		err = p.AddPath("/css/b.css")
		require.ErrorIs(t, err, domain.ErrPackLocked)

		// The earlier state survives untouched.
		assert.Equal(t, []string{"/css/a.css"}, p.Paths())
		assert.True(t, p.Locked())
	})
}

func TestPack_AddPaths(t *testing.T) {
	t.Run("adds all elements in order", func(t *testing.T) {
		p, err := domain.NewPack("/packs/app.js", domain.KindJS, testResolve)
		require.NoError(t, err)

		require.NoError(t, p.AddPaths([]string{"/js/a.js", "/js/b.js"}))
		assert.Equal(t, []string{"/js/a.js", "/js/b.js"}, p.Paths())
	})

	t.Run("stops at the first invalid element", func(t *testing.T) {
		p, err := domain.NewPack("/packs/app.js", domain.KindJS, testResolve)
		require.NoError(t, err)

		err = p.AddPaths([]string{"/js/a.js", "js/b.js", "/js/c.js"})
		require.ErrorIs(t, err, domain.ErrPathNotRooted)
		assert.Equal(t, []string{"/js/a.js"}, p.Paths())
	})
}

func TestPack_Views(t *testing.T) {
	t.Run("Paths returns a copy", func(t *testing.T) {
		p, err := domain.NewPack("/packs/site.css", domain.KindCSS, testResolve)
		require.NoError(t, err)
		require.NoError(t, p.AddPath("/css/a.css"))

		view := p.Paths()
		view[0] = "/mutated.css"
		assert.Equal(t, []string{"/css/a.css"}, p.Paths())
	})

	t.Run("Lock is idempotent", func(t *testing.T) {
		p, err := domain.NewPack("/packs/site.css", domain.KindCSS, testResolve)
		require.NoError(t, err)

		p.Lock()
		p.Lock()
		assert.True(t, p.Locked())
	})
}

func TestNewPack(t *testing.T) {
	_, err := domain.NewPack("packs/site.css", domain.KindCSS, testResolve)
	require.ErrorIs(t, err, domain.ErrInvalidPackPath)
}

func TestParseKind(t *testing.T) {
	kind, err := domain.ParseKind("css")
	require.NoError(t, err)
	assert.Equal(t, domain.KindCSS, kind)

	kind, err = domain.ParseKind("js")
	require.NoError(t, err)
	assert.Equal(t, domain.KindJS, kind)

	_, err = domain.ParseKind("wasm")
	require.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestArtifact_Sum(t *testing.T) {
	a := domain.Artifact{Content: []byte("body{}\n.x{}\n"), LastModified: time.Now()}
	b := domain.Artifact{Content: []byte("body{}\n.x{}\n")}

	assert.Equal(t, a.Sum(), b.Sum(), "sum depends only on content")
	assert.Len(t, a.Sum(), 16)

	c := domain.Artifact{Content: []byte("body{}\n.y{}\n")}
	assert.NotEqual(t, a.Sum(), c.Sum())
}

func TestManifest_ConfigFor(t *testing.T) {
	m := &domain.Manifest{
		Minify:      true,
		AutoRefresh: false,
		Config: map[string]domain.BuildConfig{
			"/packs/site.css": {Minify: false, AutoRefresh: true},
		},
	}

	assert.Equal(t, domain.BuildConfig{Minify: false, AutoRefresh: true}, m.ConfigFor("/packs/site.css"))
	assert.Equal(t, domain.BuildConfig{Minify: true, AutoRefresh: false}, m.ConfigFor("/packs/other.js"))
}
