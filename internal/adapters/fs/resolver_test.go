package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestResolver_Resolve(t *testing.T) {
	root := t.TempDir()
	resolver, err := fs.NewResolver(root)
	require.NoError(t, err)

	t.Run("joins logical path onto root", func(t *testing.T) {
		resolved, err := resolver.Resolve("/css/site.css")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "css", "site.css"), resolved)
	})

	t.Run("strips extra leading separators", func(t *testing.T) {
		resolved, err := resolver.Resolve("//css/site.css")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "css", "site.css"), resolved)
	})

	t.Run("normalizes mixed separators", func(t *testing.T) {
		resolved, err := resolver.Resolve("\\css\\theme\\dark.css")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "css", "theme", "dark.css"), resolved)
	})

	t.Run("collapses dot segments", func(t *testing.T) {
		resolved, err := resolver.Resolve("/css/./theme/../site.css")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "css", "site.css"), resolved)
	})

	t.Run("rejects traversal out of root", func(t *testing.T) {
		_, err := resolver.Resolve("/../outside.css")
		require.ErrorIs(t, err, domain.ErrPathEscapesRoot)

		_, err = resolver.Resolve("/css/../../../etc/passwd")
		require.ErrorIs(t, err, domain.ErrPathEscapesRoot)
	})
}

func TestResolver_RootNormalization(t *testing.T) {
	base := t.TempDir()

	trailing, err := fs.NewResolver(base + string(filepath.Separator))
	require.NoError(t, err)
	plain, err := fs.NewResolver(base)
	require.NoError(t, err)

	assert.Equal(t, plain.Root(), trailing.Root())
}
