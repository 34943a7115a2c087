package bundle

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/stitch/internal/adapters/minify"
	"go.trai.ch/stitch/internal/adapters/telemetry"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports/mocks"
	"go.trai.ch/stitch/internal/engine/cache"
)

// countingSource is a FileSource double that counts reads per path.
type countingSource struct {
	content map[string]string
	modTime map[string]time.Time
	reads   atomic.Int32
}

func (s *countingSource) ReadContent(path string) ([]byte, error) {
	s.reads.Add(1)
	return []byte(s.content[path]), nil
}

func (s *countingSource) ModTime(path string) (time.Time, error) {
	return s.modTime[path], nil
}

func newTestBundle(t *testing.T, source *countingSource, files ...string) *Bundle {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	builder := NewBuilder(source, minify.Defaults(), telemetry.NewNoop())
	c := cache.New(builder, mocks.NewMockChangeNotifier(ctrl), logger, nil)

	pack, err := domain.NewPack("/packs/site.css", domain.KindCSS, func(logical string) (string, error) {
		return "/srv/assets" + logical, nil
	})
	require.NoError(t, err)
	require.NoError(t, pack.AddPaths(files))

	return NewBundle(pack, c)
}

func TestBundleContent(t *testing.T) {
	t1 := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC)

	source := &countingSource{
		content: map[string]string{
			"/srv/assets/css/a.css": "body{}",
			"/srv/assets/css/b.css": ".x{}",
		},
		modTime: map[string]time.Time{
			"/srv/assets/css/a.css": t1,
			"/srv/assets/css/b.css": t2,
		},
	}
	b := newTestBundle(t, source, "/css/a.css", "/css/b.css")

	content, err := b.Content(context.Background(), domain.BuildConfig{})
	require.NoError(t, err)
	assert.Equal(t, "body{}\n.x{}\n", string(content))

	mod, err := b.LastModified(context.Background(), domain.BuildConfig{})
	require.NoError(t, err)
	assert.Equal(t, t2, mod)

	// Repeated access serves from the cache without touching the source.
	for range 5 {
		_, err = b.Content(context.Background(), domain.BuildConfig{})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), source.reads.Load())
}

func TestBundleLocksPackOnFirstAccess(t *testing.T) {
	source := &countingSource{
		content: map[string]string{"/srv/assets/css/a.css": "body{}"},
		modTime: map[string]time.Time{},
	}
	b := newTestBundle(t, source, "/css/a.css")

	_, err := b.Content(context.Background(), domain.BuildConfig{})
	require.NoError(t, err)

	err = b.pack.AddPath("/css/late.css")
	assert.ErrorIs(t, err, domain.ErrPackLocked)
}

func TestBundleAccessors(t *testing.T) {
	source := &countingSource{content: map[string]string{}, modTime: map[string]time.Time{}}
	b := newTestBundle(t, source, "/css/a.css", "/css/b.css")

	assert.Equal(t, "/packs/site.css", b.Path())
	assert.Equal(t, domain.KindCSS, b.Kind())
	assert.Equal(t, []string{"/css/a.css", "/css/b.css"}, b.LogicalPaths())
	assert.Equal(t, `<link rel="stylesheet" href="/packs/site.css"/>`, b.Tag())
}

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	resolve := func(logical string) (string, error) { return "/srv" + logical, nil }
	css, err := domain.NewPack("/packs/site.css", domain.KindCSS, resolve)
	require.NoError(t, err)
	js, err := domain.NewPack("/packs/app.js", domain.KindJS, resolve)
	require.NoError(t, err)

	manifest := &domain.Manifest{Packs: []*domain.Pack{css, js}}
	c := cache.New(nil, nil, logger, nil)
	r := NewRegistry(manifest, c)

	t.Run("lookup by identity", func(t *testing.T) {
		b, err := r.Lookup("/packs/app.js")
		require.NoError(t, err)
		assert.Equal(t, domain.KindJS, b.Kind())
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, err := r.Lookup("/packs/missing.css")
		assert.ErrorIs(t, err, ErrUnknownBundle)
	})

	t.Run("manifest order", func(t *testing.T) {
		all := r.All()
		require.Len(t, all, 2)
		assert.Equal(t, "/packs/site.css", all[0].Path())
		assert.Equal(t, "/packs/app.js", all[1].Path())
	})
}
