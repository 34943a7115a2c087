package bundle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/stitch/internal/adapters/minify"
	"go.trai.ch/stitch/internal/adapters/telemetry"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports/mocks"
)

func TestBuild(t *testing.T) {
	t1 := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC)

	t.Run("concatenates in order with trailing newlines", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		source := mocks.NewMockFileSource(ctrl)
		source.EXPECT().ReadContent("/srv/css/a.css").Return([]byte("body{}"), nil)
		source.EXPECT().ModTime("/srv/css/a.css").Return(t1, nil)
		source.EXPECT().ReadContent("/srv/css/b.css").Return([]byte(".x{}"), nil)
		source.EXPECT().ModTime("/srv/css/b.css").Return(t2, nil)

		b := NewBuilder(source, minify.Defaults(), telemetry.NewNoop())
		artifact, err := b.Build(context.Background(), domain.KindCSS,
			[]string{"/srv/css/a.css", "/srv/css/b.css"}, domain.BuildConfig{})
		require.NoError(t, err)

		assert.Equal(t, "body{}\n.x{}\n", string(artifact.Content))
		assert.Equal(t, t2, artifact.LastModified)
	})

	t.Run("last modified is the maximum regardless of file order", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		source := mocks.NewMockFileSource(ctrl)
		source.EXPECT().ReadContent("/srv/css/new.css").Return([]byte("a{}"), nil)
		source.EXPECT().ModTime("/srv/css/new.css").Return(t2, nil)
		source.EXPECT().ReadContent("/srv/css/old.css").Return([]byte("b{}"), nil)
		source.EXPECT().ModTime("/srv/css/old.css").Return(t1, nil)

		b := NewBuilder(source, minify.Defaults(), telemetry.NewNoop())
		artifact, err := b.Build(context.Background(), domain.KindCSS,
			[]string{"/srv/css/new.css", "/srv/css/old.css"}, domain.BuildConfig{})
		require.NoError(t, err)

		assert.Equal(t, t2, artifact.LastModified)
	})

	t.Run("read failure aborts the whole build", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		readErr := errors.New("permission denied")
		source := mocks.NewMockFileSource(ctrl)
		source.EXPECT().ReadContent("/srv/css/a.css").Return([]byte("body{}"), nil)
		source.EXPECT().ModTime("/srv/css/a.css").Return(t1, nil)
		source.EXPECT().ReadContent("/srv/css/b.css").Return(nil, readErr)

		b := NewBuilder(source, minify.Defaults(), telemetry.NewNoop())
		artifact, err := b.Build(context.Background(), domain.KindCSS,
			[]string{"/srv/css/a.css", "/srv/css/b.css"}, domain.BuildConfig{})
		require.ErrorIs(t, err, readErr)
		assert.Empty(t, artifact.Content)
	})

	t.Run("minify applies the per-kind minifier to each file", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		source := mocks.NewMockFileSource(ctrl)
		source.EXPECT().ReadContent("/srv/css/a.css").Return([]byte("body {\n  color: red;\n}\n"), nil)
		source.EXPECT().ModTime("/srv/css/a.css").Return(t1, nil)

		b := NewBuilder(source, minify.Defaults(), telemetry.NewNoop())
		artifact, err := b.Build(context.Background(), domain.KindCSS,
			[]string{"/srv/css/a.css"}, domain.BuildConfig{Minify: true})
		require.NoError(t, err)

		assert.Equal(t, "body{color:red;}\n", string(artifact.Content))
	})

	t.Run("unknown kind skips minification", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		source := mocks.NewMockFileSource(ctrl)
		source.EXPECT().ReadContent("/srv/data/x.txt").Return([]byte("raw  content"), nil)
		source.EXPECT().ModTime("/srv/data/x.txt").Return(t1, nil)

		b := NewBuilder(source, minify.Defaults(), telemetry.NewNoop())
		artifact, err := b.Build(context.Background(), domain.Kind("txt"),
			[]string{"/srv/data/x.txt"}, domain.BuildConfig{Minify: true})
		require.NoError(t, err)

		assert.Equal(t, "raw  content\n", string(artifact.Content))
	})

	t.Run("empty pack builds an empty artifact", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		b := NewBuilder(mocks.NewMockFileSource(ctrl), minify.Defaults(), telemetry.NewNoop())
		artifact, err := b.Build(context.Background(), domain.KindCSS, nil, domain.BuildConfig{})
		require.NoError(t, err)

		assert.Empty(t, artifact.Content)
		assert.True(t, artifact.LastModified.IsZero())
	})
}
