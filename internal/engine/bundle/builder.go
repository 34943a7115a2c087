// Package bundle turns packs into servable artifacts. The Builder reads and
// concatenates the constituent files, the Bundle facade ties a pack to the
// cache and the Registry holds the bundles declared by the manifest.
package bundle

import (
	"bytes"
	"context"
	"time"

	"go.trai.ch/zerr"

	"go.trai.ch/stitch/internal/adapters/minify"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
)

// Builder implements ports.ContentBuilder by concatenating the pack's files
// in declaration order. Each file's content is terminated with a newline so
// adjacent files cannot run together. The artifact's LastModified is the
// latest last-write timestamp across all constituent files.
type Builder struct {
	source    ports.FileSource
	minifiers minify.Set
	tracer    ports.Tracer
}

// NewBuilder creates a Builder reading through the given source.
func NewBuilder(source ports.FileSource, minifiers minify.Set, tracer ports.Tracer) *Builder {
	return &Builder{
		source:    source,
		minifiers: minifiers,
		tracer:    tracer,
	}
}

// Build produces the artifact for the given ordered file list. Any read
// failure aborts the whole build; a partial artifact is never returned.
func (b *Builder) Build(ctx context.Context, kind domain.Kind, paths []string, cfg domain.BuildConfig) (domain.Artifact, error) {
	_, span := b.tracer.Start(ctx, "bundle.build")
	defer span.End()
	span.SetAttribute("kind", kind.String())
	span.SetAttribute("files", len(paths))

	var buf bytes.Buffer
	var latest time.Time

	for _, path := range paths {
		content, err := b.source.ReadContent(path)
		if err != nil {
			err = zerr.With(err, "file", path)
			span.RecordError(err)
			return domain.Artifact{}, err
		}

		mod, err := b.source.ModTime(path)
		if err != nil {
			err = zerr.With(err, "file", path)
			span.RecordError(err)
			return domain.Artifact{}, err
		}
		if mod.After(latest) {
			latest = mod
		}

		if cfg.Minify {
			if m, ok := b.minifiers[kind]; ok {
				content = m.Minify(content)
			}
		}

		buf.Write(content)
		buf.WriteByte('\n')
	}

	span.SetAttribute("bytes", buf.Len())
	return domain.Artifact{
		Content:      buf.Bytes(),
		LastModified: latest,
	}, nil
}
