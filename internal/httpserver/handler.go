// Package httpserver serves the built packs over HTTP along with the
// operational endpoints.
package httpserver

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/bundle"
	"go.trai.ch/stitch/internal/metrics"
	"go.trai.ch/stitch/internal/render"
)

// NewHandler builds the router: one GET/HEAD route per declared pack plus
// /-/healthy and /metrics. Pack routes are fixed at startup because pack
// identities come from the manifest.
func NewHandler(manifest *domain.Manifest, registry *bundle.Registry, log ports.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Compress(5,
		"text/css",
		"text/javascript",
	))

	r.Get("/-/healthy", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	for _, b := range registry.All() {
		h := packHandler(b, manifest.ConfigFor(b.Path()), log)
		r.Get(b.Path(), h)
		r.Head(b.Path(), h)
	}

	return r
}

// packHandler serves one pack. Conditional requests are answered by
// http.ServeContent from the artifact's ETag and Last-Modified; a failed
// build answers 502 without caching anything.
func packHandler(b *bundle.Bundle, cfg domain.BuildConfig, log ports.Logger) http.HandlerFunc {
	contentType := render.ContentType(b.Kind())

	return func(w http.ResponseWriter, r *http.Request) {
		artifact, err := b.Artifact(r.Context(), cfg)
		if err != nil {
			log.Error(err)
			http.Error(w, "pack build failed", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("ETag", `"`+artifact.Sum()+`"`)
		http.ServeContent(w, r, "", artifact.LastModified, bytes.NewReader(artifact.Content))
	}
}
