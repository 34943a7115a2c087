// Package metrics exposes the prometheus registry and instruments for the
// pack cache and the HTTP server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.trai.ch/stitch/internal/build"
)

// Metrics holds a private registry plus the stitch instruments. All methods
// are safe on a nil receiver so wiring metrics stays optional.
type Metrics struct {
	reg *prometheus.Registry

	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	rebuilds        prometheus.Counter
	rebuildFailures prometheus.Counter
	evictions       prometheus.Counter
	watchErrors     prometheus.Counter
	rebuildDur      prometheus.Histogram
	buildInfo       *prometheus.GaugeVec
}

// New returns a fresh registry with the standard Go/process collectors and
// the stitch instruments registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		reg: reg,
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stitch_cache_hits_total",
			Help: "Pack content requests served from the in-memory cache",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stitch_cache_misses_total",
			Help: "Pack content requests that found no cached artifact",
		}),
		rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stitch_rebuilds_total",
			Help: "Successful pack artifact builds",
		}),
		rebuildFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stitch_rebuild_failures_total",
			Help: "Pack artifact builds that failed",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stitch_evictions_total",
			Help: "Cached artifacts evicted by file-change invalidation",
		}),
		watchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stitch_watch_errors_total",
			Help: "Failed file-watch subscriptions (entry served unwatched)",
		}),
		rebuildDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stitch_rebuild_duration_seconds",
			Help:    "Pack artifact build latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		buildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "stitch_build_info",
			Help: "Build information",
		}, []string{"version"}),
	}

	reg.MustRegister(
		m.cacheHits,
		m.cacheMisses,
		m.rebuilds,
		m.rebuildFailures,
		m.evictions,
		m.watchErrors,
		m.rebuildDur,
		m.buildInfo,
	)
	m.buildInfo.WithLabelValues(build.Version).Set(1)

	return m
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// IncCacheHit counts a request served from the cache.
func (m *Metrics) IncCacheHit() {
	if m != nil {
		m.cacheHits.Inc()
	}
}

// IncCacheMiss counts a request that found no cached artifact.
func (m *Metrics) IncCacheMiss() {
	if m != nil {
		m.cacheMisses.Inc()
	}
}

// ObserveRebuild counts a successful build and records its latency.
func (m *Metrics) ObserveRebuild(d time.Duration) {
	if m != nil {
		m.rebuilds.Inc()
		m.rebuildDur.Observe(d.Seconds())
	}
}

// IncRebuildFailure counts a failed build.
func (m *Metrics) IncRebuildFailure() {
	if m != nil {
		m.rebuildFailures.Inc()
	}
}

// IncEviction counts a file-change eviction.
func (m *Metrics) IncEviction() {
	if m != nil {
		m.evictions.Inc()
	}
}

// IncWatchError counts a failed watch subscription.
func (m *Metrics) IncWatchError() {
	if m != nil {
		m.watchErrors.Inc()
	}
}
