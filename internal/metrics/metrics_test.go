package metrics_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/metrics"
)

func TestMetrics_Endpoint(t *testing.T) {
	m := metrics.New()

	m.IncCacheHit()
	m.IncCacheHit()
	m.IncCacheMiss()
	m.ObserveRebuild(25 * time.Millisecond)
	m.IncEviction()
	m.IncRebuildFailure()
	m.IncWatchError()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "stitch_cache_hits_total 2")
	assert.Contains(t, body, "stitch_cache_misses_total 1")
	assert.Contains(t, body, "stitch_rebuilds_total 1")
	assert.Contains(t, body, "stitch_rebuild_failures_total 1")
	assert.Contains(t, body, "stitch_evictions_total 1")
	assert.Contains(t, body, "stitch_watch_errors_total 1")
	assert.Contains(t, body, `stitch_build_info{version="dev"} 1`)
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *metrics.Metrics

	m.IncCacheHit()
	m.IncCacheMiss()
	m.ObserveRebuild(time.Millisecond)
	m.IncRebuildFailure()
	m.IncEviction()
	m.IncWatchError()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, rec.Code)
}
