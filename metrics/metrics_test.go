package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memo "github.com/venkatsvpr/golang-memo"
)

func TestMetrics_TrackMemo(t *testing.T) {
	reg := prometheus.NewRegistry()
	vecs := NewVecs(reg, "test")

	b, err := memo.NewLRUBackend[int, int](2)
	require.NoError(t, err)
	m := memo.New[int, int](b, func(n int) int { return n }, memo.WithMetrics(vecs.For("square", memo.KindLRU)))

	m.Call(1)
	m.Call(1)
	m.Call(2)
	m.Call(3)
	m.Invalidate()

	assert.Equal(t, 1.0, testutil.ToFloat64(vecs.Hits.WithLabelValues("square", "lru")))
	assert.Equal(t, 3.0, testutil.ToFloat64(vecs.Misses.WithLabelValues("square", "lru")))
	assert.Equal(t, 1.0, testutil.ToFloat64(vecs.Evictions.WithLabelValues("square", "lru")))
	assert.Equal(t, 1.0, testutil.ToFloat64(vecs.Invalidations.WithLabelValues("square", "lru")))
	assert.Equal(t, 0.0, testutil.ToFloat64(vecs.Hits.WithLabelValues("square", "splay")))
}

func TestServer_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	vecs := NewVecs(reg, "test")
	vecs.For("fib", memo.KindSplay).Hit()

	srv := NewServer("127.0.0.1:0", reg)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `test_memo_hits_total{backend="splay",workload="fib"} 1`), rec.Body.String())

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
