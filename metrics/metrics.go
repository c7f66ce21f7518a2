// Package metrics exports memo events as Prometheus counters.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	memo "github.com/venkatsvpr/golang-memo"
)

// Vecs holds the counter families shared by every backend label.
type Vecs struct {
	Hits          *prometheus.CounterVec
	Misses        *prometheus.CounterVec
	Evictions     *prometheus.CounterVec
	Invalidations *prometheus.CounterVec
}

// NewVecs registers the memo counter families with reg under namespace.
func NewVecs(reg prometheus.Registerer, namespace string) *Vecs {
	factory := promauto.With(reg)
	labels := []string{"workload", "backend"}
	return &Vecs{
		Hits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_hits_total",
			Help:      "Total number of results served from the cache",
		}, labels),
		Misses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_misses_total",
			Help:      "Total number of results that had to be computed",
		}, labels),
		Evictions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_evictions_total",
			Help:      "Total number of cached results evicted to make room",
		}, labels),
		Invalidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_invalidations_total",
			Help:      "Total number of whole-cache invalidations",
		}, labels),
	}
}

// For returns the memo.Metrics for one workload and backend.
func (v *Vecs) For(workload string, backend memo.Kind) *Metrics {
	return &Metrics{
		hits:          v.Hits.WithLabelValues(workload, backend.String()),
		misses:        v.Misses.WithLabelValues(workload, backend.String()),
		evictions:     v.Evictions.WithLabelValues(workload, backend.String()),
		invalidations: v.Invalidations.WithLabelValues(workload, backend.String()),
	}
}

// Metrics implements memo.Metrics on Prometheus counters.
type Metrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	evictions     prometheus.Counter
	invalidations prometheus.Counter
}

var _ memo.Metrics = (*Metrics)(nil)

func (m *Metrics) Hit()        { m.hits.Inc() }
func (m *Metrics) Miss()       { m.misses.Inc() }
func (m *Metrics) Eviction()   { m.evictions.Inc() }
func (m *Metrics) Invalidate() { m.invalidations.Inc() }

// Server exposes /metrics and /health over HTTP.
type Server struct {
	server *http.Server
}

// NewServer creates a metrics server on addr serving the metrics in g.
func NewServer(addr string, g prometheus.Gatherer) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// StartAsync serves in a goroutine. Errors other than a clean shutdown are
// passed to onError, which may be nil.
func (s *Server) StartAsync(onError func(error)) {
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) && onError != nil {
			onError(err)
		}
	}()
}

// Stop shuts the server down, waiting for in-flight scrapes until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
