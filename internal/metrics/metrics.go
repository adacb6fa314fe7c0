package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/core"
)

var (
	cacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabzy_cache_hits_total",
		Help: "Fetches served from the local snapshot store",
	}, []string{"kind"})
	cacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabzy_cache_misses_total",
		Help: "Fetches that had to go to the gateway",
	}, []string{"kind"})
	cacheRefreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabzy_cache_refreshes_total",
		Help: "Gateway fetches that replaced a stored snapshot",
	}, []string{"kind"})
	cacheInvalidations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabzy_cache_invalidations_total",
		Help: "Explicit invalidations, from mutations or push events",
	}, []string{"kind"})
	gatewayErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collabzy_gateway_errors_total",
		Help: "Failed gateway fetches",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(
		cacheHits,
		cacheMisses,
		cacheRefreshes,
		cacheInvalidations,
		gatewayErrors,
	)
}

// Recorder is the prometheus implementation of the MetricsRecorder interface.
type Recorder struct{}

// NewRecorder creates a prometheus-backed recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) CacheHit(kind core.ResourceKind) {
	cacheHits.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) CacheMiss(kind core.ResourceKind) {
	cacheMisses.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) Refresh(kind core.ResourceKind) {
	cacheRefreshes.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) Invalidation(kind core.ResourceKind) {
	cacheInvalidations.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) GatewayError(kind core.ResourceKind) {
	gatewayErrors.WithLabelValues(string(kind)).Inc()
}

// StartServer exposes /metrics on addr in a background goroutine.
func StartServer(addr string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()
	logger.Info("Metrics server listening", zap.String("addr", addr))

	return srv
}
