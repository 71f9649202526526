// Package metrics exposes playback and catalog counters for Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for catalog requests.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors registered for one player session.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	tracksLoaded    prometheus.Counter
	playRejected    prometheus.Counter
	loadFailures    prometheus.Counter
	catalogRequests *prometheus.CounterVec
	queueLength     prometheus.Gauge
}

// New creates a Metrics instance backed by a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tracksLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "harmony_tracks_loaded_total",
			Help: "Number of tracks handed to the playback surface.",
		}),
		playRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "harmony_play_rejected_total",
			Help: "Number of play requests rejected by the playback surface.",
		}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "harmony_load_failures_total",
			Help: "Number of tracks the playback surface failed to load.",
		}),
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "harmony_catalog_requests_total",
			Help: "Catalog requests by operation and outcome.",
		}, []string{"op", "outcome"}),
		queueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "harmony_queue_length",
			Help: "Number of tracks in the playing queue.",
		}),
	}
	m.registry.MustRegister(
		m.tracksLoaded,
		m.playRejected,
		m.loadFailures,
		m.catalogRequests,
		m.queueLength,
	)
	return m
}

// TrackLoaded records a track load request.
func (m *Metrics) TrackLoaded() {
	if m == nil {
		return
	}
	m.tracksLoaded.Inc()
}

// PlayRejected records a rejected play request.
func (m *Metrics) PlayRejected() {
	if m == nil {
		return
	}
	m.playRejected.Inc()
}

// LoadFailed records a failed track load.
func (m *Metrics) LoadFailed() {
	if m == nil {
		return
	}
	m.loadFailures.Inc()
}

// CatalogRequest records a catalog call with its outcome.
func (m *Metrics) CatalogRequest(op string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.catalogRequests.WithLabelValues(op, outcome).Inc()
}

// SetQueueLength updates the queue length gauge.
func (m *Metrics) SetQueueLength(n int) {
	if m == nil {
		return
	}
	m.queueLength.Set(float64(n))
}

// Handler returns an HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx) //nolint:contextcheck // parent is already done
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
