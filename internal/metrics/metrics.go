// Package metrics provides Prometheus instrumentation for the storefront.
//
// Counters:
//
//	streamvault_playback_requests_total{decision}   gate decisions (direct, after_ad)
//	streamvault_ads_finished_total{outcome}         completed, skipped, torn_down
//	streamvault_upgrades_total{outcome}             activated, cancelled
//	streamvault_preference_toggles_total{kind,state} favorite/blocked on/off
//	streamvault_sessions_total                      successful sign-ins
//
// Metrics live on a private registry so tests and multiple Recorders never
// collide on the global default registry.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns the storefront counters
type Recorder struct {
	registry *prometheus.Registry

	playbackRequests  *prometheus.CounterVec
	adsFinished       *prometheus.CounterVec
	upgrades          *prometheus.CounterVec
	preferenceToggles *prometheus.CounterVec
	sessions          prometheus.Counter
}

// New registers the storefront counters, plus Go runtime and process
// collectors, on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		playbackRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "streamvault_playback_requests_total",
			Help: "Playback requests by entitlement decision.",
		}, []string{"decision"}),
		adsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "streamvault_ads_finished_total",
			Help: "Advertisement interstitials by how they ended.",
		}, []string{"outcome"}),
		upgrades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "streamvault_upgrades_total",
			Help: "Upgrade flows by outcome.",
		}, []string{"outcome"}),
		preferenceToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "streamvault_preference_toggles_total",
			Help: "Favorite/blocked toggles by kind and resulting state.",
		}, []string{"kind", "state"}),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "streamvault_sessions_total",
			Help: "Sessions started by sign-in.",
		}),
	}

	r.registry.MustRegister(
		r.playbackRequests,
		r.adsFinished,
		r.upgrades,
		r.preferenceToggles,
		r.sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Registry exposes the private registry for scraping and tests
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Nil-receiver methods are no-ops so callers can run without metrics.

// PlaybackRequested counts one gate decision
func (r *Recorder) PlaybackRequested(decision string) {
	if r == nil {
		return
	}
	r.playbackRequests.WithLabelValues(decision).Inc()
}

// AdFinished counts an ad ending with outcome
func (r *Recorder) AdFinished(outcome string) {
	if r == nil {
		return
	}
	r.adsFinished.WithLabelValues(outcome).Inc()
}

// UpgradeFinished counts an upgrade flow ending with outcome
func (r *Recorder) UpgradeFinished(outcome string) {
	if r == nil {
		return
	}
	r.upgrades.WithLabelValues(outcome).Inc()
}

// PreferenceToggled counts a favorite/blocked toggle
func (r *Recorder) PreferenceToggled(kind string, on bool) {
	if r == nil {
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	r.preferenceToggles.WithLabelValues(kind, state).Inc()
}

// SessionStarted counts a successful sign-in
func (r *Recorder) SessionStarted() {
	if r == nil {
		return
	}
	r.sessions.Inc()
}

// Handler returns the scrape handler for this Recorder's registry
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Serve exposes /metrics on addr until ctx is cancelled
func (r *Recorder) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}()

	logger.Info("serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
