// Package metrics defines the Prometheus metrics exported by tunes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend API metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunes_api_requests_total",
			Help: "Total number of backend API requests",
		},
		[]string{"endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tunes_api_request_duration_seconds",
			Help:    "Backend API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"endpoint"},
	)
)

// Search metrics
var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunes_searches_total",
			Help: "Debounced searches by outcome",
		},
		[]string{"outcome"}, // "rendered", "stale", "cleared", "error"
	)
)

// Playback metrics
var (
	PlaybackLoadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tunes_playback_loads_total",
			Help: "Total number of songs loaded for playback",
		},
	)

	PlaybackStartsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunes_playback_starts_total",
			Help: "Playback start attempts after the source became playable",
		},
		[]string{"result"}, // "success", "error"
	)

	PlaybackBufferedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tunes_playback_buffered_bytes_total",
			Help: "Total number of audio bytes downloaded",
		},
	)

	PlaybackErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunes_playback_errors_total",
			Help: "Audio source failures by stage",
		},
		[]string{"stage"}, // "fetch", "decode"
	)
)

// InitializeMetrics pre-populates expected label combinations so that
// every series is exported from the first scrape.
func InitializeMetrics() {
	for _, ep := range []string{"songs", "search", "playlists", "create_playlist"} {
		APIRequestDuration.WithLabelValues(ep)
		APIRequestsTotal.WithLabelValues(ep, "error")
	}
	for _, outcome := range []string{"rendered", "stale", "cleared", "error"} {
		SearchesTotal.WithLabelValues(outcome)
	}
	for _, result := range []string{"success", "error"} {
		PlaybackStartsTotal.WithLabelValues(result)
	}
	for _, stage := range []string{"fetch", "decode"} {
		PlaybackErrorsTotal.WithLabelValues(stage)
	}
}
