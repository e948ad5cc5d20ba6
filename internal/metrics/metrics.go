// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listingscope_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listingscope_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "listingscope_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Snapshot Metrics
	SnapshotComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "listingscope_snapshot_compute_duration_seconds",
			Help:    "Time to filter the dataset and compute a dashboard snapshot",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
	)

	FilteredListings = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "listingscope_filtered_listings",
			Help:    "Number of listings that passed the filter per computed snapshot",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 .. 262144
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listingscope_cache_hits_total",
			Help: "Total number of snapshot cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listingscope_cache_misses_total",
			Help: "Total number of snapshot cache misses",
		},
	)

	// WebSocket Metrics
	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "listingscope_websocket_connections",
			Help: "Current number of connected WebSocket clients",
		},
	)

	WebSocketMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listingscope_websocket_messages_total",
			Help: "Total number of WebSocket messages sent, by message type",
		},
		[]string{"type"},
	)

	// Dataset Metrics
	DatasetListings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "listingscope_dataset_listings",
			Help: "Number of listings in the loaded dataset",
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSnapshot records a freshly computed snapshot.
func RecordSnapshot(duration time.Duration, filtered int) {
	SnapshotComputeDuration.Observe(duration.Seconds())
	FilteredListings.Observe(float64(filtered))
}

// RecordCacheLookup records a snapshot cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordWebSocketMessage counts an outgoing WebSocket message.
func RecordWebSocketMessage(msgType string) {
	WebSocketMessagesTotal.WithLabelValues(msgType).Inc()
}

// SetDatasetListings records the size of the loaded dataset.
func SetDatasetListings(n int) {
	DatasetListings.Set(float64(n))
}
