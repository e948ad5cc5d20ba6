// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, h interface{ Write(*dto.Metric) error }) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	t.Parallel()

	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/test-record", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/test-record", "200", 12*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/test-record", "200", 3*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("requests counter delta = %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	t.Parallel()

	// Balanced calls leave the gauge where it was.
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	TrackActiveRequest(false)

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordSnapshot(t *testing.T) {
	t.Parallel()

	beforeDur := histogramCount(t, SnapshotComputeDuration)
	beforeSize := histogramCount(t, FilteredListings)

	RecordSnapshot(2*time.Millisecond, 48895)

	if got := histogramCount(t, SnapshotComputeDuration) - beforeDur; got != 1 {
		t.Errorf("compute duration samples delta = %d, want 1", got)
	}
	if got := histogramCount(t, FilteredListings) - beforeSize; got != 1 {
		t.Errorf("filtered listings samples delta = %d, want 1", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	t.Parallel()

	hits := testutil.ToFloat64(CacheHits)
	misses := testutil.ToFloat64(CacheMisses)

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)

	if got := testutil.ToFloat64(CacheHits) - hits; got < 1 {
		t.Errorf("cache hits delta = %v, want >= 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses) - misses; got < 2 {
		t.Errorf("cache misses delta = %v, want >= 2", got)
	}
}

func TestRecordWebSocketMessage(t *testing.T) {
	t.Parallel()

	counter := WebSocketMessagesTotal.WithLabelValues("test-snapshot")
	before := testutil.ToFloat64(counter)

	RecordWebSocketMessage("test-snapshot")

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("messages delta = %v, want 1", got)
	}
}

func TestSetDatasetListings(t *testing.T) {
	t.Parallel()

	SetDatasetListings(48895)
	if got := testutil.ToFloat64(DatasetListings); got != 48895 {
		t.Errorf("dataset listings = %v, want 48895", got)
	}
}

func TestMetricNames(t *testing.T) {
	t.Parallel()

	if n := testutil.CollectAndCount(DatasetListings, "listingscope_dataset_listings"); n != 1 {
		t.Errorf("listingscope_dataset_listings series = %d, want 1", n)
	}
	if n := testutil.CollectAndCount(SnapshotComputeDuration, "listingscope_snapshot_compute_duration_seconds"); n != 1 {
		t.Errorf("listingscope_snapshot_compute_duration_seconds series = %d, want 1", n)
	}
}
