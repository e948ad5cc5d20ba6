// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"testing"

	"github.com/tomtom215/listingscope/internal/models"
)

func TestComputeMetricsEmpty(t *testing.T) {
	t.Parallel()

	for _, subset := range [][]models.Listing{nil, {}} {
		got := ComputeMetrics(subset)
		if got != (models.AnalysisMetrics{}) {
			t.Errorf("ComputeMetrics(%v) = %+v, want zero value", subset, got)
		}
	}
}

func TestComputeMetricsMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prices []float64
		want   int64
	}{
		{"odd count", []float64{10, 20, 30}, 20},
		{"even count", []float64{10, 20, 30, 40}, 25},
		{"unsorted input", []float64{30, 10, 20}, 20},
		{"single value", []float64{42}, 42},
		{"even count rounds half up", []float64{10, 11}, 11},
		{"fractional prices", []float64{99.4, 99.4, 100.2}, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeMetrics(withPrices(tt.prices...))
			if got.MedianPrice != tt.want {
				t.Errorf("MedianPrice = %d, want %d", got.MedianPrice, tt.want)
			}
		})
	}
}

func TestComputeMetricsDoesNotReorderInput(t *testing.T) {
	t.Parallel()

	subset := withPrices(30, 10, 20)
	ComputeMetrics(subset)
	if subset[0].Price != 30 || subset[1].Price != 10 || subset[2].Price != 20 {
		t.Errorf("input reordered: %v %v %v", subset[0].Price, subset[1].Price, subset[2].Price)
	}
}

func TestComputeMetricsAverages(t *testing.T) {
	t.Parallel()

	subset := []models.Listing{
		listing(1, "Brooklyn", "Private room", 100, 1, 10),
		listing(2, "Brooklyn", "Private room", 101, 2, 11),
	}
	got := ComputeMetrics(subset)

	if got.TotalListings != 2 {
		t.Errorf("TotalListings = %d, want 2", got.TotalListings)
	}
	// 100.5, 1.5 and 10.5 all round up.
	if got.AveragePrice != 101 {
		t.Errorf("AveragePrice = %d, want 101", got.AveragePrice)
	}
	if got.AverageReviews != 2 {
		t.Errorf("AverageReviews = %d, want 2", got.AverageReviews)
	}
	if got.AverageAvailability != 11 {
		t.Errorf("AverageAvailability = %d, want 11", got.AverageAvailability)
	}
}

func TestComputeMetricsModeTieBreak(t *testing.T) {
	t.Parallel()

	rooms := []string{"A", "B", "A", "B"}
	subset := make([]models.Listing, len(rooms))
	for i, r := range rooms {
		subset[i] = listing(int64(i+1), "Queens", r, 100, 0, 0)
	}

	if got := ComputeMetrics(subset).MostCommonRoomType; got != "A" {
		t.Errorf("MostCommonRoomType = %q, want %q", got, "A")
	}

	// Reversing first occurrence flips the winner.
	subset[0].RoomType, subset[1].RoomType = "B", "A"
	if got := ComputeMetrics(subset).MostCommonRoomType; got != "B" {
		t.Errorf("MostCommonRoomType = %q, want %q", got, "B")
	}
}

func TestComputeMetricsPopularNeighbourhoodUsesRegion(t *testing.T) {
	t.Parallel()

	subset := []models.Listing{
		listing(1, "Queens", "Private room", 100, 0, 0),
		listing(2, "Brooklyn", "Private room", 100, 0, 0),
		listing(3, "Brooklyn", "Private room", 100, 0, 0),
	}
	subset[0].Neighbourhood = "Astoria"
	subset[1].Neighbourhood = "Bushwick"
	subset[2].Neighbourhood = "Williamsburg"

	if got := ComputeMetrics(subset).MostPopularNeighbourhood; got != "Brooklyn" {
		t.Errorf("MostPopularNeighbourhood = %q, want %q", got, "Brooklyn")
	}
}

func TestComputeMetricsIdempotent(t *testing.T) {
	t.Parallel()

	subset := sampleListings()
	first := ComputeMetrics(subset)
	second := ComputeMetrics(subset)
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestComputeMetricsSample(t *testing.T) {
	t.Parallel()

	got := ComputeMetrics(sampleListings())
	want := models.AnalysisMetrics{
		TotalListings:            10,
		AveragePrice:             179, // 1793 / 10
		MedianPrice:              119, // (89 + 149) / 2
		MostCommonRoomType:       "Entire home/apt",
		MostPopularNeighbourhood: "Manhattan",
		AverageReviews:           58,  // 584 / 10
		AverageAvailability:      168, // 1681 / 10
	}
	if got != want {
		t.Errorf("ComputeMetrics() = %+v, want %+v", got, want)
	}
}
