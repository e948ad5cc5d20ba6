// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"slices"
	"testing"

	"github.com/tomtom215/listingscope/internal/models"
)

func TestGroupBy(t *testing.T) {
	t.Parallel()

	store := sampleListings()

	tests := []struct {
		name string
		key  KeyFunc
		want []models.CategoryCount
	}{
		{
			name: "region",
			key:  ByRegion,
			want: []models.CategoryCount{
				{Category: "Brooklyn", Count: 3},
				{Category: "Manhattan", Count: 4},
				{Category: "Queens", Count: 1},
				{Category: "Bronx", Count: 1},
				{Category: "Staten Island", Count: 1},
			},
		},
		{
			name: "room type",
			key:  ByRoomType,
			want: []models.CategoryCount{
				{Category: "Private room", Count: 4},
				{Category: "Entire home/apt", Count: 5},
				{Category: "Shared room", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GroupBy(store, tt.key)
			if !slices.Equal(got, tt.want) {
				t.Errorf("GroupBy() = %v, want %v", got, tt.want)
			}

			total := 0
			for _, c := range got {
				total += c.Count
			}
			if total != len(store) {
				t.Errorf("counts sum to %d, want %d", total, len(store))
			}
		})
	}
}

func TestGroupByEmpty(t *testing.T) {
	t.Parallel()

	got := GroupBy(nil, ByRegion)
	if got == nil || len(got) != 0 {
		t.Errorf("GroupBy(nil) = %#v, want empty slice", got)
	}
}

func TestPriceHistogramBoundaries(t *testing.T) {
	t.Parallel()

	subset := withPrices(0, 50, 51, 100, 101, 150, 151, 200, 201, 300, 301, 10000)
	got := PriceHistogram(subset)

	wantLabels := []string{"$0-50", "$51-100", "$101-150", "$151-200", "$201-300", "$301+"}
	if len(got) != len(wantLabels) {
		t.Fatalf("got %d buckets, want %d", len(got), len(wantLabels))
	}
	for i, b := range got {
		if b.Label != wantLabels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, b.Label, wantLabels[i])
		}
		if b.Count != 2 {
			t.Errorf("bucket %q count = %d, want 2", b.Label, b.Count)
		}
	}
	if got[len(got)-1].Max != nil {
		t.Errorf("top bucket max = %v, want nil", *got[len(got)-1].Max)
	}
	if got[0].Max == nil || *got[0].Max != 50 {
		t.Errorf("first bucket max = %v, want 50", got[0].Max)
	}
}

func TestPriceHistogramEmptyBucketsPresent(t *testing.T) {
	t.Parallel()

	got := PriceHistogram(nil)
	if len(got) != 6 {
		t.Fatalf("got %d buckets, want 6", len(got))
	}
	for _, b := range got {
		if b.Count != 0 {
			t.Errorf("bucket %q count = %d, want 0", b.Label, b.Count)
		}
	}
}

func TestPriceHistogramFractionalPrices(t *testing.T) {
	t.Parallel()

	got := PriceHistogram(withPrices(50.5, 100.01, 300.99))
	want := []int{0, 1, 1, 0, 0, 1}
	for i, b := range got {
		if b.Count != want[i] {
			t.Errorf("bucket %q count = %d, want %d", b.Label, b.Count, want[i])
		}
	}
}

func TestPriceHistogramPartition(t *testing.T) {
	t.Parallel()

	store := sampleListings()
	for _, subset := range [][]models.Listing{store, store[:3], store[5:], nil} {
		total := 0
		for _, b := range PriceHistogram(subset) {
			total += b.Count
		}
		if total != len(subset) {
			t.Errorf("histogram counts sum to %d, want %d", total, len(subset))
		}
	}
}
