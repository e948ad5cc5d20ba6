// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"math"

	"github.com/tomtom215/listingscope/internal/models"
)

// KeyFunc extracts the grouping category of a listing.
type KeyFunc func(l *models.Listing) string

// ByRegion groups by neighbourhood_group.
func ByRegion(l *models.Listing) string { return l.NeighbourhoodGroup }

// ByRoomType groups by room_type.
func ByRoomType(l *models.Listing) string { return l.RoomType }

// GroupBy counts subset by key in a single pass. Categories are returned in the
// order they first appear, and the counts always sum to len(subset).
func GroupBy(subset []models.Listing, key KeyFunc) []models.CategoryCount {
	c := newOrderedCounter()
	for i := range subset {
		c.add(key(&subset[i]))
	}
	return c.counts()
}

// priceBucket bounds are inclusive. A price above one bucket's upper bound and
// below the next bucket's lower bound (50.5, say) is counted in the next bucket.
type priceBucket struct {
	label string
	min   float64
	max   float64
}

var priceBuckets = []priceBucket{
	{label: "$0-50", min: 0, max: 50},
	{label: "$51-100", min: 51, max: 100},
	{label: "$101-150", min: 101, max: 150},
	{label: "$151-200", min: 151, max: 200},
	{label: "$201-300", min: 201, max: 300},
	{label: "$301+", min: 301, max: math.Inf(1)},
}

// PriceHistogram counts subset into the six fixed price buckets. Every bucket is
// returned, in ascending order, even when empty.
func PriceHistogram(subset []models.Listing) []models.PriceBucket {
	counts := make([]int, len(priceBuckets))
	for i := range subset {
		counts[bucketIndex(subset[i].Price)]++
	}

	out := make([]models.PriceBucket, len(priceBuckets))
	for i, b := range priceBuckets {
		out[i] = models.PriceBucket{Label: b.label, Min: b.min, Count: counts[i]}
		if !math.IsInf(b.max, 1) {
			upper := b.max
			out[i].Max = &upper
		}
	}
	return out
}

func bucketIndex(price float64) int {
	for i, b := range priceBuckets {
		if price <= b.max {
			return i
		}
	}
	// NaN compares false against every bound.
	return len(priceBuckets) - 1
}
