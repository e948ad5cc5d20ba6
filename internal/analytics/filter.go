// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"slices"

	"github.com/tomtom215/listingscope/internal/models"
)

// Bounds returned by PriceRange for an empty dataset.
const (
	EmptyPriceMin = 0
	EmptyPriceMax = 1000
)

// Accepts reports whether l satisfies every constraint of f.
func Accepts(l *models.Listing, f *models.Filter) bool {
	if len(f.NeighbourhoodGroups) > 0 && !slices.Contains(f.NeighbourhoodGroups, l.NeighbourhoodGroup) {
		return false
	}
	if len(f.RoomTypes) > 0 && !slices.Contains(f.RoomTypes, l.RoomType) {
		return false
	}
	if l.Price < f.PriceRange.Min || l.Price > f.PriceRange.Max {
		return false
	}
	if l.NumberOfReviews < f.MinReviews {
		return false
	}
	return l.Availability365 >= f.Availability
}

// Apply returns the listings accepted by f in their original order.
// An inverted price range yields an empty, non-nil subset.
func Apply(listings []models.Listing, f models.Filter) []models.Listing {
	subset := make([]models.Listing, 0, len(listings))
	for i := range listings {
		if Accepts(&listings[i], &f) {
			subset = append(subset, listings[i])
		}
	}
	return slices.Clip(subset)
}

// PriceRange returns the lowest and highest price in listings, or
// [EmptyPriceMin, EmptyPriceMax] when there are none.
func PriceRange(listings []models.Listing) models.PriceRange {
	if len(listings) == 0 {
		return models.PriceRange{Min: EmptyPriceMin, Max: EmptyPriceMax}
	}
	r := models.PriceRange{Min: listings[0].Price, Max: listings[0].Price}
	for i := 1; i < len(listings); i++ {
		r.Min = min(r.Min, listings[i].Price)
		r.Max = max(r.Max, listings[i].Price)
	}
	return r
}

// DefaultFilter is the unrestricted filter for listings: no facet selection,
// the full price range of the dataset and zero minimums. Applying it returns
// every listing.
func DefaultFilter(listings []models.Listing) models.Filter {
	return models.Filter{
		NeighbourhoodGroups: []string{},
		RoomTypes:           []string{},
		PriceRange:          PriceRange(listings),
	}
}

// Facets lists the distinct, non-empty regions and room types in listings,
// each sorted ascending, along with the dataset price range and default filter.
func Facets(listings []models.Listing) models.Facets {
	return models.Facets{
		NeighbourhoodGroups: distinct(listings, ByRegion),
		RoomTypes:           distinct(listings, ByRoomType),
		PriceRange:          PriceRange(listings),
		DefaultFilter:       DefaultFilter(listings),
	}
}

func distinct(listings []models.Listing, key KeyFunc) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for i := range listings {
		v := key(&listings[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// Canonical returns a copy of f with facet values sorted and de-duplicated.
// Two filters that accept the same listings by facet membership have equal
// canonical forms, which makes the result suitable as a cache key.
func Canonical(f models.Filter) models.Filter {
	f.NeighbourhoodGroups = canonicalSet(f.NeighbourhoodGroups)
	f.RoomTypes = canonicalSet(f.RoomTypes)
	return f
}

func canonicalSet(values []string) []string {
	out := slices.Clone(values)
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
