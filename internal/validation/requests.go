// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package validation

import (
	"slices"

	"github.com/tomtom215/listingscope/internal/models"
)

// FilterRequest is a filter as submitted by a client, through query
// parameters or a WebSocket filter message. Nil price bounds fall back to the
// dataset's price range.
//
// An inverted price range passes validation; it simply matches nothing.
type FilterRequest struct {
	NeighbourhoodGroups []string `json:"neighbourhood_group" validate:"max=50,dive,facet"`
	RoomTypes           []string `json:"room_type" validate:"max=20,dive,facet"`
	PriceMin            *float64 `json:"price_min" validate:"omitempty,min=0"`
	PriceMax            *float64 `json:"price_max" validate:"omitempty,min=0"`
	MinReviews          int      `json:"min_reviews" validate:"min=0"`
	Availability        int      `json:"availability" validate:"min=0,max=365"`
}

// ToFilter builds the domain filter, using bounds for any missing price bound.
// The returned filter shares no slices with the request.
func (r *FilterRequest) ToFilter(bounds models.PriceRange) models.Filter {
	f := models.Filter{
		NeighbourhoodGroups: cloneOrEmpty(r.NeighbourhoodGroups),
		RoomTypes:           cloneOrEmpty(r.RoomTypes),
		PriceRange:          bounds,
		MinReviews:          r.MinReviews,
		Availability:        r.Availability,
	}
	if r.PriceMin != nil {
		f.PriceRange.Min = *r.PriceMin
	}
	if r.PriceMax != nil {
		f.PriceRange.Max = *r.PriceMax
	}
	return f
}

func cloneOrEmpty(s []string) []string {
	if len(s) == 0 {
		return []string{}
	}
	return slices.Clone(s)
}
