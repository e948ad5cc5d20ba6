// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/listingscope/internal/models"
)

// ComputeMetrics summarises subset. An empty subset yields zero values and
// empty strings.
//
// MostPopularNeighbourhood is the mode of the region (neighbourhood_group), not
// of the finer neighbourhood field.
func ComputeMetrics(subset []models.Listing) models.AnalysisMetrics {
	if len(subset) == 0 {
		return models.AnalysisMetrics{}
	}

	var priceSum, reviewSum, availabilitySum decimal.Decimal
	prices := make([]float64, len(subset))
	roomTypes := newOrderedCounter()
	regions := newOrderedCounter()

	for i := range subset {
		l := &subset[i]
		prices[i] = l.Price
		priceSum = priceSum.Add(decimal.NewFromFloat(l.Price))
		reviewSum = reviewSum.Add(decimal.NewFromInt(int64(l.NumberOfReviews)))
		availabilitySum = availabilitySum.Add(decimal.NewFromInt(int64(l.Availability365)))
		roomTypes.add(l.RoomType)
		regions.add(l.NeighbourhoodGroup)
	}

	n := len(subset)
	return models.AnalysisMetrics{
		TotalListings:            n,
		AveragePrice:             meanOf(priceSum, n),
		MedianPrice:              roundHalfUp(median(prices), 0).IntPart(),
		MostCommonRoomType:       roomTypes.mode(),
		MostPopularNeighbourhood: regions.mode(),
		AverageReviews:           meanOf(reviewSum, n),
		AverageAvailability:      meanOf(availabilitySum, n),
	}
}

// median sorts values in place and returns the middle value, or the mean of
// the two middle values for an even count. values must not be empty.
func median(values []float64) decimal.Decimal {
	slices.Sort(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return decimal.NewFromFloat(values[mid])
	}
	return decimal.NewFromFloat(values[mid-1]).Add(decimal.NewFromFloat(values[mid])).Div(decimal.NewFromInt(2))
}
