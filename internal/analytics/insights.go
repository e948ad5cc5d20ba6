// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tomtom215/listingscope/internal/models"
)

// Insight defaults.
const (
	DefaultInsightHostsLimit       = 5
	DefaultHighlyReviewedThreshold = 100
	DefaultPreviewRows             = 10
)

// InsightOptions parameterises ComputeInsights.
type InsightOptions struct {
	HostsLimit              int
	HighlyReviewedThreshold int
}

// ComputeInsights derives the secondary dashboard figures from subset:
// the top hosts, how many listings have at least HighlyReviewedThreshold
// reviews, the average minimum stay and the share of listings with no
// availability in the coming year.
func ComputeInsights(subset []models.Listing, opts InsightOptions) models.Insights {
	ins := models.Insights{
		TopHosts:          TopHosts(subset, opts.HostsLimit),
		HighlyReviewedMin: opts.HighlyReviewedThreshold,
	}
	if len(subset) == 0 {
		return ins
	}

	var nightsSum decimal.Decimal
	for i := range subset {
		l := &subset[i]
		if l.NumberOfReviews >= opts.HighlyReviewedThreshold {
			ins.HighlyReviewed++
		}
		if l.Availability365 == 0 {
			ins.FullyBooked++
		}
		nightsSum = nightsSum.Add(decimal.NewFromInt(int64(l.MinimumNights)))
	}

	ins.AverageMinimumNights = meanOf(nightsSum, len(subset))
	pct := decimal.NewFromInt(int64(ins.FullyBooked)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(subset))))
	ins.FullyBookedPercentage = roundHalfUp(pct, 1).InexactFloat64()
	return ins
}

// Preview returns the first n listings of subset and the subset size. n is
// clamped to [0, len(subset)].
func Preview(subset []models.Listing, n int) models.ListingPreview {
	n = max(0, min(n, len(subset)))
	rows := make([]models.Listing, n)
	copy(rows, subset[:n])
	return models.ListingPreview{Listings: rows, Shown: n, Total: len(subset)}
}
