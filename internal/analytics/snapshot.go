// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"github.com/tomtom215/listingscope/internal/models"
)

// Options controls the sizes of the ranked and sampled views in a snapshot.
type Options struct {
	TopHostsLimit           int
	InsightHostsLimit       int
	HighlyReviewedThreshold int
	PreviewRows             int
}

// DefaultOptions returns the dashboard defaults.
func DefaultOptions() Options {
	return Options{
		TopHostsLimit:           DefaultTopHostsLimit,
		InsightHostsLimit:       DefaultInsightHostsLimit,
		HighlyReviewedThreshold: DefaultHighlyReviewedThreshold,
		PreviewRows:             DefaultPreviewRows,
	}
}

// BuildSnapshot filters listings with f and derives every dashboard view from
// the resulting subset.
func BuildSnapshot(listings []models.Listing, f models.Filter, opts Options) models.DashboardSnapshot {
	subset := Apply(listings, f)
	return models.DashboardSnapshot{
		Filter:            f,
		Metrics:           ComputeMetrics(subset),
		Regions:           GroupBy(subset, ByRegion),
		RoomTypes:         GroupBy(subset, ByRoomType),
		PriceDistribution: PriceHistogram(subset),
		TopHosts:          TopHosts(subset, opts.TopHostsLimit),
		Insights: ComputeInsights(subset, InsightOptions{
			HostsLimit:              opts.InsightHostsLimit,
			HighlyReviewedThreshold: opts.HighlyReviewedThreshold,
		}),
		Preview: Preview(subset, opts.PreviewRows),
	}
}
