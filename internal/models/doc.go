// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package models defines the data structures shared across listingscope.

Key Components:

  - Listing: one rental unit from an Inside Airbnb summary file
  - Filter: the user-selected constraints applied to the dataset
  - DashboardSnapshot: every dashboard view computed for one Filter
  - APIResponse: the standard REST envelope with Metadata and APIError
  - HealthStatus: liveness and dataset summary for /api/v1/health

Model Categories:

1. Dataset Models:
  - Listing, PriceRange

2. Filter Models:
  - Filter: region and room type sets plus price, review and availability bounds
  - Facets: the distinct values and price range a filter UI offers

3. Analytics Models:
  - AnalysisMetrics, CategoryCount, PriceBucket, HostRank
  - Insights, ListingPreview, DashboardSnapshot

4. API Models:
  - APIResponse, Metadata, APIError, HealthStatus

Usage Example:

	snap := analytics.BuildSnapshot(store.All(), models.Filter{
	    NeighbourhoodGroups: []string{"Brooklyn"},
	    PriceRange:          models.PriceRange{Min: 50, Max: 300},
	    MinReviews:          10,
	}, analytics.DefaultOptions())

	fmt.Println(snap.Metrics.TotalListings, snap.Metrics.AveragePrice)

Thread Safety:

Models are plain values. A Listing is never modified after the dataset is
loaded and a Filter is replaced as a whole, so both are safe to share between
goroutines for reading.

See Also:

  - internal/analytics: pure functions producing these models
  - internal/api: handlers returning them inside APIResponse
*/
package models
