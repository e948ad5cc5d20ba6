// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package analytics turns a slice of listings into the figures shown on the
dashboard.

Everything in this package is a pure function of its arguments. The listing
slice handed in is only read, never reordered or modified, so the same store
can be shared by any number of goroutines without locking.

Pipeline:

	store -> Apply(filter) -> subset -> ComputeMetrics
	                                  -> GroupBy(ByRegion), GroupBy(ByRoomType)
	                                  -> PriceHistogram
	                                  -> TopHosts(limit)
	                                  -> ComputeInsights, Preview

BuildSnapshot runs the whole pipeline for one filter.

Ordering guarantees:

  - Apply keeps the store order.
  - GroupBy returns categories in order of first occurrence in the subset.
  - Modes (most common room type, most popular region) resolve ties in favour
    of the category seen first.
  - TopHosts sorts by count descending and keeps first-seen order among equal
    counts.
  - PriceHistogram always returns the six fixed buckets in ascending order,
    including empty ones.

Rounding:

Means, medians and the fully booked percentage are rounded half-up using
decimal arithmetic, so 2.5 becomes 3 and 12.25% becomes 12.3%.
*/
package analytics
