// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package cache memoizes computed dashboard snapshots.

Every analytic view is a pure function of the immutable dataset and a filter,
so a cached value never goes stale; the TTL only bounds memory held for filters
nobody asks for any more. The capacity bound matters more: filters arrive from
untrusted clients, and each distinct combination is a separate key.

# Overview

The cache provides:
  - Type-safe values through a generic Cache[V]
  - Time-to-live expiration, checked lazily on Get and swept periodically
  - Least-recently-used eviction once capacity is reached
  - Hit, miss and eviction counters for monitoring

# Usage Example

	snapshots := cache.New[models.DashboardSnapshot](5*time.Minute, 1024)
	defer snapshots.Close()

	key := cache.GenerateKey("snapshot", analytics.Canonical(filter))
	if snap, ok := snapshots.Get(key); ok {
	    return snap
	}
	snap := analytics.BuildSnapshot(store.All(), filter, opts)
	snapshots.Set(key, snap)

# Thread Safety

All methods are safe for concurrent use.
*/
package cache
