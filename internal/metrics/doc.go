// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package metrics defines the Prometheus collectors exported at /metrics.

All collectors are registered with the default registry through promauto and
carry the listingscope_ prefix:

  - listingscope_api_requests_total{method,endpoint,status}
  - listingscope_api_request_duration_seconds{method,endpoint}
  - listingscope_api_active_requests
  - listingscope_snapshot_compute_duration_seconds
  - listingscope_filtered_listings
  - listingscope_cache_hits_total, listingscope_cache_misses_total
  - listingscope_websocket_connections
  - listingscope_websocket_messages_total{type}
  - listingscope_dataset_listings

The endpoint label is the chi route pattern, not the raw path, so label
cardinality stays bounded regardless of query strings or path parameters.
*/
package metrics
