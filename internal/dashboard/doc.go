// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

// Package dashboard turns filters into dashboard snapshots for the HTTP API
// and the WebSocket hub.
//
// A Service owns the loaded Store and an optional snapshot cache. Each request
// is served cache-first: the filter is canonicalised, hashed into a key, and
// only on a miss is the dataset filtered and aggregated. Concurrent misses for
// the same key share one computation.
package dashboard
