// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package middleware provides HTTP middleware for the API router.

Key Components:

  - RequestID: assigns X-Request-ID and a correlation ID, and stores both in
    the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip

All three are plain func(http.Handler) http.Handler and compose with chi:

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

PrometheusMetrics and Compression both let WebSocket upgrades through:
the first forwards Hijack, the second skips upgrade requests entirely.
*/
package middleware
