// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package api provides the HTTP interface of listingscope.

Routes are served by a chi router under /api/v1:

	GET /api/v1/health                   dataset size, load time, uptime
	GET /api/v1/facets                   filterable regions, room types, price range
	GET /api/v1/dashboard                every view for a filter in one snapshot
	GET /api/v1/metrics/summary          scalar metrics
	GET /api/v1/distribution/regions     listing counts per region
	GET /api/v1/distribution/room-types  listing counts per room type
	GET /api/v1/distribution/price       price histogram
	GET /api/v1/hosts/top                host leaderboard (limit=)
	GET /api/v1/insights                 secondary insights
	GET /api/v1/listings                 first rows and total (limit=)
	GET /api/v1/ws                       live dashboard WebSocket

plus /metrics for Prometheus and /swagger/* for the API documentation.

Filters are passed as query parameters:

	/api/v1/dashboard?neighbourhood_group=Brooklyn,Queens&room_type=Private%20room&price_max=150&min_reviews=10

Responses:

Every response uses the models.APIResponse envelope:

	{"status":"success","data":{...},"metadata":{"timestamp":"...","query_time_ms":3,"cached":false}}
	{"status":"error","error":{"code":"VALIDATION_ERROR","message":"...","details":{...}},"metadata":{...}}

Successful responses carry an ETag computed over the data payload; a request
with a matching If-None-Match header is answered with 304 Not Modified.

Middleware, in order: RealIP, request ID, panic recovery, CORS (go-chi/cors),
per-IP rate limiting (go-chi/httprate) and Prometheus instrumentation. API
routes add security headers, and every route except the WebSocket adds a
request timeout and gzip compression.
*/
package api
