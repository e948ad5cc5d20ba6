// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

// Package validation checks client input with go-playground/validator v10.
//
// A single validator instance is shared process-wide. Error field names come
// from json tags, so a failure on FilterRequest.MinReviews is reported as
// "min_reviews", the name the client sent. Failures are returned as
// *RequestValidationError, whose ToAPIError produces the VALIDATION_ERROR
// envelope used by the HTTP API and the WebSocket error frame.
//
// Custom tags:
//   - facet: a non-empty, printable category value of at most MaxFacetLength
//     bytes
//
// Example usage:
//
//	req := validation.FilterRequest{MinReviews: -1}
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//	filter := req.ToFilter(analytics.PriceRange(store.All()))
package validation
