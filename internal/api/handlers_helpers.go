// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package api

import (
	"fmt"
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/listingscope/internal/logging"
	"github.com/tomtom215/listingscope/internal/models"
	"github.com/tomtom215/listingscope/internal/validation"
)

// sanitizeLogValue replaces control characters so client-supplied values
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a successful envelope.
//
// The ETag covers only the data payload, so a repeated query yields the same
// tag even though metadata differs. A matching If-None-Match gets 304.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	payload, err := json.Marshal(response.Data)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal response data")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode response", nil)
		return
	}
	etag := generateETag(payload)

	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("ETag", etag)
	if status == http.StatusOK && etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	response.Data = json.RawMessage(payload)
	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode response", nil)
		return
	}
	writeJSON(w, status, data)
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a strong entity tag for data using FNV-1a.
func generateETag(data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf("\"%016x\"", h.Sum64())
}

// etagMatches reports whether an If-None-Match header lists etag.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// respondError sends an error envelope. err is logged, never returned to the
// client.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondAPIError(w, status, &models.APIError{Code: code, Message: message}, err)
}

func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(apiErr.Code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	data, marshalErr := json.Marshal(&models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
	if marshalErr != nil {
		logging.Error().Err(marshalErr).Msg("Failed to marshal error response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, status, data)
}

// respondValidationError sends a 400 with the field details of verr.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondAPIError(w, http.StatusBadRequest, &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}, nil)
}

// paramError is a query parameter that could not be parsed.
type paramError struct {
	param string
	value string
	want  string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be %s", e.param, e.want)
}

// respondParamError sends a 400 for an unparseable query parameter.
func respondParamError(w http.ResponseWriter, perr *paramError) {
	respondAPIError(w, http.StatusBadRequest, &models.APIError{
		Code:    "VALIDATION_ERROR",
		Message: perr.Error(),
		Details: map[string]interface{}{
			"field": perr.param,
			"value": perr.value,
		},
	}, nil)
}

// parseCommaSeparated parses a comma-separated string into a slice,
// dropping empty items.
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseMultiValue collects a parameter given as a comma-separated list, as
// repeated keys, or both.
func parseMultiValue(r *http.Request, key string) []string {
	var result []string
	for _, value := range r.URL.Query()[key] {
		result = append(result, parseCommaSeparated(value)...)
	}
	return result
}

// parseFloatParam parses an optional finite number.
func parseFloatParam(r *http.Request, key string) (*float64, *paramError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &paramError{param: key, value: value, want: "a finite number"}
	}
	return &f, nil
}

// parseIntParam parses an optional integer, returning defaultValue when the
// parameter is absent.
func parseIntParam(r *http.Request, key string, defaultValue int) (int, *paramError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &paramError{param: key, value: value, want: "an integer"}
	}
	return n, nil
}

// parseFilterRequest reads the filter query parameters.
func parseFilterRequest(r *http.Request) (validation.FilterRequest, *paramError) {
	req := validation.FilterRequest{
		NeighbourhoodGroups: parseMultiValue(r, "neighbourhood_group"),
		RoomTypes:           parseMultiValue(r, "room_type"),
	}

	var perr *paramError
	if req.PriceMin, perr = parseFloatParam(r, "price_min"); perr != nil {
		return req, perr
	}
	if req.PriceMax, perr = parseFloatParam(r, "price_max"); perr != nil {
		return req, perr
	}
	if req.MinReviews, perr = parseIntParam(r, "min_reviews", 0); perr != nil {
		return req, perr
	}
	if req.Availability, perr = parseIntParam(r, "availability", 0); perr != nil {
		return req, perr
	}
	return req, nil
}

// filterFromRequest parses and validates the filter query parameters,
// filling omitted price bounds from the dataset. It writes the 400 response
// itself and returns false when the request is invalid.
func (h *Handler) filterFromRequest(w http.ResponseWriter, r *http.Request) (models.Filter, bool) {
	req, perr := parseFilterRequest(r)
	if perr != nil {
		respondParamError(w, perr)
		return models.Filter{}, false
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return models.Filter{}, false
	}
	return req.ToFilter(h.svc.PriceBounds()), true
}

// limitFromRequest parses the limit parameter, bounded by [1, maxLimit].
func limitFromRequest(w http.ResponseWriter, r *http.Request, defaultLimit, maxLimit int) (int, bool) {
	limit, perr := parseIntParam(r, "limit", defaultLimit)
	if perr != nil {
		respondParamError(w, perr)
		return 0, false
	}
	if verr := validation.ValidateVar("limit", limit, fmt.Sprintf("min=1,max=%d", maxLimit)); verr != nil {
		respondValidationError(w, verr)
		return 0, false
	}
	return limit, true
}

// successResponse wraps data in a success envelope.
func successResponse(data interface{}, start time.Time, cached bool) *models.APIResponse {
	meta := models.Metadata{
		Timestamp: time.Now(),
		Cached:    cached,
	}
	if !cached {
		meta.QueryTimeMS = time.Since(start).Milliseconds()
	}
	return &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	}
}
