// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/listingscope/internal/models"
)

// Every analytics endpoint accepts the same filter query parameters:
//
//	neighbourhood_group  comma-separated or repeated; empty includes all
//	room_type            comma-separated or repeated; empty includes all
//	price_min            default: dataset minimum price
//	price_max            default: dataset maximum price
//	min_reviews          default: 0
//	availability         minimum days available per year, 0-365
//
// Views derived from the full snapshot are served from the snapshot cache.

// Health reports dataset size, load time and uptime.
//
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	store := h.svc.Store()

	status := "healthy"
	if store.Len() == 0 {
		status = "degraded"
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:        status,
			Version:       Version,
			DatasetSource: store.Source(),
			Listings:      store.Len(),
			LoadedAt:      store.LoadedAt(),
			Uptime:        time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Facets returns the values a client can filter on.
//
// @Summary Filterable values
// @Description Regions, room types, the dataset price range and the default filter.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Facets}
// @Router /facets [get]
func (h *Handler) Facets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, successResponse(h.svc.Facets(), time.Now(), false))
}

// snapshot parses the filter and returns the dashboard snapshot for it. It
// writes the error response itself and returns false on failure.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) (models.DashboardSnapshot, bool, bool) {
	f, ok := h.filterFromRequest(w, r)
	if !ok {
		return models.DashboardSnapshot{}, false, false
	}
	snap, cached, err := h.svc.Snapshot(r.Context(), f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute dashboard", err)
		return models.DashboardSnapshot{}, false, false
	}
	return snap, cached, true
}

// Dashboard returns every view of the filtered listings in one response.
//
// @Summary Full dashboard snapshot
// @Tags Dashboard
// @Produce json
// @Param neighbourhood_group query []string false "Regions to include" collectionFormat(csv)
// @Param room_type query []string false "Room types to include" collectionFormat(csv)
// @Param price_min query number false "Lowest nightly price" minimum(0)
// @Param price_max query number false "Highest nightly price" minimum(0)
// @Param min_reviews query int false "Minimum number of reviews" minimum(0)
// @Param availability query int false "Minimum days available per year" minimum(0) maximum(365)
// @Success 200 {object} models.APIResponse{data=models.DashboardSnapshot}
// @Failure 400 {object} models.APIResponse "Invalid filter"
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, cached, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse(snap, start, cached))
}

// MetricsSummary returns the scalar metrics of the filtered listings.
//
// @Summary Summary metrics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.AnalysisMetrics}
// @Failure 400 {object} models.APIResponse "Invalid filter"
// @Router /metrics/summary [get]
func (h *Handler) MetricsSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, cached, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse(snap.Metrics, start, cached))
}

// RegionDistribution returns listing counts per region in first-seen order.
//
// @Summary Listing counts per region
// @Tags Distribution
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.CategoryCount}
// @Failure 400 {object} models.APIResponse "Invalid filter"
// @Router /distribution/regions [get]
func (h *Handler) RegionDistribution(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, cached, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse(snap.Regions, start, cached))
}

// RoomTypeDistribution returns listing counts per room type in first-seen
// order.
//
// @Summary Listing counts per room type
// @Tags Distribution
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.CategoryCount}
// @Failure 400 {object} models.APIResponse "Invalid filter"
// @Router /distribution/room-types [get]
func (h *Handler) RoomTypeDistribution(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, cached, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse(snap.RoomTypes, start, cached))
}

// PriceDistribution returns the fixed-bucket price histogram.
//
// @Summary Price histogram
// @Tags Distribution
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.PriceBucket}
// @Failure 400 {object} models.APIResponse "Invalid filter"
// @Router /distribution/price [get]
func (h *Handler) PriceDistribution(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, cached, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse(snap.PriceDistribution, start, cached))
}

// Insights returns the secondary figures for the filtered listings.
//
// @Summary Secondary insights
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Insights}
// @Failure 400 {object} models.APIResponse "Invalid filter"
// @Router /insights [get]
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, cached, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse(snap.Insights, start, cached))
}

// TopHosts returns the hosts with the most filtered listings.
//
// @Summary Host leaderboard
// @Tags Hosts
// @Produce json
// @Param limit query int false "Number of hosts" minimum(1)
// @Success 200 {object} models.APIResponse{data=[]models.HostRank}
// @Failure 400 {object} models.APIResponse "Invalid filter or limit"
// @Router /hosts/top [get]
func (h *Handler) TopHosts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	f, ok := h.filterFromRequest(w, r)
	if !ok {
		return
	}
	limit, ok := limitFromRequest(w, r, h.config.Dashboard.TopHostsLimit, h.config.Dashboard.MaxTopHostsLimit)
	if !ok {
		return
	}

	hosts, cached, err := h.svc.TopHosts(r.Context(), f, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute host leaderboard", err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse(hosts, start, cached))
}

// Listings returns the first rows of the filtered listings and the total
// number of matches.
//
// @Summary Listing preview
// @Tags Listings
// @Produce json
// @Param limit query int false "Number of rows" minimum(1)
// @Success 200 {object} models.APIResponse{data=models.ListingPreview}
// @Failure 400 {object} models.APIResponse "Invalid filter or limit"
// @Router /listings [get]
func (h *Handler) Listings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	f, ok := h.filterFromRequest(w, r)
	if !ok {
		return
	}
	limit, ok := limitFromRequest(w, r, h.config.Dashboard.PreviewRows, h.config.Dashboard.MaxPreviewRows)
	if !ok {
		return
	}

	preview, cached, err := h.svc.Preview(r.Context(), f, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute listing preview", err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse(preview, start, cached))
}
