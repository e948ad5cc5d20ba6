// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/listingscope/internal/config"
	"github.com/tomtom215/listingscope/internal/dashboard"
	"github.com/tomtom215/listingscope/internal/logging"
	ws "github.com/tomtom215/listingscope/internal/websocket"
)

// Version is reported by the health endpoint. Set at build time with
// -ldflags "-X github.com/tomtom215/listingscope/internal/api.Version=...".
var Version = "dev"

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, WebSocket upgrade (this file)
//   - handlers_helpers.go: response envelope and query parsing helpers
//   - handlers_dashboard.go: health, facets and analytics endpoints
type Handler struct {
	svc       *dashboard.Service
	config    *config.Config
	wsHub     *ws.Hub
	startTime time.Time

	// wsRegisterTimeout bounds the wait for the hub to accept a new client.
	wsRegisterTimeout time.Duration
}

// NewHandler creates a new API handler.
//
// A nil cfg uses config.DefaultConfig. wsHub may be nil, in which case the
// WebSocket endpoint answers 503.
//
// Example:
//
//	handler := api.NewHandler(svc, cfg, hub)
//	router := api.NewRouter(handler)
//	http.ListenAndServe(":3857", router.SetupChi())
func NewHandler(svc *dashboard.Service, cfg *config.Config, wsHub *ws.Hub) *Handler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Handler{
		svc:       svc,
		config:    cfg,
		wsHub:     wsHub,
		startTime: time.Now(),

		wsRegisterTimeout: 5 * time.Second,
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  4096,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins against the
// configured CORS origins. Browsers always send Origin on WebSocket
// handshakes, so a missing header is rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	allowed := h.config.Security.CORSOrigins
	if slices.Contains(allowed, "*") || slices.Contains(allowed, origin) {
		return true
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// wsOptions maps configured limits onto client options.
func (h *Handler) wsOptions() ws.Options {
	return ws.Options{
		MaxMessageBytes:        h.config.WebSocket.MaxMessageBytes,
		FilterUpdatesPerSecond: h.config.WebSocket.FilterUpdatesPerSecond,
		FilterUpdateBurst:      h.config.WebSocket.FilterUpdateBurst,
	}
}

// WebSocket upgrades the connection and attaches a live dashboard client.
//
// @Summary Live dashboard WebSocket
// @Description Send filter frames and receive dashboard snapshot frames.
// @Tags Live
// @Success 101 "Switching protocols"
// @Failure 403 "Origin not allowed"
// @Failure 503 {object} models.APIResponse "WebSocket service unavailable"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "WebSocket service unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.wsHub, conn, h.svc, h.wsOptions())
	select {
	case h.wsHub.Register <- client:
	case <-time.After(h.wsRegisterTimeout):
		logging.Ctx(r.Context()).Error().Msg("WebSocket hub not accepting clients")
		client.Close()
		_ = conn.Close()
		return
	}
	client.Start()
}
