// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registers the OpenAPI document served at /swagger/doc.json.
	_ "github.com/tomtom215/listingscope/internal/apidocs"
	"github.com/tomtom215/listingscope/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	timeout       time.Duration
}

// NewRouter creates a Router. Middleware settings come from the handler's
// configuration.
func NewRouter(handler *Handler) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(NewChiMiddlewareConfig(handler.config.Security)),
		timeout:       handler.config.Server.Timeout,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(router.chiMiddleware.RateLimit())
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// Long-lived; kept out of the timeout and compression group.
		r.Get("/ws", router.handler.WebSocket)

		r.Group(func(r chi.Router) {
			if router.timeout > 0 {
				r.Use(chimiddleware.Timeout(router.timeout))
			}
			r.Use(middleware.Compression)

			r.Get("/health", router.handler.Health)
			r.Get("/facets", router.handler.Facets)
			r.Get("/dashboard", router.handler.Dashboard)
			r.Get("/metrics/summary", router.handler.MetricsSummary)
			r.Get("/distribution/regions", router.handler.RegionDistribution)
			r.Get("/distribution/room-types", router.handler.RoomTypeDistribution)
			r.Get("/distribution/price", router.handler.PriceDistribution)
			r.Get("/hosts/top", router.handler.TopHosts)
			r.Get("/insights", router.handler.Insights)
			r.Get("/listings", router.handler.Listings)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
