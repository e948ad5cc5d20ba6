// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/tomtom215/listingscope/internal/analytics"
	"github.com/tomtom215/listingscope/internal/api"
	"github.com/tomtom215/listingscope/internal/cache"
	"github.com/tomtom215/listingscope/internal/config"
	"github.com/tomtom215/listingscope/internal/dashboard"
	"github.com/tomtom215/listingscope/internal/dataset"
	"github.com/tomtom215/listingscope/internal/logging"
	"github.com/tomtom215/listingscope/internal/metrics"
	"github.com/tomtom215/listingscope/internal/models"
	"github.com/tomtom215/listingscope/internal/supervisor"
	"github.com/tomtom215/listingscope/internal/supervisor/services"
	ws "github.com/tomtom215/listingscope/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("dataset_source", cfg.Dataset.Source).
		Str("environment", cfg.Server.Environment).
		Msg("Starting listingscope with supervisor tree")

	store, err := loadDataset(cfg.Dataset)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}
	metrics.SetDatasetListings(store.Len())

	var snapshots *cache.Cache[models.DashboardSnapshot]
	if cfg.Cache.Enabled {
		snapshots = cache.New[models.DashboardSnapshot](cfg.Cache.TTL, cfg.Cache.MaxEntries)
		defer snapshots.Close()
		logging.Info().
			Dur("ttl", cfg.Cache.TTL).
			Int("max_entries", cfg.Cache.MaxEntries).
			Msg("Snapshot cache enabled")
	}

	svc := dashboard.NewService(store, snapshots, analytics.Options{
		TopHostsLimit:           cfg.Dashboard.TopHostsLimit,
		InsightHostsLimit:       cfg.Dashboard.InsightHostsLimit,
		HighlyReviewedThreshold: cfg.Dashboard.HighlyReviewedThreshold,
		PreviewRows:             cfg.Dashboard.PreviewRows,
	})

	wsHub := ws.NewHub()
	handler := api.NewHandler(svc, cfg, wsHub)
	router := api.NewRouter(handler)

	// No WriteTimeout: it would cut WebSocket connections. Regular routes
	// are bounded by the router's timeout middleware instead.
	server := &http.Server{
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)
	logging.Info().Str("addr", addr).Msg("Supervisor tree started")

	<-ctx.Done()
	logging.Info().Msg("Shutdown signal received, stopping services")

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to collect unstopped service report")
	}
	for _, s := range report {
		logging.Warn().Str("service", s.Name).Msg("Service did not stop within timeout")
	}

	logging.Info().Msg("Server stopped")
}

// loadDataset reads the configured source within its load timeout. An empty
// dataset is not fatal.
func loadDataset(cfg config.DatasetConfig) (*dataset.Store, error) {
	src, err := dataset.NewSource(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LoadTimeout)
		defer cancel()
	}

	store, err := dataset.Load(ctx, src)
	if errors.Is(err, dataset.ErrEmptyDataset) {
		logging.Warn().Err(err).Msg("Dataset is empty, serving zeroed analytics")
		return store, nil
	}
	return store, err
}
