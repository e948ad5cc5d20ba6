// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/listingscope/internal/analytics"
	"github.com/tomtom215/listingscope/internal/cache"
	"github.com/tomtom215/listingscope/internal/dataset"
	"github.com/tomtom215/listingscope/internal/logging"
	"github.com/tomtom215/listingscope/internal/metrics"
	"github.com/tomtom215/listingscope/internal/models"
)

const snapshotKeyPrefix = "snapshot"

// Service computes dashboard views over an immutable dataset.
type Service struct {
	store     *dataset.Store
	snapshots *cache.Cache[models.DashboardSnapshot]
	opts      analytics.Options
	facets    models.Facets
	flight    singleflight.Group
}

// NewService creates a Service. snapshots may be nil to disable caching.
// Facets are computed once here because the dataset never changes.
func NewService(store *dataset.Store, snapshots *cache.Cache[models.DashboardSnapshot], opts analytics.Options) *Service {
	return &Service{
		store:     store,
		snapshots: snapshots,
		opts:      opts,
		facets:    analytics.Facets(store.All()),
	}
}

// Store returns the underlying dataset.
func (s *Service) Store() *dataset.Store {
	return s.store
}

// Options returns the analytics options snapshots are built with.
func (s *Service) Options() analytics.Options {
	return s.opts
}

// Facets returns the selectable regions and room types, the dataset price
// range and the default filter.
func (s *Service) Facets() models.Facets {
	return s.facets
}

// PriceBounds returns the dataset price range, used for omitted price bounds.
func (s *Service) PriceBounds() models.PriceRange {
	return s.facets.PriceRange
}

// Snapshot returns the full dashboard for f and whether it came from cache.
func (s *Service) Snapshot(ctx context.Context, f models.Filter) (models.DashboardSnapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.DashboardSnapshot{}, false, err
	}

	canonical := analytics.Canonical(f)
	key := cache.GenerateKey(snapshotKeyPrefix, canonical)

	if s.snapshots != nil {
		if snap, ok := s.snapshots.Get(key); ok {
			metrics.RecordCacheLookup(true)
			return snap, true, nil
		}
		metrics.RecordCacheLookup(false)
	}

	v, _, shared := s.flight.Do(key, func() (interface{}, error) {
		snap := s.compute(canonical)
		if s.snapshots != nil {
			s.snapshots.Set(key, snap)
		}
		return snap, nil
	})
	if shared {
		logging.Ctx(ctx).Debug().Str("key", key).Msg("Snapshot computation shared")
	}
	return v.(models.DashboardSnapshot), false, nil
}

func (s *Service) compute(f models.Filter) models.DashboardSnapshot {
	start := time.Now()
	snap := analytics.BuildSnapshot(s.store.All(), f, s.opts)
	metrics.RecordSnapshot(time.Since(start), snap.Metrics.TotalListings)
	return snap
}

// TopHosts returns the host leaderboard for f with a caller-chosen limit.
// The default limit is answered from the snapshot.
func (s *Service) TopHosts(ctx context.Context, f models.Filter, limit int) ([]models.HostRank, bool, error) {
	if limit == s.opts.TopHostsLimit {
		snap, cached, err := s.Snapshot(ctx, f)
		return snap.TopHosts, cached, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	return analytics.TopHosts(analytics.Apply(s.store.All(), f), limit), false, nil
}

// Preview returns the first n listings passing f and the total match count.
// The default row count is answered from the snapshot.
func (s *Service) Preview(ctx context.Context, f models.Filter, n int) (models.ListingPreview, bool, error) {
	if n == s.opts.PreviewRows {
		snap, cached, err := s.Snapshot(ctx, f)
		return snap.Preview, cached, err
	}
	if err := ctx.Err(); err != nil {
		return models.ListingPreview{}, false, err
	}
	return analytics.Preview(analytics.Apply(s.store.All(), f), n), false, nil
}
