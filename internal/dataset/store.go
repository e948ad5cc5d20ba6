// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package dataset

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/listingscope/internal/logging"
	"github.com/tomtom215/listingscope/internal/models"
)

// Store holds the loaded dataset. It is never modified after construction, so
// any number of goroutines may read it without synchronisation.
type Store struct {
	listings []models.Listing
	source   string
	loadedAt time.Time
}

// NewStore wraps listings in a Store. The caller must not modify the slice
// afterwards.
func NewStore(listings []models.Listing, source string) *Store {
	if listings == nil {
		listings = []models.Listing{}
	}
	return &Store{
		listings: listings,
		source:   source,
		loadedAt: time.Now().UTC(),
	}
}

// Load reads src into a new Store.
//
// When the source yields no rows the returned Store is still valid and the
// error wraps ErrEmptyDataset, so callers may log it and continue.
func Load(ctx context.Context, src Source) (*Store, error) {
	start := time.Now()

	listings, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}

	if err := validateListings(listings); err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}

	store := NewStore(listings, src.Name())
	logging.Info().
		Str("source", src.Name()).
		Int("listings", store.Len()).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")

	if store.Len() == 0 {
		return store, fmt.Errorf("%s: %w", src.Name(), ErrEmptyDataset)
	}
	return store, nil
}

// Len returns the number of listings.
func (s *Store) Len() int {
	return len(s.listings)
}

// All returns the listings in source order. The slice is shared and must be
// treated as read-only.
func (s *Store) All() []models.Listing {
	return s.listings
}

// Source returns the name of the source the store was loaded from.
func (s *Store) Source() string {
	return s.source
}

// LoadedAt returns when the store was built.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}

// validateListings rejects values the analytics cannot aggregate. SQL and
// JSON sources hand back whatever the column holds, including NaN and
// Infinity in double columns.
func validateListings(listings []models.Listing) error {
	for i := range listings {
		l := &listings[i]
		switch {
		case !validPrice(l.Price):
			return fmt.Errorf("listing %d (id %d): price %v: %w", i+1, l.ID, l.Price, ErrInvalidValue)
		case !finite(l.Latitude) || !finite(l.Longitude):
			return fmt.Errorf("listing %d (id %d): coordinates %v,%v: %w", i+1, l.ID, l.Latitude, l.Longitude, ErrInvalidValue)
		case l.ReviewsPerMonth != nil && !finite(*l.ReviewsPerMonth):
			return fmt.Errorf("listing %d (id %d): reviews_per_month %v: %w", i+1, l.ID, *l.ReviewsPerMonth, ErrInvalidValue)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// validPrice reports whether f is a finite, non-negative price.
func validPrice(f float64) bool {
	return finite(f) && f >= 0
}
