// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tomtom215/listingscope/internal/config"
	"github.com/tomtom215/listingscope/internal/models"
)

var (
	// ErrUnsupportedFormat is returned when a source or file extension is not recognised.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrEmptyDataset is returned alongside a usable Store when the source had no rows.
	ErrEmptyDataset = errors.New("dataset contains no listings")

	// ErrMissingColumn is returned when a required column is absent from the input.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidValue is returned for a non-finite number or a negative price.
	ErrInvalidValue = errors.New("invalid listing value")
)

// Source reads the complete listing dataset from one backing store.
type Source interface {
	// Name identifies the source in logs and health output, e.g. "csv:data/listings.csv".
	Name() string

	// Load reads every listing in source order.
	Load(ctx context.Context) ([]models.Listing, error)
}

// NewSource builds the Source selected by cfg.Source.
func NewSource(cfg config.DatasetConfig) (Source, error) {
	switch cfg.Source {
	case config.SourceCSV:
		return NewCSVSource(cfg.Path), nil
	case config.SourceJSON:
		return NewJSONSource(cfg.Path), nil
	case config.SourceDuckDB:
		return NewDuckDBSource(cfg.Path, cfg.Table)
	case config.SourcePostgres:
		return NewPostgresSource(cfg.DSN, cfg.Table), nil
	default:
		return nil, fmt.Errorf("%w: source %q", ErrUnsupportedFormat, cfg.Source)
	}
}

// extension returns the lower-cased file extension without the dot.
func extension(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
