// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/listingscope/internal/models"
)

// JSONSource reads a JSON array of listing objects using the same field names
// as the CSV header.
type JSONSource struct {
	path string
}

// NewJSONSource creates a source for the JSON file at path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Name implements Source.
func (s *JSONSource) Name() string {
	return "json:" + s.path
}

// Load implements Source.
func (s *JSONSource) Load(ctx context.Context) ([]models.Listing, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open json: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return ReadJSON(ctx, f)
}

// ReadJSON decodes a JSON array of listings from r. A zero listing_id falls
// back to id.
func ReadJSON(ctx context.Context, r io.Reader) ([]models.Listing, error) {
	var listings []models.Listing
	if err := json.NewDecoder(r).DecodeContext(ctx, &listings); err != nil {
		if err == io.EOF {
			return []models.Listing{}, nil
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	for i := range listings {
		if listings[i].ListingID == 0 {
			listings[i].ListingID = listings[i].ID
		}
	}
	return listings, nil
}
