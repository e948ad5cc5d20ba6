// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package dataset

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestDuckDBSourceReadsCSV(t *testing.T) {
	t.Parallel()

	src, err := NewDuckDBSource("testdata/listings.csv", "")
	if err != nil {
		t.Fatalf("NewDuckDBSource() error = %v", err)
	}

	listings, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(listings) != 5 {
		t.Fatalf("len = %d, want 5", len(listings))
	}

	// Must match the native CSV reader row for row.
	native, err := NewCSVSource("testdata/listings.csv").Load(context.Background())
	if err != nil {
		t.Fatalf("csv Load() error = %v", err)
	}
	for i := range native {
		got, want := listings[i], native[i]
		if got.ID != want.ID || got.HostID != want.HostID || got.Price != want.Price ||
			got.NeighbourhoodGroup != want.NeighbourhoodGroup || got.RoomType != want.RoomType ||
			got.NumberOfReviews != want.NumberOfReviews || got.Availability365 != want.Availability365 {
			t.Errorf("row %d: duckdb %+v, csv %+v", i, got, want)
		}
		if (got.LastReview == nil) != (want.LastReview == nil) {
			t.Errorf("row %d: last_review nil mismatch", i)
		}
		if (got.ReviewsPerMonth == nil) != (want.ReviewsPerMonth == nil) {
			t.Errorf("row %d: reviews_per_month nil mismatch", i)
		}
	}
}

func TestDuckDBSourceReadsTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.duckdb")
	db, err := sql.Open("duckdb", path)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	stmts := []string{
		`CREATE TABLE nyc AS SELECT * FROM read_csv_auto('testdata/listings.csv')`,
		`INSERT INTO nyc SELECT 9999, 'Late row', 1, 'Ann', 'Queens', 'Astoria', 40.7, -73.9,
			'Shared room', 35, 1, 0, NULL, NULL, 1, 12`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close duckdb: %v", err)
	}

	src, err := NewDuckDBSource(path, "nyc")
	if err != nil {
		t.Fatalf("NewDuckDBSource() error = %v", err)
	}
	listings, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(listings) != 6 {
		t.Fatalf("len = %d, want 6", len(listings))
	}
	last := listings[5]
	if last.ID != 9999 || last.ListingID != 9999 || last.NeighbourhoodGroup != "Queens" || last.Price != 35 {
		t.Errorf("unexpected last row: %+v", last)
	}
	if last.LastReview != nil || last.ReviewsPerMonth != nil {
		t.Error("NULL review fields should scan to nil")
	}
}

func TestDuckDBSourceMissingTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.duckdb")
	db, err := sql.Open("duckdb", path)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	if _, err := db.Exec("CREATE TABLE other (x INTEGER)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	db.Close() //nolint:errcheck // test setup

	src, err := NewDuckDBSource(path, "")
	if err != nil {
		t.Fatalf("NewDuckDBSource() error = %v", err)
	}
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing listings table")
	}
}
