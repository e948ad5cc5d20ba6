// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// DuckDB driver for reading CSV, Parquet and DuckDB database files
	_ "github.com/duckdb/duckdb-go/v2"
	// PostgreSQL driver for reading a listings table
	_ "github.com/lib/pq"

	"github.com/tomtom215/listingscope/internal/models"
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "listings"

// selectColumns normalises column types so DuckDB and PostgreSQL rows scan
// into the same Go types.
const selectColumns = `
	CAST(id AS BIGINT),
	COALESCE(CAST(name AS VARCHAR), ''),
	CAST(host_id AS BIGINT),
	COALESCE(CAST(host_name AS VARCHAR), ''),
	COALESCE(CAST(neighbourhood_group AS VARCHAR), ''),
	COALESCE(CAST(neighbourhood AS VARCHAR), ''),
	CAST(latitude AS DOUBLE PRECISION),
	CAST(longitude AS DOUBLE PRECISION),
	COALESCE(CAST(room_type AS VARCHAR), ''),
	CAST(price AS DOUBLE PRECISION),
	CAST(minimum_nights AS INTEGER),
	CAST(number_of_reviews AS INTEGER),
	CAST(last_review AS VARCHAR),
	CAST(reviews_per_month AS DOUBLE PRECISION),
	CAST(calculated_host_listings_count AS INTEGER),
	CAST(availability_365 AS INTEGER)`

// SQLSource reads listings through database/sql. It backs both the DuckDB and
// PostgreSQL sources; only the driver, DSN and FROM clause differ.
type SQLSource struct {
	name   string
	driver string
	dsn    string
	query  string
}

// NewDuckDBSource reads path with an in-memory DuckDB instance. CSV and
// Parquet files are scanned directly; .duckdb and .db files are opened and
// table is read from them. Rows keep file order.
func NewDuckDBSource(path, table string) (*SQLSource, error) {
	if table == "" {
		table = DefaultTable
	}

	src := &SQLSource{name: "duckdb:" + path, driver: "duckdb"}
	switch extension(path) {
	case "csv", "tsv":
		src.query = "SELECT" + selectColumns + " FROM read_csv_auto(" + quoteLiteral(path) + ")"
	case "parquet":
		src.query = "SELECT" + selectColumns + " FROM read_parquet(" + quoteLiteral(path) + ")"
	case "duckdb", "db":
		src.dsn = path + "?access_mode=READ_ONLY"
		src.query = "SELECT" + selectColumns + " FROM " + quoteIdentifier(table)
	default:
		return nil, fmt.Errorf("%w: duckdb cannot read %q", ErrUnsupportedFormat, path)
	}
	return src, nil
}

// NewPostgresSource reads table from the PostgreSQL database at dsn, ordered
// by id.
func NewPostgresSource(dsn, table string) *SQLSource {
	if table == "" {
		table = DefaultTable
	}
	return &SQLSource{
		name:   "postgres:" + table,
		driver: "postgres",
		dsn:    dsn,
		query:  "SELECT" + selectColumns + " FROM " + quoteIdentifier(table) + " ORDER BY id",
	}
}

// Name implements Source.
func (s *SQLSource) Name() string {
	return s.name
}

// Load implements Source.
func (s *SQLSource) Load(ctx context.Context) ([]models.Listing, error) {
	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.driver, err)
	}
	defer db.Close() //nolint:errcheck // one-shot connection

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", s.driver, err)
	}

	rows, err := db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close() //nolint:errcheck // checked via rows.Err

	listings := make([]models.Listing, 0, 1024)
	for rows.Next() {
		var (
			l               models.Listing
			lastReview      sql.NullString
			reviewsPerMonth sql.NullFloat64
		)
		if err := rows.Scan(
			&l.ID, &l.Name, &l.HostID, &l.HostName,
			&l.NeighbourhoodGroup, &l.Neighbourhood,
			&l.Latitude, &l.Longitude, &l.RoomType, &l.Price,
			&l.MinimumNights, &l.NumberOfReviews,
			&lastReview, &reviewsPerMonth,
			&l.CalculatedHostListingsCount, &l.Availability365,
		); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(listings)+1, err)
		}
		l.ListingID = l.ID
		if lastReview.Valid && lastReview.String != "" {
			v := lastReview.String
			l.LastReview = &v
		}
		if reviewsPerMonth.Valid {
			v := reviewsPerMonth.Float64
			l.ReviewsPerMonth = &v
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return listings, nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteIdentifier quotes each dot-separated part, so "public.listings" stays
// schema-qualified.
func quoteIdentifier(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}
