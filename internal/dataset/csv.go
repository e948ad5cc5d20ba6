// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/listingscope/internal/models"
)

// Column names of the Inside Airbnb listings summary export.
const (
	colID                 = "id"
	colListingID          = "listing_id"
	colName               = "name"
	colHostID             = "host_id"
	colHostName           = "host_name"
	colNeighbourhoodGroup = "neighbourhood_group"
	colNeighbourhood      = "neighbourhood"
	colLatitude           = "latitude"
	colLongitude          = "longitude"
	colRoomType           = "room_type"
	colPrice              = "price"
	colMinimumNights      = "minimum_nights"
	colNumberOfReviews    = "number_of_reviews"
	colLastReview         = "last_review"
	colReviewsPerMonth    = "reviews_per_month"
	colHostListingsCount  = "calculated_host_listings_count"
	colAvailability365    = "availability_365"
)

var requiredColumns = []string{
	colID,
	colName,
	colHostID,
	colHostName,
	colNeighbourhoodGroup,
	colNeighbourhood,
	colLatitude,
	colLongitude,
	colRoomType,
	colPrice,
	colMinimumNights,
	colNumberOfReviews,
	colHostListingsCount,
	colAvailability365,
}

// CSVSource reads the Inside Airbnb CSV layout. Columns are matched by header
// name, so column order and extra columns do not matter.
type CSVSource struct {
	path string
}

// NewCSVSource creates a source for the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Name implements Source.
func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) ([]models.Listing, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return ReadCSV(ctx, f)
}

// ReadCSV parses listings from r. The first record must be the header row.
func ReadCSV(ctx context.Context, r io.Reader) ([]models.Listing, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.Listing{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	listings := make([]models.Listing, 0, 1024)
	for row := 2; ; row++ {
		if row%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		l, err := cols.parse(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// columnIndex maps column names to their position in a record.
type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

// cell returns the trimmed value of column name, or "" when the column is
// absent or the record is short.
func (c columnIndex) cell(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (c columnIndex) parse(record []string) (models.Listing, error) {
	var l models.Listing
	p := fieldParser{cols: c, record: record}

	l.ID = p.int64(colID)
	l.ListingID = l.ID
	if c.cell(record, colListingID) != "" {
		l.ListingID = p.int64(colListingID)
	}
	l.Name = c.cell(record, colName)
	l.HostID = p.int64(colHostID)
	l.HostName = c.cell(record, colHostName)
	l.NeighbourhoodGroup = c.cell(record, colNeighbourhoodGroup)
	l.Neighbourhood = c.cell(record, colNeighbourhood)
	l.Latitude = p.float(colLatitude)
	l.Longitude = p.float(colLongitude)
	l.RoomType = c.cell(record, colRoomType)
	l.Price = p.price(colPrice)
	l.MinimumNights = p.int(colMinimumNights)
	l.NumberOfReviews = p.int(colNumberOfReviews)
	if v := c.cell(record, colLastReview); v != "" {
		l.LastReview = &v
	}
	if c.cell(record, colReviewsPerMonth) != "" {
		v := p.float(colReviewsPerMonth)
		l.ReviewsPerMonth = &v
	}
	l.CalculatedHostListingsCount = p.int(colHostListingsCount)
	l.Availability365 = p.int(colAvailability365)

	return l, p.err
}

// fieldParser converts numeric cells and keeps the first conversion error.
type fieldParser struct {
	cols   columnIndex
	record []string
	err    error
}

func (p *fieldParser) fail(name, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("column %s: invalid value %q: %w", name, value, err)
	}
}

func (p *fieldParser) int64(name string) int64 {
	v := p.cols.cell(p.record, name)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		// Some exports write integer ids in float notation, e.g. "2539.0".
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int64(f)) {
			p.fail(name, v, err)
			return 0
		}
		return int64(f)
	}
	return n
}

func (p *fieldParser) int(name string) int {
	return int(p.int64(name))
}

func (p *fieldParser) float(name string) float64 {
	v := p.cols.cell(p.record, name)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(name, v, err)
		return 0
	}
	// ParseFloat accepts "NaN" and "Inf".
	if math.IsNaN(f) || math.IsInf(f, 0) {
		p.fail(name, v, ErrInvalidValue)
		return 0
	}
	return f
}

// price accepts plain numbers and the "$1,200.00" form used by newer exports.
func (p *fieldParser) price(name string) float64 {
	v := p.cols.cell(p.record, name)
	cleaned := strings.ReplaceAll(strings.TrimPrefix(v, "$"), ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		p.fail(name, v, err)
		return 0
	}
	if !validPrice(f) {
		p.fail(name, v, ErrInvalidValue)
		return 0
	}
	return f
}
