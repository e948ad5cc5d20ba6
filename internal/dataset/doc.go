// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

// Package dataset loads the listing dataset into memory.
//
// A Source reads listings from one backing format: the Inside Airbnb CSV
// export, a JSON array, a DuckDB-readable file (CSV, Parquet or a database
// file), or a PostgreSQL table. Load wraps the result in an immutable Store
// that the analytics and API layers read concurrently without locking.
//
// Usage:
//
//	src, err := dataset.NewSource(cfg.Dataset)
//	if err != nil {
//	    return err
//	}
//	store, err := dataset.Load(ctx, src)
//	if err != nil && !errors.Is(err, dataset.ErrEmptyDataset) {
//	    return err
//	}
package dataset
