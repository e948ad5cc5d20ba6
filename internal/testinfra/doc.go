// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

// Package testinfra provides container-backed infrastructure for integration
// tests. Everything here is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # PostgreSQL
//
// NewPostgresContainer starts a throwaway PostgreSQL server and exposes a DSN
// the postgres dataset source can read from:
//
//	pg, err := testinfra.NewPostgresContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, pg.Container)
//
//	src := dataset.NewPostgresSource(pg.DSN, "listings")
//
// Tests call SkipIfNoDocker first so they skip cleanly on machines without a
// Docker daemon.
package testinfra
