// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package main is the entry point for the listingscope server.

Listingscope loads a short-term rental listing dataset into memory and serves
filtered analytics over a REST API and a WebSocket.

# Application Architecture

Long-lived components run under a suture v4 supervisor tree:

	RootSupervisor ("listingscope")
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocket Hub (live dashboard snapshots)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (/api/v1, /metrics, /swagger)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with the configured level and format
 3. Dataset: CSV, JSON, DuckDB or PostgreSQL source loaded once at startup
 4. Snapshot cache: TTL and capacity bounded, optional
 5. Dashboard service, WebSocket hub and HTTP router
 6. Supervisor tree

An empty dataset is logged as a warning and the server still starts; health
then reports "degraded".

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within SHUTDOWN_TIMEOUT and the hub closes every client with
a going-away close frame.

# Example Usage

	export DATASET_SOURCE=csv
	export DATASET_PATH=data/AB_NYC_2019.csv
	export LOG_FORMAT=console
	./listingscope

PostgreSQL:

	export DATASET_SOURCE=postgres
	export DATASET_DSN="postgres://app:secret@db:5432/rentals?sslmode=disable"
	export DATASET_TABLE=listings
	./listingscope
*/
package main
