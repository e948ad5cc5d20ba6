// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package config provides centralized configuration management for Listingscope.

Configuration is layered with Koanf v2, later sources overriding earlier ones:

 1. Built-in defaults (DefaultConfig)
 2. An optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths that exists
 3. Environment variables, mapped explicitly by envTransformFunc

An optional .env file (DOTENV_PATH, default ".env") is loaded into the process
environment before the environment layer is read.

# Configuration Structure

  - DatasetConfig: where listings are loaded from (csv, json, duckdb, postgres)
  - DashboardConfig: leaderboard, insight and preview sizes
  - CacheConfig: snapshot memoization
  - ServerConfig: HTTP listen address and timeouts
  - SecurityConfig: CORS origins and per-IP rate limiting
  - WebSocketConfig: live connection limits
  - LoggingConfig: zerolog level and format

# Example YAML

	dataset:
	  source: duckdb
	  path: /data/listings.parquet
	dashboard:
	  top_hosts_limit: 20
	server:
	  port: 8080
	logging:
	  level: debug
	  format: console

Validate is run after loading and returns the first problem found.
*/
package config
