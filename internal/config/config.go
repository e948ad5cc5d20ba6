// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package config

import (
	"time"
)

// Dataset source names.
const (
	SourceCSV      = "csv"
	SourceJSON     = "json"
	SourceDuckDB   = "duckdb"
	SourcePostgres = "postgres"
)

// Config holds all application configuration.
// Loaded by LoadWithKoanf from defaults, an optional YAML file and the
// environment, in that order of increasing precedence.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Cache     CacheConfig     `koanf:"cache"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	WebSocket WebSocketConfig `koanf:"websocket"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig selects where the listing store is loaded from.
//
// Environment Variables:
//   - DATASET_SOURCE: csv, json, duckdb or postgres (default: csv)
//   - DATASET_PATH: file to read for csv, json and duckdb sources
//   - DATASET_DSN: PostgreSQL connection string for the postgres source
//   - DATASET_TABLE: table to read for duckdb database files and postgres (default: listings)
//   - DATASET_LOAD_TIMEOUT: upper bound on the initial load (default: 2m)
type DatasetConfig struct {
	Source      string        `koanf:"source"`
	Path        string        `koanf:"path"`
	DSN         string        `koanf:"dsn"`
	Table       string        `koanf:"table"`
	LoadTimeout time.Duration `koanf:"load_timeout"`
}

// DashboardConfig sizes the ranked and sampled views.
//
// Environment Variables:
//   - TOP_HOSTS_LIMIT: default leaderboard length (default: 10)
//   - MAX_TOP_HOSTS_LIMIT: largest limit a client may request (default: 100)
//   - INSIGHT_HOSTS_LIMIT: hosts listed in the insights panel (default: 5)
//   - HIGHLY_REVIEWED_THRESHOLD: reviews needed to count as highly reviewed (default: 100)
//   - PREVIEW_ROWS: listing rows in a dashboard snapshot (default: 15)
//   - MAX_PREVIEW_ROWS: largest row count a client may request (default: 500)
type DashboardConfig struct {
	TopHostsLimit           int `koanf:"top_hosts_limit"`
	MaxTopHostsLimit        int `koanf:"max_top_hosts_limit"`
	InsightHostsLimit       int `koanf:"insight_hosts_limit"`
	HighlyReviewedThreshold int `koanf:"highly_reviewed_threshold"`
	PreviewRows             int `koanf:"preview_rows"`
	MaxPreviewRows          int `koanf:"max_preview_rows"`
}

// CacheConfig controls memoization of computed snapshots.
//
// Environment Variables:
//   - CACHE_ENABLED: true/false (default: true)
//   - CACHE_TTL: entry lifetime (default: 5m)
//   - CACHE_MAX_ENTRIES: distinct filters kept at once (default: 1024)
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port              int           `koanf:"port"`
	Host              string        `koanf:"host"`
	Timeout           time.Duration `koanf:"timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	Environment       string        `koanf:"environment"` // "development", "staging" or "production"
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// WebSocketConfig holds limits for live dashboard connections.
//
// Environment Variables:
//   - WS_MAX_MESSAGE_BYTES: largest accepted client frame (default: 4096)
//   - WS_FILTER_UPDATES_PER_SECOND: sustained filter updates per client (default: 5)
//   - WS_FILTER_UPDATE_BURST: filter updates allowed in a burst (default: 10)
type WebSocketConfig struct {
	MaxMessageBytes        int64   `koanf:"max_message_bytes"`
	FilterUpdatesPerSecond float64 `koanf:"filter_updates_per_second"`
	FilterUpdateBurst      int     `koanf:"filter_update_burst"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Adds slight performance overhead.
	// Default: false
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// HasWildcardCORS reports whether any allowed CORS origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
