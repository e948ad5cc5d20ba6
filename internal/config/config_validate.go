// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateDashboard(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateWebSocket(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validDatasetSources defines the supported listing store backends
var validDatasetSources = map[string]bool{
	SourceCSV:      true,
	SourceJSON:     true,
	SourceDuckDB:   true,
	SourcePostgres: true,
}

// validateDataset validates the dataset source selection
func (c *Config) validateDataset() error {
	if !validDatasetSources[c.Dataset.Source] {
		return fmt.Errorf("DATASET_SOURCE must be one of: csv, json, duckdb, postgres")
	}

	if c.Dataset.Source == SourcePostgres {
		if c.Dataset.DSN == "" {
			return fmt.Errorf("DATASET_DSN is required when DATASET_SOURCE=postgres")
		}
	} else if c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required when DATASET_SOURCE=%s", c.Dataset.Source)
	}

	if c.Dataset.LoadTimeout <= 0 {
		return fmt.Errorf("DATASET_LOAD_TIMEOUT must be positive")
	}
	return nil
}

// validateDashboard validates view sizes
func (c *Config) validateDashboard() error {
	d := c.Dashboard
	if d.TopHostsLimit < 1 || d.TopHostsLimit > d.MaxTopHostsLimit {
		return fmt.Errorf("TOP_HOSTS_LIMIT must be between 1 and MAX_TOP_HOSTS_LIMIT (%d)", d.MaxTopHostsLimit)
	}
	if d.InsightHostsLimit < 1 || d.InsightHostsLimit > d.MaxTopHostsLimit {
		return fmt.Errorf("INSIGHT_HOSTS_LIMIT must be between 1 and MAX_TOP_HOSTS_LIMIT (%d)", d.MaxTopHostsLimit)
	}
	if d.HighlyReviewedThreshold < 0 {
		return fmt.Errorf("HIGHLY_REVIEWED_THRESHOLD must not be negative")
	}
	if d.PreviewRows < 0 || d.PreviewRows > d.MaxPreviewRows {
		return fmt.Errorf("PREVIEW_ROWS must be between 0 and MAX_PREVIEW_ROWS (%d)", d.MaxPreviewRows)
	}
	return nil
}

// validateCache validates cache configuration (only if enabled)
func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when CACHE_ENABLED=true")
	}
	if c.Cache.Enabled && c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be positive when CACHE_ENABLED=true")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if c.IsProduction() && c.HasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed when ENVIRONMENT=production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com")
	}
	return c.validateRateLimits()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration (only if enabled)
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateWebSocket validates live connection limits
func (c *Config) validateWebSocket() error {
	if c.WebSocket.MaxMessageBytes < 256 {
		return fmt.Errorf("WS_MAX_MESSAGE_BYTES must be at least 256")
	}
	if c.WebSocket.FilterUpdatesPerSecond <= 0 {
		return fmt.Errorf("WS_FILTER_UPDATES_PER_SECOND must be positive")
	}
	if c.WebSocket.FilterUpdateBurst < 1 {
		return fmt.Errorf("WS_FILTER_UPDATE_BURST must be at least 1")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
