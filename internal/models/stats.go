// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package models

import (
	"time"
)

// HealthStatus represents the health check response
type HealthStatus struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	DatasetSource string    `json:"dataset_source"`
	Listings      int       `json:"listings"`
	LoadedAt      time.Time `json:"loaded_at"`
	Uptime        float64   `json:"uptime_seconds"`
}
