// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package models

// AnalysisMetrics holds the scalar summary of a filtered subset.
// Every numeric field is rounded to the nearest integer.
type AnalysisMetrics struct {
	TotalListings            int    `json:"total_listings"`
	AveragePrice             int64  `json:"average_price"`
	MedianPrice              int64  `json:"median_price"`
	MostCommonRoomType       string `json:"most_common_room_type"`
	MostPopularNeighbourhood string `json:"most_popular_neighbourhood"`
	AverageReviews           int64  `json:"average_reviews"`
	AverageAvailability      int64  `json:"average_availability"`
}

// CategoryCount is one entry of a grouped count (region or room type).
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PriceBucket is one bar of the price histogram. Max is nil for the
// open-ended top bucket.
type PriceBucket struct {
	Label string   `json:"label"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"count"`
}

// HostRank is one row of the top hosts leaderboard.
type HostRank struct {
	HostID   int64  `json:"host_id"`
	HostName string `json:"host_name"`
	Count    int    `json:"count"`
}

// Insights are the secondary figures shown next to the main metrics.
type Insights struct {
	TopHosts              []HostRank `json:"top_hosts"`
	HighlyReviewed        int        `json:"highly_reviewed"`
	HighlyReviewedMin     int        `json:"highly_reviewed_min"`
	AverageMinimumNights  int64      `json:"average_minimum_nights"`
	FullyBooked           int        `json:"fully_booked"`
	FullyBookedPercentage float64    `json:"fully_booked_percentage"`
}

// ListingPreview is the first rows of a filtered subset together with the
// size of the whole subset.
type ListingPreview struct {
	Listings []Listing `json:"listings"`
	Shown    int       `json:"shown"`
	Total    int       `json:"total"`
}

// Facets describes the values a client can filter on.
type Facets struct {
	NeighbourhoodGroups []string   `json:"neighbourhood_groups"`
	RoomTypes           []string   `json:"room_types"`
	PriceRange          PriceRange `json:"price_range"`
	DefaultFilter       Filter     `json:"default_filter"`
}

// DashboardSnapshot is every derived view of one filter configuration.
type DashboardSnapshot struct {
	Filter            Filter          `json:"filter"`
	Metrics           AnalysisMetrics `json:"metrics"`
	Regions           []CategoryCount `json:"regions"`
	RoomTypes         []CategoryCount `json:"room_types"`
	PriceDistribution []PriceBucket   `json:"price_distribution"`
	TopHosts          []HostRank      `json:"top_hosts"`
	Insights          Insights        `json:"insights"`
	Preview           ListingPreview  `json:"preview"`
}
