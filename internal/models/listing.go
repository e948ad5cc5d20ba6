// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package models

// Listing is a single short-term rental unit as published in the Inside Airbnb
// "listings" summary files. Records are created once when the dataset is loaded
// and are never modified afterwards.
//
// LastReview and ReviewsPerMonth are nil for listings that have never been
// reviewed.
type Listing struct {
	ID                          int64    `json:"id"`
	ListingID                   int64    `json:"listing_id"`
	Name                        string   `json:"name"`
	HostID                      int64    `json:"host_id"`
	HostName                    string   `json:"host_name"`
	NeighbourhoodGroup          string   `json:"neighbourhood_group"`
	Neighbourhood               string   `json:"neighbourhood"`
	Latitude                    float64  `json:"latitude"`
	Longitude                   float64  `json:"longitude"`
	RoomType                    string   `json:"room_type"`
	Price                       float64  `json:"price"`
	MinimumNights               int      `json:"minimum_nights"`
	NumberOfReviews             int      `json:"number_of_reviews"`
	LastReview                  *string  `json:"last_review"`
	ReviewsPerMonth             *float64 `json:"reviews_per_month"`
	CalculatedHostListingsCount int      `json:"calculated_host_listings_count"`
	Availability365             int      `json:"availability_365"`
}

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filter is the complete set of user-selected inclusion constraints.
//
// An empty NeighbourhoodGroups or RoomTypes slice accepts every value. All
// bounds are inclusive. A Filter is replaced as a whole on every change and is
// never edited in place while a computation is reading it.
type Filter struct {
	NeighbourhoodGroups []string   `json:"neighbourhood_group"`
	RoomTypes           []string   `json:"room_type"`
	PriceRange          PriceRange `json:"price_range"`
	MinReviews          int        `json:"min_reviews"`
	Availability        int        `json:"availability"`
}
