// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"github.com/tomtom215/listingscope/internal/models"
)

// listing builds a test listing with the fields most tests care about.
func listing(id int64, region, roomType string, price float64, reviews, availability int) models.Listing {
	return models.Listing{
		ID:                 id,
		ListingID:          id,
		Name:               "Listing",
		HostID:             id,
		HostName:           "Host",
		NeighbourhoodGroup: region,
		Neighbourhood:      region + " North",
		RoomType:           roomType,
		Price:              price,
		MinimumNights:      1,
		NumberOfReviews:    reviews,
		Availability365:    availability,
	}
}

func withPrices(prices ...float64) []models.Listing {
	out := make([]models.Listing, len(prices))
	for i, p := range prices {
		out[i] = listing(int64(i+1), "Manhattan", "Entire home/apt", p, 0, 0)
	}
	return out
}

func withHosts(hostIDs ...int64) []models.Listing {
	out := make([]models.Listing, len(hostIDs))
	for i, h := range hostIDs {
		out[i] = listing(int64(i+1), "Brooklyn", "Private room", 100, 0, 0)
		out[i].HostID = h
		out[i].HostName = hostName(h)
	}
	return out
}

func hostName(id int64) string {
	return "h" + string(rune('0'+id))
}

// sampleListings is a small store resembling the AB_NYC data.
func sampleListings() []models.Listing {
	return []models.Listing{
		listing(1, "Brooklyn", "Private room", 149, 9, 365),
		listing(2, "Manhattan", "Entire home/apt", 225, 45, 355),
		listing(3, "Manhattan", "Private room", 150, 0, 365),
		listing(4, "Brooklyn", "Entire home/apt", 89, 270, 194),
		listing(5, "Manhattan", "Entire home/apt", 80, 9, 0),
		listing(6, "Queens", "Shared room", 40, 130, 0),
		listing(7, "Bronx", "Private room", 60, 2, 90),
		listing(8, "Staten Island", "Entire home/apt", 450, 118, 12),
		listing(9, "Manhattan", "Entire home/apt", 500, 1, 0),
		listing(10, "Brooklyn", "Private room", 50, 0, 300),
	}
}
