// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"sort"

	"github.com/tomtom215/listingscope/internal/models"
)

// DefaultTopHostsLimit is the leaderboard length used when none is configured.
const DefaultTopHostsLimit = 10

// TopHosts ranks hosts in subset by number of listings, highest first, and
// returns at most limit of them. A host keeps the name of its first listing in
// the subset. Hosts with equal counts stay in first-seen order. A limit of zero
// or less returns an empty slice.
func TopHosts(subset []models.Listing, limit int) []models.HostRank {
	if limit <= 0 {
		return []models.HostRank{}
	}

	index := make(map[int64]int)
	hosts := []models.HostRank{}
	for i := range subset {
		l := &subset[i]
		if j, ok := index[l.HostID]; ok {
			hosts[j].Count++
			continue
		}
		index[l.HostID] = len(hosts)
		hosts = append(hosts, models.HostRank{HostID: l.HostID, HostName: l.HostName, Count: 1})
	}

	sort.SliceStable(hosts, func(a, b int) bool {
		return hosts[a].Count > hosts[b].Count
	})

	if len(hosts) > limit {
		hosts = hosts[:limit]
	}
	return hosts
}
