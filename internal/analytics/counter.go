// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"github.com/tomtom215/listingscope/internal/models"
)

// orderedCounter counts string keys and remembers the order in which each key
// was first added.
type orderedCounter struct {
	index   map[string]int
	entries []models.CategoryCount
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{index: make(map[string]int)}
}

func (c *orderedCounter) add(key string) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Count++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, models.CategoryCount{Category: key, Count: 1})
}

// mode returns the key with the highest count. Among equal counts the key that
// was added first wins. An empty counter yields "".
func (c *orderedCounter) mode() string {
	best := -1
	for i, e := range c.entries {
		if best < 0 || e.Count > c.entries[best].Count {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return c.entries[best].Category
}

// counts returns the entries in first-seen order. The slice is never nil.
func (c *orderedCounter) counts() []models.CategoryCount {
	out := make([]models.CategoryCount, len(c.entries))
	copy(out, c.entries)
	return out
}
