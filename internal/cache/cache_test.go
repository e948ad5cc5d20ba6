// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache[V any](ttl time.Duration, capacity int) (*Cache[V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := newCache[V](ttl, capacity)
	c.now = clock.Now
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()

	c := New[string](time.Minute, 10)
	defer c.Close()

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache[string](time.Minute, 10)
	c.Set("key1", "value1")

	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	clock.Advance(61 * time.Second)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed, Len() = %d", c.Len())
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache[int](time.Hour, 10)
	c.SetWithTTL("short", 1, time.Second)
	c.Set("long", 2)

	clock.Advance(2 * time.Second)

	if _, ok := c.Get("short"); ok {
		t.Error("Expected short to be expired")
	}
	if v, ok := c.Get("long"); !ok || v != 2 {
		t.Errorf("Get(long) = %v, %v", v, ok)
	}
}

func TestCacheOverwriteRefreshesExpiry(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache[string](time.Minute, 10)
	c.Set("k", "old")
	clock.Advance(50 * time.Second)
	c.Set("k", "new")
	clock.Advance(50 * time.Second)

	v, ok := c.Get("k")
	if !ok || v != "new" {
		t.Errorf("Get(k) = %q, %v; want new, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache[int](time.Minute, 3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch a so b becomes the oldest.
	c.Get("a")
	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("Expected b to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Expected %s to survive eviction", key)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if ev := c.GetStats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestCacheDelete(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache[string](time.Minute, 10)
	c.Set("key1", "value1")
	c.Delete("key1")
	c.Delete("missing")

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be deleted")
	}
	if ev := c.GetStats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestCacheClear(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache[string](time.Minute, 10)
	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Clear()

	for _, key := range []string{"key1", "key2", "key3"} {
		if _, exists := c.Get(key); exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
	stats := c.GetStats()
	if stats.TotalKeys != 0 || stats.Evictions != 3 {
		t.Errorf("stats after Clear = %+v", stats)
	}
}

func TestCacheStats(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache[string](time.Minute, 10)

	if c.HitRate() != 0 {
		t.Errorf("HitRate() on empty cache = %v, want 0", c.HitRate())
	}

	c.Set("key1", "value1")
	c.Get("key1") // hit
	c.Get("key2") // miss
	c.Get("key1") // hit

	stats := c.GetStats()
	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}

	hitRate := c.HitRate()
	expectedHitRate := 66.66666666666667
	if hitRate < expectedHitRate-0.01 || hitRate > expectedHitRate+0.01 {
		t.Errorf("Expected hit rate around %.2f%%, got %.2f%%", expectedHitRate, hitRate)
	}
}

func TestCacheCleanup(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache[string](time.Minute, 10)
	c.SetWithTTL("short-lived", "value1", 10*time.Second)
	c.SetWithTTL("long-lived", "value2", time.Hour)
	c.SetWithTTL("also-short", "value3", 20*time.Second)

	clock.Advance(30 * time.Second)
	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("Expected 1 total key, got %d", stats.TotalKeys)
	}
	if stats.Evictions != 2 {
		t.Errorf("Expected 2 evictions, got %d", stats.Evictions)
	}
	if !stats.LastCleanup.Equal(clock.Now()) {
		t.Errorf("LastCleanup = %v, want %v", stats.LastCleanup, clock.Now())
	}
	if _, ok := c.Get("long-lived"); !ok {
		t.Error("Expected long-lived key to still exist")
	}
}

func TestCacheCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	c := New[int](time.Millisecond, 0)
	c.Close()
	c.Close()

	c.Set("k", 1)
	if _, ok := c.Get("k"); !ok {
		t.Error("cache should remain usable after Close")
	}
	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want default %d", c.capacity, DefaultCapacity)
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type params struct {
		Regions []string
		Min     float64
	}

	key1 := GenerateKey("snapshot", params{Regions: []string{"Bronx"}, Min: 10})
	key2 := GenerateKey("snapshot", params{Regions: []string{"Bronx"}, Min: 10})
	key3 := GenerateKey("snapshot", params{Regions: []string{"Queens"}, Min: 10})
	key4 := GenerateKey("metrics", params{Regions: []string{"Bronx"}, Min: 10})

	if key1 != key2 {
		t.Error("Expected same params to generate same key")
	}
	if key1 == key3 {
		t.Error("Expected different params to generate different key")
	}
	if key1 == key4 {
		t.Error("Expected different prefixes to generate different key")
	}
}

func TestCacheConcurrency(t *testing.T) {
	t.Parallel()

	c := New[int](time.Minute, 16)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j%20)
				c.Set(key, id)
				c.Get(key)
				if j%10 == 0 {
					c.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds capacity 16", c.Len())
	}
	stats := c.GetStats()
	if stats.Hits == 0 && stats.Misses == 0 {
		t.Error("Expected some cache activity from concurrent operations")
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string](time.Minute, 10)
	defer c.Close()
	c.Set("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkGenerateKey(b *testing.B) {
	params := struct {
		Regions []string
		Min     float64
		Max     float64
	}{[]string{"Brooklyn", "Manhattan"}, 10, 500}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateKey("snapshot", params)
	}
}
