// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/groovify/internal/metrics"
)

// fakeClock is a manually advanced clock.
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

// newTestCache returns a cache driven by a fake clock.
func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)}
	c := New(ttl)
	c.now = clock.Now
	t.Cleanup(c.Close)
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

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

	c.Delete("key1")
	if _, exists = c.Get("key1"); exists {
		t.Error("Expected key1 to be deleted")
	}
}

func TestCacheExpiration(t *testing.T) {
	c, clock := newTestCache(t, 5*time.Minute)

	c.Set("key1", "value1")
	clock.Advance(4*time.Minute + 59*time.Second)
	if _, exists := c.Get("key1"); !exists {
		t.Fatal("Expected key1 to exist before the TTL elapsed")
	}

	clock.Advance(2 * time.Second)
	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("Expected expired entry to be removed, %d left", c.Len())
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	c, clock := newTestCache(t, time.Hour)

	c.SetWithTTL("short", 1, time.Second)
	c.Set("long", 2)
	clock.Advance(2 * time.Second)

	if _, ok := c.Get("short"); ok {
		t.Error("Expected short-lived entry to expire")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("Expected default TTL entry to survive")
	}
}

func TestCacheClear(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("key%d", i), i)
	}

	removed := c.Clear()
	if removed != 5 {
		t.Errorf("Expected 5 removed entries, got %d", removed)
	}
	if c.Len() != 0 {
		t.Errorf("Expected empty cache, got %d entries", c.Len())
	}

	stats := c.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("Expected 0 keys, got %d", stats.TotalKeys)
	}
	if stats.Evictions != 5 {
		t.Errorf("Expected 5 evictions, got %d", stats.Evictions)
	}
	if stats.LastClear.IsZero() {
		t.Error("Expected LastClear to be set")
	}
}

func TestCacheStatsAndHitRate(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	if rate := c.HitRate(); rate != 0 {
		t.Errorf("Expected 0%% hit rate without lookups, got %.2f", rate)
	}

	c.Set("key1", "value1")
	c.Get("key1")
	c.Get("key1")
	c.Get("key1")
	c.Get("missing")

	stats := c.GetStats()
	if stats.Hits != 3 || stats.Misses != 1 {
		t.Errorf("Expected 3 hits and 1 miss, got %d and %d", stats.Hits, stats.Misses)
	}
	if rate := c.HitRate(); rate != 75 {
		t.Errorf("Expected 75%% hit rate, got %.2f", rate)
	}
}

func TestCacheCleanup(t *testing.T) {
	c, clock := newTestCache(t, time.Minute)

	c.SetWithTTL("old", 1, time.Second)
	c.Set("fresh", 2)
	clock.Advance(2 * time.Second)

	c.cleanup()

	if c.Len() != 1 {
		t.Errorf("Expected 1 entry after cleanup, got %d", c.Len())
	}
	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.Evictions)
	}
	if !stats.LastCleanup.Equal(clock.Now()) {
		t.Errorf("Expected LastCleanup %v, got %v", clock.Now(), stats.LastCleanup)
	}
}

func TestCacheCloseIsIdempotent(t *testing.T) {
	c := New(time.Minute)
	c.Close()
	c.Close()
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		Start string
		End   string
	}

	key1 := GenerateKey("rfm segments", params{"2024-01-01", "2024-06-30"}, 6)
	key2 := GenerateKey("rfm segments", params{"2024-01-01", "2024-06-30"}, 6)
	if key1 != key2 {
		t.Errorf("Expected equal parameters to produce equal keys: %s vs %s", key1, key2)
	}

	if key1 == GenerateKey("rfm segments", params{"2024-01-01", "2024-06-29"}, 6) {
		t.Error("Expected different dates to produce different keys")
	}
	if key1 == GenerateKey("rfm segments", params{"2024-01-01", "2024-06-30"}, 7) {
		t.Error("Expected different thresholds to produce different keys")
	}
	if key1 == GenerateKey("churn analysis", params{"2024-01-01", "2024-06-30"}, 6) {
		t.Error("Expected different query ids to produce different keys")
	}

	// query id prefix, separator and 16 hashed bytes in hex
	if want := len("rfm segments:") + 32; len(key1) != want {
		t.Errorf("Expected key length %d, got %d (%s)", want, len(key1), key1)
	}
}

func TestFetchCachesSuccessOnly(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	calls := 0

	fail := func() ([]int, error) {
		calls++
		return nil, errors.New("connection refused")
	}
	if _, err := Fetch(c, "genre stats", []any{"2024"}, fail); err == nil {
		t.Fatal("Expected the query error to be returned")
	}
	if c.Len() != 0 {
		t.Fatal("Errors must not be cached")
	}

	ok := func() ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}
	for i := 0; i < 3; i++ {
		rows, err := Fetch(c, "genre stats", []any{"2024"}, ok)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("Expected 3 rows, got %d", len(rows))
		}
	}
	if calls != 2 {
		t.Errorf("Expected the failed call and one successful call, got %d calls", calls)
	}

	// Empty results are a success and are cached.
	empty := func() ([]int, error) {
		calls++
		return []int{}, nil
	}
	_, _ = Fetch(c, "genre stats", []any{"1999"}, empty)
	_, _ = Fetch(c, "genre stats", []any{"1999"}, empty)
	if calls != 3 {
		t.Errorf("Expected the empty result to be cached, got %d calls", calls)
	}
}

func TestFetchWithNilCache(t *testing.T) {
	calls := 0
	fn := func() (string, error) {
		calls++
		return "fresh", nil
	}

	for i := 0; i < 2; i++ {
		value, err := Fetch[string](nil, "home", nil, fn)
		if err != nil || value != "fresh" {
			t.Fatalf("unexpected result %q, %v", value, err)
		}
	}
	if calls != 2 {
		t.Errorf("Expected a nil cache to call through every time, got %d calls", calls)
	}
}

func TestCacheConcurrency(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key%d", j%10)
				_, _ = Fetch(c, key, []any{id % 2}, func() (int, error) { return j, nil })
				if j%25 == 0 {
					c.Clear()
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestRecordEntries(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.RecordEntries()
	if got := testutil.ToFloat64(metrics.CacheEntries.WithLabelValues(metricsLabel)); got != 2 {
		t.Errorf("cache_entries = %v, want 2", got)
	}
}

func BenchmarkGenerateKey(b *testing.B) {
	params := []any{"2024-01-01", "2024-06-30", 6, 12}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GenerateKey("churn analysis", params...)
	}
}
