// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestPerformanceMonitor_SlidingWindow(t *testing.T) {
	pm := NewPerformanceMonitor(3, 0)
	for i := 1; i <= 5; i++ {
		pm.RecordRequest(RequestMetrics{Route: fmt.Sprintf("/r%d", i), Method: http.MethodGet, DurationMS: int64(i)})
	}

	recent := pm.GetRecentMetrics(10)
	if len(recent) != 3 {
		t.Fatalf("expected the window to hold 3 requests, got %d", len(recent))
	}
	if recent[0].Route != "/r3" || recent[2].Route != "/r5" {
		t.Errorf("expected the oldest requests evicted, got %v", recent)
	}
	if got := pm.GetRecentMetrics(1); len(got) != 1 || got[0].Route != "/r5" {
		t.Errorf("expected the newest request, got %v", got)
	}
	if got := pm.GetRecentMetrics(-1); len(got) != 0 {
		t.Errorf("negative counts return nothing, got %v", got)
	}
}

func TestPerformanceMonitor_GetStats(t *testing.T) {
	pm := NewPerformanceMonitor(100, 0)
	for _, d := range []int64{10, 20, 30, 40, 100} {
		pm.RecordRequest(RequestMetrics{Route: "/api/v1/pages/{page}", Method: http.MethodGet, DurationMS: d, StatusCode: http.StatusOK})
	}
	pm.RecordRequest(RequestMetrics{Route: "/api/v1/sql/query", Method: http.MethodPost, DurationMS: 7, StatusCode: http.StatusInternalServerError})

	stats := pm.GetStats()
	if len(stats) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(stats))
	}

	pages := stats[0]
	if pages.Endpoint != "GET /api/v1/pages/{page}" || pages.RequestCount != 5 {
		t.Fatalf("busiest endpoint should come first, got %+v", pages)
	}
	if pages.AvgDuration != 40 || pages.MinDuration != 10 || pages.MaxDuration != 100 {
		t.Errorf("unexpected aggregates %+v", pages)
	}
	if pages.P50Duration != 30 || pages.P95Duration != 40 {
		t.Errorf("unexpected percentiles p50=%d p95=%d", pages.P50Duration, pages.P95Duration)
	}
	if stats[1].ErrorCount != 1 || pages.ErrorCount != 0 {
		t.Errorf("server errors should be counted per endpoint: %+v", stats)
	}
}

func TestPerformanceMonitor_Middleware(t *testing.T) {
	pm := NewPerformanceMonitor(10, time.Hour)
	clock := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	pm.now = func() time.Time {
		clock = clock.Add(25 * time.Millisecond)
		return clock
	}

	r := chi.NewRouter()
	r.Use(pm.Middleware)
	r.Get("/api/v1/sql/tables", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/sql/tables", nil))

	recent := pm.GetRecentMetrics(1)
	if len(recent) != 1 {
		t.Fatal("expected the request to be recorded")
	}
	got := recent[0]
	if got.Route != "/api/v1/sql/tables" || got.StatusCode != http.StatusAccepted || got.DurationMS != 25 {
		t.Errorf("unexpected metric %+v", got)
	}
}

func TestPercentile(t *testing.T) {
	t.Parallel()
	if percentile(nil, 0.5) != 0 {
		t.Error("empty input should give 0")
	}
	sorted := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := percentile(sorted, 0.99); got != 9 {
		t.Errorf("p99 of 1..10: expected 9, got %d", got)
	}
}
