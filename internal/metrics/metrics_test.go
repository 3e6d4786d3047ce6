// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		duration time.Duration
		err      error
		wantType string
	}{
		{"successful query", "finance_kpis", 10 * time.Millisecond, nil, ""},
		{"timeout", "rfm_segments", 30 * time.Second, fmt.Errorf("rfm segments: %w", context.DeadlineExceeded), "timeout"},
		{"canceled", "churn_analysis", time.Millisecond, context.Canceled, "canceled"},
		{"breaker open", "genre_analysis", 0, errors.New("circuit breaker is open"), "circuit_open"},
		{"syntax error", "album_analytics", time.Millisecond, errors.New("Parser Error: syntax error at or near"), "query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before float64
			if tt.err != nil {
				before = testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.query, "duckdb", tt.wantType))
			}

			RecordDBQuery(tt.query, "duckdb", tt.duration, tt.err)

			if tt.err == nil {
				return
			}
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.query, "duckdb", tt.wantType))
			if after != before+1 {
				t.Errorf("error counter for %s = %v, want %v", tt.wantType, after, before+1)
			}
		})
	}
}

func TestRecordDBQueryHistogram(t *testing.T) {
	for _, d := range []time.Duration{5 * time.Millisecond, 20 * time.Millisecond, 2 * time.Second} {
		RecordDBQuery("histogram_probe", "postgres", d, nil)
	}

	observer := DBQueryDuration.WithLabelValues("histogram_probe", "postgres")
	metric, ok := observer.(prometheus.Metric)
	if !ok {
		t.Fatal("histogram observer does not implement prometheus.Metric")
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}

	h := m.GetHistogram()
	if h.GetSampleCount() != 3 {
		t.Errorf("sample count = %d, want 3", h.GetSampleCount())
	}
	if sum := h.GetSampleSum(); sum < 2.024 || sum > 2.026 {
		t.Errorf("sample sum = %v, want 2.025", sum)
	}
	labels := map[string]string{}
	for _, lp := range m.GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	if labels["engine"] != "postgres" {
		t.Errorf("unexpected labels %v", labels)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/pages/finance", "200"))
	RecordAPIRequest("GET", "/api/v1/pages/finance", "200", 25*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/pages/finance", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != start+1 {
		t.Errorf("active requests after start = %v, want %v", got, start+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active requests after end = %v, want %v", got, start)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("query_test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("query_test"))

	RecordCacheLookup("query_test", true)
	RecordCacheLookup("query_test", false)
	RecordCacheLookup("query_test", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("query_test")); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("query_test")); got != misses+2 {
		t.Errorf("misses = %v, want %v", got, misses+2)
	}
}

func TestRecordSectionOutcome(t *testing.T) {
	before := testutil.ToFloat64(SectionOutcomes.WithLabelValues("alerts", "empty"))
	RecordSectionOutcome("alerts", "empty")
	if got := testutil.ToFloat64(SectionOutcomes.WithLabelValues("alerts", "empty")); got != before+1 {
		t.Errorf("section outcomes = %v, want %v", got, before+1)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			RecordDBQuery("concurrent", "duckdb", time.Duration(i)*time.Millisecond, nil)
			RecordExplorerQuery("ok")
			RecordCacheLookup("concurrent", i%2 == 0)
		}(i)
	}
	wg.Wait()

	if got := testutil.CollectAndCount(DBQueryDuration, "groovify_db_query_duration_seconds"); got == 0 {
		t.Error("expected query duration series to be collected")
	}
}
