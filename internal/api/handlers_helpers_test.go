// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/models"
)

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"key": "value"}`))
	b := generateETag([]byte(`{"key": "value"}`))
	c := generateETag([]byte(`{"key": "other"}`))

	if a != b {
		t.Errorf("generateETag() not deterministic: %s != %s", a, b)
	}
	if a == c {
		t.Error("generateETag() returned the same tag for different data")
	}
	if !strings.HasPrefix(a, `"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %s is not quoted", a)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"line\nbreak", "line\\x0abreak"},
		{"tab\there", "tab\\x09here"},
		{"del\x7f", "del\\x7f"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.input); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRespondJSONRevalidation(t *testing.T) {
	payload := map[string]string{"genre": "Rock"}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/meta/date-bounds", nil)
	w := httptest.NewRecorder()
	respondSuccess(w, r, payload, time.Now())

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("Expected an ETag header")
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}

	// A later response has a new timestamp but the same data.
	r2 := httptest.NewRequest(http.MethodGet, "/api/v1/meta/date-bounds", nil)
	r2.Header.Set("If-None-Match", etag)
	w2 := httptest.NewRecorder()
	respondSuccess(w2, r2, payload, time.Now().Add(-time.Second))

	if w2.Code != http.StatusNotModified {
		t.Errorf("Expected status 304, got %d", w2.Code)
	}
	if w2.Body.Len() != 0 {
		t.Errorf("Expected empty body on 304, got %q", w2.Body.String())
	}
}

func TestRespondJSONPostHasNoETag(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/cache/clear", nil)
	w := httptest.NewRecorder()
	respondSuccess(w, r, map[string]int{"cleared": 3}, time.Now())

	if w.Header().Get("ETag") != "" {
		t.Error("POST responses must not carry an ETag")
	}
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
}

func TestRespondErrorEnvelope(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/pages/finance", nil)
	w := httptest.NewRecorder()
	respondErrorDetails(w, r, http.StatusBadRequest, models.ErrCodeValidation, "start_date is invalid",
		map[string]interface{}{"field": "start_date"}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("Expected status 'error', got %q", resp.Status)
	}
	if resp.Error == nil || resp.Error.Code != models.ErrCodeValidation {
		t.Fatalf("Expected VALIDATION_ERROR, got %+v", resp.Error)
	}
	if resp.Error.Details["field"] != "start_date" {
		t.Errorf("Expected field detail, got %v", resp.Error.Details)
	}
}

func TestQueryReader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?top=5&days=abc&amount=12.5&rate=x&name=%20Rock%20", nil)
	q := newQueryReader(r)

	if got := q.int("top"); got != 5 {
		t.Errorf("int(top) = %d, want 5", got)
	}
	if got := q.int("missing"); got != 0 {
		t.Errorf("int(missing) = %d, want 0", got)
	}
	if q.intPtr("missing") != nil {
		t.Error("intPtr(missing) should be nil")
	}
	if p := q.floatPtr("amount"); p == nil || *p != 12.5 {
		t.Errorf("floatPtr(amount) = %v, want 12.5", p)
	}
	if got := q.str("name"); got != "Rock" {
		t.Errorf("str(name) = %q, want trimmed value", got)
	}
	if q.err() != nil {
		t.Fatal("no parse error expected yet")
	}

	q.intPtr("days")
	q.floatPtr("rate")
	apiErr := q.err()
	if apiErr == nil {
		t.Fatal("Expected a parse error")
	}
	if apiErr.Code != models.ErrCodeValidation {
		t.Errorf("Code = %s", apiErr.Code)
	}
	if apiErr.Message != "days, rate must be numeric" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestParseCommaSeparated(t *testing.T) {
	got := parseCommaSeparated(" Rock, Jazz ,,Metal ")
	want := []string{"Rock", "Jazz", "Metal"}
	if len(got) != len(want) {
		t.Fatalf("parseCommaSeparated() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseCommaSeparated()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if parseCommaSeparated("") != nil {
		t.Error("empty input should give nil")
	}
}

func TestParseDate(t *testing.T) {
	if !parseDate("").IsZero() {
		t.Error("empty date should be zero")
	}
	if got := parseDate("2024-02-29").Format(models.DateLayout); got != "2024-02-29" {
		t.Errorf("parseDate() = %s", got)
	}
}

func TestExplorerLimiter(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		h := &Handler{explorer: newExplorerLimiter(config.ExplorerConfig{QueriesPerMinute: 0})}
		for i := 0; i < 100; i++ {
			if _, ok := h.reserveExplorerQuery(); !ok {
				t.Fatalf("query %d throttled with throttling disabled", i)
			}
		}
	})

	t.Run("burst then wait", func(t *testing.T) {
		h := &Handler{explorer: newExplorerLimiter(config.ExplorerConfig{QueriesPerMinute: 6, Burst: 2})}
		for i := 0; i < 2; i++ {
			if _, ok := h.reserveExplorerQuery(); !ok {
				t.Fatalf("query %d throttled inside the burst", i)
			}
		}
		wait, ok := h.reserveExplorerQuery()
		if ok {
			t.Fatal("Expected the third query to be throttled")
		}
		if wait <= 0 || wait > 10*time.Second {
			t.Errorf("wait = %v, want within one token interval", wait)
		}
		// A throttled attempt does not consume the next token.
		wait2, _ := h.reserveExplorerQuery()
		if wait2 > wait {
			t.Errorf("throttled attempt pushed the wait from %v to %v", wait, wait2)
		}
	})

	t.Run("burst floor", func(t *testing.T) {
		l := newExplorerLimiter(config.ExplorerConfig{QueriesPerMinute: 60, Burst: 0})
		if l.Burst() != 1 {
			t.Errorf("Burst() = %d, want 1", l.Burst())
		}
	})
}
