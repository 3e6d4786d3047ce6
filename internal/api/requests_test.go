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

	"github.com/tomtom215/groovify/internal/models"
)

func TestParseFinanceQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantErr   bool
		wantField string
	}{
		{name: "no parameters", query: ""},
		{name: "full range", query: "start_date=2023-01-01&end_date=2023-12-31&granularity=quarter&top=5"},
		{name: "same day", query: "start_date=2023-01-01&end_date=2023-01-01"},
		{name: "bad date", query: "start_date=2023-13-01", wantErr: true, wantField: "start_date"},
		{name: "slash date", query: "end_date=2023/01/01", wantErr: true, wantField: "end_date"},
		{name: "inverted range", query: "start_date=2024-01-01&end_date=2023-01-01", wantErr: true, wantField: "end_date"},
		{name: "unknown granularity", query: "granularity=week", wantErr: true, wantField: "granularity"},
		{name: "top too large", query: "top=1000", wantErr: true, wantField: "top"},
		{name: "top not a number", query: "top=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/pages/finance?"+tt.query, nil)
			_, apiErr := parseFinanceQuery(r)
			if !tt.wantErr {
				if apiErr != nil {
					t.Fatalf("unexpected error: %s", apiErr.Message)
				}
				return
			}
			if apiErr == nil {
				t.Fatal("expected a validation error")
			}
			if apiErr.Code != models.ErrCodeValidation {
				t.Errorf("Code = %s", apiErr.Code)
			}
			if tt.wantField != "" && apiErr.Details["field"] != tt.wantField {
				t.Errorf("field = %v, want %s (message %q)", apiErr.Details["field"], tt.wantField, apiErr.Message)
			}
		})
	}
}

func TestParseInvertedRangeMessage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?start_date=2024-01-01&end_date=2023-01-01", nil)
	_, apiErr := parseEmployeesQuery(r)
	if apiErr == nil {
		t.Fatal("expected a validation error")
	}
	if apiErr.Message != "end_date must not be before start_date" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestParseCustomersQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?active_months=3&risk_months=9&top=10&metric=diversity", nil)
	req, apiErr := parseCustomersQuery(r)
	if apiErr != nil {
		t.Fatalf("unexpected error: %s", apiErr.Message)
	}
	if req.ActiveMonths != 3 || req.RiskMonths != 9 || req.Top != 10 || req.Metric != "diversity" {
		t.Errorf("unexpected request %+v", req)
	}

	r = httptest.NewRequest(http.MethodGet, "/?metric=loudness", nil)
	if _, apiErr := parseCustomersQuery(r); apiErr == nil {
		t.Error("expected an unknown metric to be rejected")
	}
}

func TestParseMusicQueryGenres(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?genres=Rock,Jazz&track_limit=20", nil)
	req, apiErr := parseMusicQuery(r)
	if apiErr != nil {
		t.Fatalf("unexpected error: %s", apiErr.Message)
	}
	if req.Genres != "Rock,Jazz" || req.TrackLimit != 20 {
		t.Errorf("unexpected request %+v", req)
	}

	r = httptest.NewRequest(http.MethodGet, "/?genres=Rock,,Jazz", nil)
	_, apiErr = parseMusicQuery(r)
	if apiErr == nil {
		t.Fatal("expected an empty genre name to be rejected")
	}
	if !strings.Contains(apiErr.Message, "genres") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestAlertsQueryApply(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?as_of=2024-06-30&days=14&min_sales=0&fraud_amount=250.5&critical_drop=40", nil)
	req, apiErr := parseAlertsQuery(r)
	if apiErr != nil {
		t.Fatalf("unexpected error: %s", apiErr.Message)
	}

	base := models.DefaultAlertThresholds()
	got := req.apply(base)

	if got.RevenueAnalysisDays != 14 {
		t.Errorf("RevenueAnalysisDays = %d", got.RevenueAnalysisDays)
	}
	if got.MinSalesThreshold != 0 {
		t.Errorf("an explicit zero override should apply, got %d", got.MinSalesThreshold)
	}
	if got.FraudAmount != 250.5 {
		t.Errorf("FraudAmount = %v", got.FraudAmount)
	}
	if got.CriticalDropPct != 40 {
		t.Errorf("CriticalDropPct = %v", got.CriticalDropPct)
	}
	if got.WarningDropPct != base.WarningDropPct || got.ChurnDaysThreshold != base.ChurnDaysThreshold {
		t.Error("unset overrides must keep the base thresholds")
	}
}

func TestParseAlertsQueryRejects(t *testing.T) {
	for _, query := range []string{"days=0", "critical_drop=150", "fraud_amount=-1", "churn_days=soon", "as_of=yesterday"} {
		r := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		if _, apiErr := parseAlertsQuery(r); apiErr == nil {
			t.Errorf("%s: expected a validation error", query)
		}
	}
}
