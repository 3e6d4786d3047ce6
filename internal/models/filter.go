// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO date format used for every date parameter.
const DateLayout = "2006-01-02"

// ErrInvalidFilter is returned when a filter or parameter set cannot produce a valid query.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter is the explicit parameter set threaded through every query and shaping call.
//
// StartDate and EndDate bound invoice dates inclusively. AsOf is the reference date used in
// place of the engine's CURRENT_DATE, so recency and "last N days" windows are reproducible.
type Filter struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	AsOf      time.Time `json:"as_of"`
}

// NewFilter builds a filter truncated to calendar days. A zero asOf means today (UTC).
func NewFilter(start, end, asOf time.Time) Filter {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	return Filter{
		StartDate: TruncateDay(start),
		EndDate:   TruncateDay(end),
		AsOf:      TruncateDay(asOf),
	}
}

// Validate reports ErrInvalidFilter when the range is empty or inverted.
func (f Filter) Validate() error {
	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidFilter)
	}
	if f.StartDate.After(f.EndDate) {
		return fmt.Errorf("%w: start date %s is after end date %s",
			ErrInvalidFilter, f.StartDate.Format(DateLayout), f.EndDate.Format(DateLayout))
	}
	return nil
}

// Start returns the start date as an ISO string query parameter.
func (f Filter) Start() string { return f.StartDate.Format(DateLayout) }

// End returns the end date as an ISO string query parameter.
func (f Filter) End() string { return f.EndDate.Format(DateLayout) }

// AsOfParam returns the reference date as an ISO string query parameter.
func (f Filter) AsOfParam() string { return f.AsOf.Format(DateLayout) }

// DaysBefore returns the ISO date n days before AsOf.
func (f Filter) DaysBefore(n int) string {
	return f.AsOf.AddDate(0, 0, -n).Format(DateLayout)
}

// DayAfterAsOf returns the exclusive upper bound for windows that end on AsOf.
func (f Filter) DayAfterAsOf() string {
	return f.AsOf.AddDate(0, 0, 1).Format(DateLayout)
}

// TruncateDay drops the clock part of t, keeping its calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Granularity selects the period used by trend and basket queries.
type Granularity string

const (
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// Valid reports whether g is a supported granularity.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityMonth, GranularityQuarter, GranularityYear:
		return true
	}
	return false
}

// ChurnParams holds the churn windows in months. RiskMonths must exceed ActiveMonths.
type ChurnParams struct {
	ActiveMonths int `json:"active_months"`
	RiskMonths   int `json:"risk_months"`
}

// Validate enforces RiskMonths > ActiveMonths >= 1.
func (p ChurnParams) Validate() error {
	if p.ActiveMonths < 1 {
		return fmt.Errorf("%w: active_months must be at least 1", ErrInvalidFilter)
	}
	if p.RiskMonths <= p.ActiveMonths {
		return fmt.Errorf("%w: risk_months (%d) must be greater than active_months (%d)",
			ErrInvalidFilter, p.RiskMonths, p.ActiveMonths)
	}
	return nil
}

// MusicParams holds the thresholds and limits of the music page.
type MusicParams struct {
	MinTrackSales          int      `json:"min_track_sales"`
	TrackLimit             int      `json:"track_limit"`
	MinArtistAlbums        int      `json:"min_artist_albums"`
	ArtistLimit            int      `json:"artist_limit"`
	MinPlaylistAppearances int      `json:"min_playlist_appearances"`
	PlaylistLimit          int      `json:"playlist_limit"`
	Genres                 []string `json:"genres,omitempty"`
}

// AlertThresholds holds every threshold used by the alert queries.
type AlertThresholds struct {
	MinSalesThreshold       int     `json:"min_sales_threshold"`
	AlbumSalesThreshold     int     `json:"album_sales_threshold"`
	TrackLimit              int     `json:"track_limit"`
	AlbumLimit              int     `json:"album_limit"`
	InventoryLimit          int     `json:"inventory_limit"`
	RevenueAnalysisDays     int     `json:"revenue_analysis_days"`
	CriticalDropPct         float64 `json:"critical_drop_pct"`
	WarningDropPct          float64 `json:"warning_drop_pct"`
	ChurnDaysThreshold      int     `json:"churn_days_threshold"`
	ChurnCriticalDays       int     `json:"churn_critical_days"`
	HighValueCustomerMin    float64 `json:"high_value_customer_min"`
	MediumValueCustomerMin  float64 `json:"medium_value_customer_min"`
	LowPerformanceOrders    int     `json:"low_performance_orders"`
	MediumPerformanceOrders int     `json:"medium_performance_orders"`
	FraudWindowDays         int     `json:"fraud_window_days"`
	FraudLimit              int     `json:"fraud_limit"`
	FraudAmount             float64 `json:"fraud_amount"`
	SuspiciousItems         int     `json:"suspicious_items"`
	BulkPurchase            int     `json:"bulk_purchase"`
	HighValueSingleItem     float64 `json:"high_value_single_item"`
}

// DefaultAlertThresholds returns the stock alert thresholds.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		MinSalesThreshold:       3,
		AlbumSalesThreshold:     5,
		TrackLimit:              25,
		AlbumLimit:              20,
		InventoryLimit:          50,
		RevenueAnalysisDays:     30,
		CriticalDropPct:         30,
		WarningDropPct:          15,
		ChurnDaysThreshold:      180,
		ChurnCriticalDays:       365,
		HighValueCustomerMin:    50,
		MediumValueCustomerMin:  25,
		LowPerformanceOrders:    30,
		MediumPerformanceOrders: 50,
		FraudWindowDays:         30,
		FraudLimit:              20,
		FraudAmount:             100,
		SuspiciousItems:         15,
		BulkPurchase:            20,
		HighValueSingleItem:     50,
	}
}
