// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"net/http"

	"github.com/tomtom215/groovify/internal/models"
)

// FilterQuery is the date filter shared by the analytical pages.
type FilterQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,isodate"`
	EndDate   string `query:"end_date" validate:"omitempty,isodate,notbefore=StartDate"`
	AsOf      string `query:"as_of" validate:"omitempty,isodate"`
}

func readFilter(q *queryReader) FilterQuery {
	return FilterQuery{
		StartDate: q.str("start_date"),
		EndDate:   q.str("end_date"),
		AsOf:      q.str("as_of"),
	}
}

// FinanceQuery holds the Finance page parameters.
type FinanceQuery struct {
	FilterQuery
	Granularity string `query:"granularity" validate:"omitempty,oneof=month quarter year"`
	Top         int    `query:"top" validate:"omitempty,gte=1,lte=100"`
}

// CustomersQuery holds the Customers page parameters.
type CustomersQuery struct {
	FilterQuery
	ActiveMonths int    `query:"active_months" validate:"omitempty,gte=1,lte=120"`
	RiskMonths   int    `query:"risk_months" validate:"omitempty,gte=2,lte=240"`
	Top          int    `query:"top" validate:"omitempty,gte=1,lte=100"`
	Metric       string `query:"metric" validate:"omitempty,oneof=spending listening diversity engagement"`
}

// MusicQuery holds the Music page parameters.
type MusicQuery struct {
	FilterQuery
	MinSales      int    `query:"min_sales" validate:"omitempty,gte=1,lte=10000"`
	MinAlbums     int    `query:"min_albums" validate:"omitempty,gte=1,lte=1000"`
	MinPlaylists  int    `query:"min_playlists" validate:"omitempty,gte=1,lte=1000"`
	TrackLimit    int    `query:"track_limit" validate:"omitempty,gte=1,lte=1000"`
	ArtistLimit   int    `query:"artist_limit" validate:"omitempty,gte=1,lte=1000"`
	PlaylistLimit int    `query:"playlist_limit" validate:"omitempty,gte=1,lte=1000"`
	Genres        string `query:"genres" validate:"omitempty,genrelist"`
}

// EmployeesQuery holds the Employees page parameters.
type EmployeesQuery struct {
	FilterQuery
	Metric string `query:"metric" validate:"omitempty,oneof=revenue volume customers order_value"`
	Top    int    `query:"top" validate:"omitempty,gte=1,lte=50"`
}

// AlertsQuery holds the Alerts page parameters. Unset overrides keep the configured threshold.
type AlertsQuery struct {
	AsOf         string   `query:"as_of" validate:"omitempty,isodate"`
	Days         *int     `query:"days" validate:"omitempty,gte=1,lte=365"`
	MinSales     *int     `query:"min_sales" validate:"omitempty,gte=0,lte=10000"`
	AlbumSales   *int     `query:"album_sales" validate:"omitempty,gte=0,lte=10000"`
	ChurnDays    *int     `query:"churn_days" validate:"omitempty,gte=1,lte=3650"`
	FraudDays    *int     `query:"fraud_days" validate:"omitempty,gte=1,lte=365"`
	FraudAmount  *float64 `query:"fraud_amount" validate:"omitempty,gt=0"`
	CriticalDrop *float64 `query:"critical_drop" validate:"omitempty,gt=0,lte=100"`
	WarningDrop  *float64 `query:"warning_drop" validate:"omitempty,gt=0,lte=100"`
}

// apply overlays the overrides on base.
func (a AlertsQuery) apply(base models.AlertThresholds) models.AlertThresholds {
	if a.Days != nil {
		base.RevenueAnalysisDays = *a.Days
	}
	if a.MinSales != nil {
		base.MinSalesThreshold = *a.MinSales
	}
	if a.AlbumSales != nil {
		base.AlbumSalesThreshold = *a.AlbumSales
	}
	if a.ChurnDays != nil {
		base.ChurnDaysThreshold = *a.ChurnDays
	}
	if a.FraudDays != nil {
		base.FraudWindowDays = *a.FraudDays
	}
	if a.FraudAmount != nil {
		base.FraudAmount = *a.FraudAmount
	}
	if a.CriticalDrop != nil {
		base.CriticalDropPct = *a.CriticalDrop
	}
	if a.WarningDrop != nil {
		base.WarningDropPct = *a.WarningDrop
	}
	return base
}

// SQLQueryRequest is the body of POST /api/v1/sql/query.
type SQLQueryRequest struct {
	Query string `json:"query" validate:"required,max=20000"`
}

// maxQueryBodyBytes bounds the explorer request body.
const maxQueryBodyBytes = 64 << 10

// parseFinanceQuery reads and validates the Finance parameters.
func parseFinanceQuery(r *http.Request) (FinanceQuery, *models.APIError) {
	q := newQueryReader(r)
	req := FinanceQuery{
		FilterQuery: readFilter(q),
		Granularity: q.str("granularity"),
		Top:         q.int("top"),
	}
	return req, checkQuery(q, &req)
}

func parseCustomersQuery(r *http.Request) (CustomersQuery, *models.APIError) {
	q := newQueryReader(r)
	req := CustomersQuery{
		FilterQuery:  readFilter(q),
		ActiveMonths: q.int("active_months"),
		RiskMonths:   q.int("risk_months"),
		Top:          q.int("top"),
		Metric:       q.str("metric"),
	}
	return req, checkQuery(q, &req)
}

func parseMusicQuery(r *http.Request) (MusicQuery, *models.APIError) {
	q := newQueryReader(r)
	req := MusicQuery{
		FilterQuery:   readFilter(q),
		MinSales:      q.int("min_sales"),
		MinAlbums:     q.int("min_albums"),
		MinPlaylists:  q.int("min_playlists"),
		TrackLimit:    q.int("track_limit"),
		ArtistLimit:   q.int("artist_limit"),
		PlaylistLimit: q.int("playlist_limit"),
		Genres:        q.str("genres"),
	}
	return req, checkQuery(q, &req)
}

func parseEmployeesQuery(r *http.Request) (EmployeesQuery, *models.APIError) {
	q := newQueryReader(r)
	req := EmployeesQuery{
		FilterQuery: readFilter(q),
		Metric:      q.str("metric"),
		Top:         q.int("top"),
	}
	return req, checkQuery(q, &req)
}

func parseAlertsQuery(r *http.Request) (AlertsQuery, *models.APIError) {
	q := newQueryReader(r)
	req := AlertsQuery{
		AsOf:         q.str("as_of"),
		Days:         q.intPtr("days"),
		MinSales:     q.intPtr("min_sales"),
		AlbumSales:   q.intPtr("album_sales"),
		ChurnDays:    q.intPtr("churn_days"),
		FraudDays:    q.intPtr("fraud_days"),
		FraudAmount:  q.floatPtr("fraud_amount"),
		CriticalDrop: q.floatPtr("critical_drop"),
		WarningDrop:  q.floatPtr("warning_drop"),
	}
	return req, checkQuery(q, &req)
}

// checkQuery reports parse failures first, then struct validation failures.
func checkQuery(q *queryReader, req interface{}) *models.APIError {
	if apiErr := q.err(); apiErr != nil {
		return apiErr
	}
	return validateRequest(req)
}
