// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package models

import "time"

// Severity labels shared by the alert categories.
const (
	SeverityCritical = "Critical"
	SeverityWarning  = "Warning"
	SeverityNormal   = "Normal"
	SeverityGood     = "Good"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// LowPerformanceTrack is a track whose all-time sales count is at or below the threshold.
type LowPerformanceTrack struct {
	TrackName       string  `json:"track_name"`
	ArtistName      string  `json:"artist_name"`
	AlbumTitle      string  `json:"album_title"`
	Genre           string  `json:"genre"`
	TotalSales      int     `json:"total_sales"`
	AvgPrice        float64 `json:"avg_price"`
	DurationMinutes float64 `json:"duration_minutes"`
	AlertLevel      string  `json:"alert_level"`
}

// LowPerformanceAlbum is an album whose all-time sales count is at or below the threshold.
type LowPerformanceAlbum struct {
	AlbumTitle   string  `json:"album_title"`
	ArtistName   string  `json:"artist_name"`
	TrackCount   int     `json:"track_count"`
	TotalSales   int     `json:"total_sales"`
	AlbumRevenue float64 `json:"album_revenue"`
	AlertLevel   string  `json:"alert_level"`
}

// RevenueAnomaly is a day whose revenue fell below its trailing average by more than the
// warning threshold.
type RevenueAnomaly struct {
	AlertDate        time.Time `json:"alert_date"`
	DailyRevenue     float64   `json:"daily_revenue"`
	RollingAvg       float64   `json:"rolling_avg"`
	PrevDayRevenue   *float64  `json:"prev_day_revenue"`
	RevenueChangePct float64   `json:"revenue_change_pct"`
	Severity         string    `json:"severity"`
	AlertMessage     string    `json:"alert_message"`
}

// ChurnAlert is an inactive customer with a risk level.
type ChurnAlert struct {
	CustomerID    int64     `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	LastPurchase  time.Time `json:"last_purchase"`
	TotalOrders   int       `json:"total_orders"`
	CustomerValue float64   `json:"customer_value"`
	DaysInactive  int       `json:"days_inactive"`
	RiskLevel     string    `json:"risk_level"`
	Severity      string    `json:"severity"`
	AlertMessage  string    `json:"alert_message"`
}

// InventoryAlert is a catalogue track with zero or low sales.
type InventoryAlert struct {
	TrackID           int64   `json:"track_id"`
	TrackName         string  `json:"track_name"`
	ArtistName        string  `json:"artist_name"`
	Genre             string  `json:"genre"`
	SalesCount        int     `json:"sales_count"`
	TotalRevenue      float64 `json:"total_revenue"`
	UnitPrice         float64 `json:"unit_price"`
	PerformanceRating string  `json:"performance_rating"`
	Severity          string  `json:"severity"`
	PotentialRevenue  float64 `json:"potential_revenue"`
	AlertMessage      string  `json:"alert_message"`
}

// PerformanceAlert is a support representative below the high performance order count.
type PerformanceAlert struct {
	EmployeeID       int64   `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	CustomerCount    int     `json:"customer_count"`
	OrderCount       int     `json:"order_count"`
	TotalSales       float64 `json:"total_sales"`
	PerformanceLevel string  `json:"performance_level"`
	MetricType       string  `json:"metric_type"`
	AlertMessage     string  `json:"alert_message"`
	Severity         string  `json:"severity"`
}

// FraudAlert is a recent invoice flagged by amount or item count.
type FraudAlert struct {
	InvoiceID          int64     `json:"invoice_id"`
	CustomerID         int64     `json:"customer_id"`
	CustomerName       string    `json:"customer_name"`
	InvoiceDate        time.Time `json:"invoice_date"`
	TransactionAmount  float64   `json:"transaction_amount"`
	ItemsPurchased     int       `json:"items_purchased"`
	TransactionPattern string    `json:"transaction_pattern"`
	AlertType          string    `json:"alert_type"`
	Severity           string    `json:"severity"`
	Description        string    `json:"description"`
}

// SystemHealth is the status of one monitored component.
type SystemHealth struct {
	SystemComponent  string  `json:"system_component"`
	SystemStatus     string  `json:"system_status"`
	PerformanceScore float64 `json:"performance_score"`
	StatusMessage    string  `json:"status_message"`
}

// AlertCount is the number of alerts of one category at one severity.
type AlertCount struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Count    int    `json:"count"`
}

// AlertSummary totals the alert sections of one page render.
type AlertSummary struct {
	TotalAlerts   int          `json:"total_alerts"`
	CriticalCount int          `json:"critical_count"`
	Counts        []AlertCount `json:"counts"`
}
