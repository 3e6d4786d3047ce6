// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package shaping

import "github.com/tomtom215/groovify/internal/models"

// Alert categories in display order.
const (
	AlertCategoryTracks      = "Low Performance Tracks"
	AlertCategoryAlbums      = "Low Performance Albums"
	AlertCategoryRevenue     = "Revenue Anomalies"
	AlertCategoryChurn       = "Customer Churn"
	AlertCategoryInventory   = "Inventory"
	AlertCategoryPerformance = "Employee Performance"
	AlertCategoryFraud       = "Fraud Detection"
)

var severityOrder = []string{
	models.SeverityCritical,
	models.SeverityHigh,
	models.SeverityWarning,
	models.SeverityMedium,
	models.SeverityLow,
	"No Sales",
	"Low Sales",
	"Below Average",
	models.SeverityNormal,
}

// AlertSet holds the rows of the alert sections that loaded. A nil slice is a section that
// failed or was skipped and contributes nothing.
type AlertSet struct {
	Tracks      []models.LowPerformanceTrack
	Albums      []models.LowPerformanceAlbum
	Anomalies   []models.RevenueAnomaly
	Churn       []models.ChurnAlert
	Inventory   []models.InventoryAlert
	Performance []models.PerformanceAlert
	Fraud       []models.FraudAlert
}

// SummarizeAlerts counts alerts per category and severity. Tracks and albums are counted by
// their alert level. CriticalCount is the number of alerts whose severity is Critical.
func SummarizeAlerts(set AlertSet) models.AlertSummary {
	summary := models.AlertSummary{Counts: []models.AlertCount{}}

	add := func(category string, severities []string) {
		if len(severities) == 0 {
			return
		}
		counts := make(map[string]int)
		for _, s := range severities {
			counts[s]++
			if s == models.SeverityCritical {
				summary.CriticalCount++
			}
		}
		for _, lc := range orderedCounts(counts, severityOrder) {
			summary.Counts = append(summary.Counts, models.AlertCount{
				Category: category,
				Severity: lc.Label,
				Count:    lc.Count,
			})
		}
		summary.TotalAlerts += len(severities)
	}

	add(AlertCategoryTracks, pluck(set.Tracks, func(a models.LowPerformanceTrack) string { return a.AlertLevel }))
	add(AlertCategoryAlbums, pluck(set.Albums, func(a models.LowPerformanceAlbum) string { return a.AlertLevel }))
	add(AlertCategoryRevenue, pluck(set.Anomalies, func(a models.RevenueAnomaly) string { return a.Severity }))
	add(AlertCategoryChurn, pluck(set.Churn, func(a models.ChurnAlert) string { return a.Severity }))
	add(AlertCategoryInventory, pluck(set.Inventory, func(a models.InventoryAlert) string { return a.Severity }))
	add(AlertCategoryPerformance, pluck(set.Performance, func(a models.PerformanceAlert) string { return a.Severity }))
	add(AlertCategoryFraud, pluck(set.Fraud, func(a models.FraudAlert) string { return a.Severity }))
	return summary
}

func pluck[T any](rows []T, field func(T) string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = field(r)
	}
	return out
}
