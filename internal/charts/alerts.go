// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package charts

import "github.com/tomtom215/groovify/internal/models"

// AlertOverview draws alert counts per category, one series per severity.
func AlertOverview(summary models.AlertSummary) Spec {
	return Build(KindBar, "Alerts by Category", summary.Counts, Mapping[models.AlertCount]{
		X:     func(c models.AlertCount) any { return c.Category },
		Y:     func(c models.AlertCount) float64 { return float64(c.Count) },
		Group: func(c models.AlertCount) string { return c.Severity },
	}, Axes{X: "Category", Y: "Alerts"})
}

// LowTracks draws the sales count of low performance tracks, one series per alert level.
func LowTracks(rows []models.LowPerformanceTrack) Spec {
	return Build(KindHorizontalBar, "Low Performance Tracks", rows, Mapping[models.LowPerformanceTrack]{
		X:     func(r models.LowPerformanceTrack) any { return r.TrackName },
		Y:     func(r models.LowPerformanceTrack) float64 { return float64(r.TotalSales) },
		Group: func(r models.LowPerformanceTrack) string { return r.AlertLevel },
	}, Axes{X: "Track", Y: "Sales", Hover: []string{"artist_name", "genre"}})
}

// LowAlbums draws the sales count of low performance albums.
func LowAlbums(rows []models.LowPerformanceAlbum) Spec {
	return Build(KindHorizontalBar, "Low Performance Albums", rows, Mapping[models.LowPerformanceAlbum]{
		X:     func(r models.LowPerformanceAlbum) any { return r.AlbumTitle },
		Y:     func(r models.LowPerformanceAlbum) float64 { return float64(r.TotalSales) },
		Group: func(r models.LowPerformanceAlbum) string { return r.AlertLevel },
	}, Axes{X: "Album", Y: "Sales"})
}

// RevenueAnomalies plots the revenue change of each anomalous day, one series per severity.
func RevenueAnomalies(rows []models.RevenueAnomaly) Spec {
	return Build(KindScatter, "Revenue Anomalies", rows, Mapping[models.RevenueAnomaly]{
		X:     func(r models.RevenueAnomaly) any { return r.AlertDate.Format(models.DateLayout) },
		Y:     func(r models.RevenueAnomaly) float64 { return r.RevenueChangePct },
		Size:  func(r models.RevenueAnomaly) float64 { return r.RollingAvg },
		Group: func(r models.RevenueAnomaly) string { return r.Severity },
	}, Axes{X: "Date", Y: "Change vs Trailing Average (%)", Hover: []string{"daily_revenue", "rolling_avg"}})
}

// ChurnRisk plots inactivity against customer value, one series per risk level.
func ChurnRisk(rows []models.ChurnAlert) Spec {
	return Build(KindScatter, "Customer Churn Risk", rows, Mapping[models.ChurnAlert]{
		X:     func(r models.ChurnAlert) any { return r.DaysInactive },
		Y:     func(r models.ChurnAlert) float64 { return r.CustomerValue },
		Label: func(r models.ChurnAlert) string { return r.CustomerName },
		Group: func(r models.ChurnAlert) string { return r.RiskLevel },
	}, Axes{X: "Days Inactive", Y: "Customer Value ($)"})
}

// InventoryRatings draws the number of inventory alerts per performance rating.
func InventoryRatings(rows []models.InventoryAlert) Spec {
	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		if counts[r.PerformanceRating] == 0 {
			order = append(order, r.PerformanceRating)
		}
		counts[r.PerformanceRating]++
	}
	return Pie("Inventory Performance", order,
		func(label string) string { return label },
		func(label string) float64 { return float64(counts[label]) },
		Axes{})
}

// EmployeeAlerts draws the order count of flagged representatives.
func EmployeeAlerts(rows []models.PerformanceAlert) Spec {
	return Build(KindBar, "Employee Performance Alerts", rows, Mapping[models.PerformanceAlert]{
		X:     func(r models.PerformanceAlert) any { return r.EmployeeName },
		Y:     func(r models.PerformanceAlert) float64 { return float64(r.OrderCount) },
		Group: func(r models.PerformanceAlert) string { return r.PerformanceLevel },
	}, Axes{X: "Employee", Y: "Orders"})
}

// FraudPatterns plots amount against item count of flagged invoices, one series per severity.
func FraudPatterns(rows []models.FraudAlert) Spec {
	return Build(KindScatter, "Fraud Detection", rows, Mapping[models.FraudAlert]{
		X:     func(r models.FraudAlert) any { return r.ItemsPurchased },
		Y:     func(r models.FraudAlert) float64 { return r.TransactionAmount },
		Label: func(r models.FraudAlert) string { return r.TransactionPattern },
		Group: func(r models.FraudAlert) string { return r.Severity },
	}, Axes{X: "Items", Y: "Amount ($)", Hover: []string{"customer_name", "alert_type"}})
}

// SystemHealth draws the performance score of each component.
func SystemHealth(rows []models.SystemHealth) Spec {
	return Build(KindBar, "System Health", rows, Mapping[models.SystemHealth]{
		X:     func(r models.SystemHealth) any { return r.SystemComponent },
		Y:     func(r models.SystemHealth) float64 { return r.PerformanceScore },
		Color: func(r models.SystemHealth) any { return r.SystemStatus },
	}, Axes{X: "Component", Y: "Score", ColorScale: ScaleRdYlGn})
}
