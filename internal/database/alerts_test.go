// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"testing"

	"github.com/tomtom215/groovify/internal/models"
)

func TestRevenueAnomaliesWindow(t *testing.T) {
	fx := newFixture(t)
	fx.customer(1, "Daily", "Buyer", "Canada")

	daily := []struct {
		day    string
		amount float64
	}{
		// Outside the 30 day window ending on the reference date.
		{"2024-05-01", 1000},
		{"2024-06-21", 100},
		{"2024-06-22", 100},
		{"2024-06-23", 100},
		{"2024-06-24", 100},
		{"2024-06-25", 100},
		{"2024-06-26", 100},
		{"2024-06-27", 80},   // -20% of 100
		{"2024-06-28", 60},   // -37.9% of 96.67
		{"2024-06-29", 76.5}, // exactly -15% of 90
		{"2024-06-30", 100},
	}
	for _, d := range daily {
		fx.invoice(1, mustDate(t, d.day), d.amount)
	}

	asOf := mustDate(t, "2024-06-30")
	f := models.NewFilter(asOf, asOf, asOf)
	anomalies, err := fx.db.GetRevenueAnomalies(context.Background(), f, models.DefaultAlertThresholds())
	checkNoError(t, err)
	checkIntEqual(t, "anomalies", len(anomalies), 2)

	critical := anomalies[0]
	checkStringEqual(t, "newest date", critical.AlertDate.Format(models.DateLayout), "2024-06-28")
	checkStringEqual(t, "severity", critical.Severity, models.SeverityCritical)
	checkStringEqual(t, "message", critical.AlertMessage, "Critical revenue drop detected")
	checkFloatNear(t, "rolling avg", critical.RollingAvg, 96.67)
	if critical.PrevDayRevenue == nil {
		t.Fatal("expected previous day revenue")
	}
	checkFloatNear(t, "previous day", *critical.PrevDayRevenue, 80)

	warning := anomalies[1]
	checkStringEqual(t, "older date", warning.AlertDate.Format(models.DateLayout), "2024-06-27")
	checkStringEqual(t, "severity", warning.Severity, models.SeverityWarning)
	checkStringEqual(t, "message", warning.AlertMessage, "Significant revenue decline")
	checkFloatNear(t, "change", warning.RevenueChangePct, -20)
	checkFloatNear(t, "rolling avg", warning.RollingAvg, 100)
}

func TestRevenueAnomaliesNeedFullTrailingWindow(t *testing.T) {
	fx := newFixture(t)
	fx.customer(1, "Sparse", "Buyer", "Canada")
	fx.invoice(1, mustDate(t, "2024-06-25"), 100)
	fx.invoice(1, mustDate(t, "2024-06-26"), 10)
	fx.invoice(1, mustDate(t, "2024-06-27"), 100)
	fx.invoice(1, mustDate(t, "2024-06-28"), 5)

	asOf := mustDate(t, "2024-06-30")
	anomalies, err := fx.db.GetRevenueAnomalies(context.Background(),
		models.NewFilter(asOf, asOf, asOf), models.DefaultAlertThresholds())
	checkNoError(t, err)
	checkIntEqual(t, "anomalies", len(anomalies), 0)
}

func TestChurnAlertsRiskAndSeverity(t *testing.T) {
	fx := newFixture(t)
	asOf := mustDate(t, "2024-06-30")

	cases := []struct {
		id       int64
		daysAgo  int
		amount   float64
		risk     string
		severity string
	}{
		{1, 395, 60, models.SeverityHigh, models.SeverityCritical},
		{2, 212, 30, models.SeverityMedium, models.SeverityWarning},
		{3, 212, 10, models.SeverityLow, models.SeverityWarning},
		{4, 180, 5, models.SeverityLow, models.SeverityWarning},
		{5, 365, 1, models.SeverityLow, models.SeverityCritical},
	}
	for _, c := range cases {
		fx.customer(c.id, "Inactive", "Customer", "Canada")
		fx.invoice(c.id, asOf.AddDate(0, 0, -c.daysAgo), c.amount)
	}
	fx.customer(6, "Recent", "Customer", "Canada")
	fx.invoice(6, asOf.AddDate(0, 0, -29), 80)
	fx.customer(7, "Almost", "Customer", "Canada")
	fx.invoice(7, asOf.AddDate(0, 0, -179), 80)

	alerts, err := fx.db.GetChurnAlerts(context.Background(),
		models.NewFilter(asOf, asOf, asOf), models.DefaultAlertThresholds())
	checkNoError(t, err)
	checkIntEqual(t, "alerts", len(alerts), len(cases))

	for i, c := range cases {
		a := alerts[i]
		checkIntEqual(t, "order", int(a.CustomerID), int(c.id))
		checkStringEqual(t, "risk", a.RiskLevel, c.risk)
		checkStringEqual(t, "severity", a.Severity, c.severity)
		checkIntEqual(t, "days inactive", a.DaysInactive, c.daysAgo)
	}
	checkStringEqual(t, "high message", alerts[0].AlertMessage, "High-value customer at risk of churning")
}

func TestFraudAlertsPatterns(t *testing.T) {
	fx := newFixture(t)
	asOf := mustDate(t, "2024-06-30")
	fx.customer(1, "Big", "Spender", "Canada")

	// One line of 150: high value single item.
	fx.invoice(1, asOf.AddDate(0, 0, -2), 150)
	// One line of 60 matches a pattern but raises no alert type.
	fx.invoice(1, asOf.AddDate(0, 0, -4), 60)
	// Outside the fraud window.
	fx.invoice(1, asOf.AddDate(0, 0, -45), 500)
	// An ordinary order.
	fx.invoice(1, asOf.AddDate(0, 0, -1), 1.98)

	// 21 lines totalling 120.
	fx.exec(`INSERT INTO invoice (invoice_id, customer_id, invoice_date, total)
		VALUES (900, 1, CAST(? AS TIMESTAMP), 120)`, asOf.AddDate(0, 0, -3))
	for i := 0; i < 21; i++ {
		fx.exec(`INSERT INTO invoice_line (invoice_line_id, invoice_id, track_id, unit_price, quantity)
			VALUES (?, 900, 1, 0.99, 1)`, 900+i)
	}

	alerts, err := fx.db.GetFraudAlerts(context.Background(),
		models.NewFilter(asOf, asOf, asOf), models.DefaultAlertThresholds())
	checkNoError(t, err)
	checkIntEqual(t, "alerts", len(alerts), 2)

	byInvoice := make(map[int64]models.FraudAlert)
	for _, a := range alerts {
		byInvoice[a.InvoiceID] = a
	}

	single, ok := byInvoice[1]
	if !ok {
		t.Fatal("expected the single item invoice to be flagged")
	}
	checkStringEqual(t, "single pattern", single.TransactionPattern, "High Value Single Item")
	checkStringEqual(t, "single severity", single.Severity, models.SeverityHigh)
	checkIntEqual(t, "single items", single.ItemsPurchased, 1)

	bulk, ok := byInvoice[900]
	if !ok {
		t.Fatal("expected the bulk invoice to be flagged")
	}
	checkStringEqual(t, "bulk pattern", bulk.TransactionPattern, "Bulk Purchase")
	checkStringEqual(t, "bulk type", bulk.AlertType, "Fraud")
	checkIntEqual(t, "bulk items", bulk.ItemsPurchased, 21)
}

func TestSystemHealth(t *testing.T) {
	t.Run("seeded data is healthy", func(t *testing.T) {
		db := setupSeededDB(t)
		anchor := mustDate(t, testAnchor)

		health := db.GetSystemHealth(context.Background(), models.NewFilter(anchor, anchor, anchor))
		checkIntEqual(t, "components", len(health), 3)
		for _, h := range health {
			checkStringEqual(t, h.SystemComponent+" status", h.SystemStatus, "Healthy")
		}
		// Healthy components are ordered by ascending score.
		checkStringEqual(t, "first component", health[0].SystemComponent, "Revenue System")
	})

	t.Run("no recent invoices is a warning", func(t *testing.T) {
		db := setupTestDB(t)
		asOf := mustDate(t, "2024-06-30")

		health := db.GetSystemHealth(context.Background(), models.NewFilter(asOf, asOf, asOf))
		checkIntEqual(t, "components", len(health), 3)
		checkStringEqual(t, "worst component", health[0].SystemComponent, "Revenue System")
		checkStringEqual(t, "worst status", health[0].SystemStatus, "Warning")
	})
}

func TestAlertQueriesOnSeededData(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()
	anchor := mustDate(t, testAnchor)
	f := models.NewFilter(anchor, anchor, anchor)
	th := models.DefaultAlertThresholds()

	tracks, err := db.GetLowPerformanceTracks(ctx, th)
	checkNoError(t, err)
	checkIntEqual(t, "low tracks limit", len(tracks), th.TrackLimit)
	for _, tr := range tracks {
		if tr.TotalSales > th.MinSalesThreshold {
			t.Fatalf("track %q has %d sales above the threshold", tr.TrackName, tr.TotalSales)
		}
	}
	// Unsold catalogue tracks come first.
	checkStringEqual(t, "first alert level", tracks[0].AlertLevel, "No Sales")

	albums, err := db.GetLowPerformanceAlbums(ctx, th)
	checkNoError(t, err)
	for _, al := range albums {
		if al.TotalSales > th.AlbumSalesThreshold {
			t.Fatalf("album %q has %d sales above the threshold", al.AlbumTitle, al.TotalSales)
		}
	}

	inventory, err := db.GetInventoryAlerts(ctx, th)
	checkNoError(t, err)
	checkIntEqual(t, "inventory limit", len(inventory), th.InventoryLimit)
	for _, inv := range inventory {
		if inv.PerformanceRating != "Zero Sales" && inv.PerformanceRating != "Low" {
			t.Fatalf("unexpected performance rating %q", inv.PerformanceRating)
		}
		checkFloatNear(t, "potential revenue", inv.PotentialRevenue, inv.UnitPrice*10)
	}

	perf, err := db.GetPerformanceAlerts(ctx, th)
	checkNoError(t, err)
	for _, p := range perf {
		if p.PerformanceLevel == "High Performance" {
			t.Fatal("high performers must not raise alerts")
		}
	}

	fraud, err := db.GetFraudAlerts(ctx, f, th)
	checkNoError(t, err)
	checkIntPositive(t, "fraud alerts", len(fraud))
	seen := make(map[string]bool)
	for _, a := range fraud {
		seen[a.TransactionPattern] = true
		seen[a.AlertType] = true
	}
	for _, want := range []string{"High Value Single Item", "Bulk Purchase", "Fraud", "Suspicious"} {
		if !seen[want] {
			t.Errorf("expected %q among the seeded fraud alerts", want)
		}
	}

	_, err = db.GetRevenueAnomalies(ctx, f, th)
	checkNoError(t, err)
	_, err = db.GetChurnAlerts(ctx, f, th)
	checkNoError(t, err)
}
