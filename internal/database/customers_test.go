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

func TestRFMSegmentsDecisionTree(t *testing.T) {
	fx := newFixture(t)
	asOf := mustDate(t, "2024-06-30")

	customers := []struct {
		id      int64
		name    string
		daysAgo int
		orders  int
		amount  float64
		want    string
	}{
		{1, "Champion", 10, 5, 10.00, models.ClusterChampions},
		{2, "Loyal", 29, 3, 10.00, models.ClusterLoyal},
		{3, "Potential", 121, 2, 5.00, models.ClusterPotentialLoyalists},
		{4, "Newcomer", 15, 1, 5.00, models.ClusterNew},
		{5, "Slipping", 273, 1, 5.00, models.ClusterAtRisk},
		{6, "Gone", 911, 1, 5.00, models.ClusterLost},
		{7, "Other", 150, 1, 5.00, models.ClusterOthers},
		// Every Champions bound is inclusive.
		{8, "Edge", 90, 5, 8.00, models.ClusterChampions},
		// One day past the recency bound falls through to Potential Loyalists.
		{9, "Late", 91, 5, 8.00, models.ClusterPotentialLoyalists},
		{10, "Boundary", 180, 1, 5.00, models.ClusterOthers},
		{11, "Year", 365, 1, 5.00, models.ClusterAtRisk},
	}
	for _, c := range customers {
		fx.customer(c.id, c.name, "Tester", "Canada")
		fx.invoices(c.id, asOf.AddDate(0, 0, -c.daysAgo), c.orders, c.amount)
	}

	f := models.NewFilter(mustDate(t, "2020-01-01"), asOf, asOf)
	segments, err := fx.db.GetRFMSegments(context.Background(), f)
	checkNoError(t, err)
	checkIntEqual(t, "segments", len(segments), len(customers))

	byID := make(map[int64]models.RFMSegment, len(segments))
	for _, s := range segments {
		byID[s.CustomerID] = s
	}
	for _, c := range customers {
		s, ok := byID[c.id]
		if !ok {
			t.Errorf("customer %d missing from segments", c.id)
			continue
		}
		checkStringEqual(t, c.name+" cluster", s.RFMCluster, c.want)
		checkIntEqual(t, c.name+" recency", s.RecencyDays, c.daysAgo)
		checkIntEqual(t, c.name+" frequency", s.Frequency, c.orders)
		checkFloatNear(t, c.name+" monetary", s.Monetary, float64(c.orders)*c.amount)
		checkIntEqual(t, c.name+" genres", s.NbDifferentGenres, 1)
	}

	for i := 1; i < len(segments); i++ {
		if segments[i].Monetary > segments[i-1].Monetary {
			t.Fatalf("segments not ordered by monetary: %v before %v", segments[i-1].Monetary, segments[i].Monetary)
		}
	}
}

func TestRFMSegmentsRespectDateRange(t *testing.T) {
	fx := newFixture(t)
	asOf := mustDate(t, "2024-06-30")
	fx.customer(1, "Ranged", "Tester", "Canada")
	fx.invoice(1, mustDate(t, "2024-06-01"), 10)
	fx.invoice(1, mustDate(t, "2023-01-01"), 99)

	f := models.NewFilter(mustDate(t, "2024-01-01"), asOf, asOf)
	segments, err := fx.db.GetRFMSegments(context.Background(), f)
	checkNoError(t, err)
	checkIntEqual(t, "segments", len(segments), 1)
	checkIntEqual(t, "frequency", segments[0].Frequency, 1)
	checkFloatNear(t, "monetary", segments[0].Monetary, 10)

	// Inclusive end date: an invoice late on the end day is in range.
	fx.exec(`INSERT INTO invoice (invoice_id, customer_id, invoice_date, total)
		VALUES (100, 1, TIMESTAMP '2024-06-30 23:30:00', 5)`)
	segments, err = fx.db.GetRFMSegments(context.Background(), f)
	checkNoError(t, err)
	checkIntEqual(t, "frequency with end-day invoice", segments[0].Frequency, 2)
	checkIntEqual(t, "recency with end-day invoice", segments[0].RecencyDays, 0)
}

func TestChurnAnalysisBoundaries(t *testing.T) {
	fx := newFixture(t)
	asOf := mustDate(t, "2024-06-30")

	cases := []struct {
		id      int64
		daysAgo int
		amount  float64
		status  string
		tier    string
	}{
		{1, 180, 60, models.ChurnActive, "High"},
		{2, 181, 30, models.ChurnAtRisk, "Medium"},
		{3, 360, 10, models.ChurnAtRisk, "Low"},
		{4, 361, 10, models.ChurnRisk, "Low"},
	}
	for _, c := range cases {
		fx.customer(c.id, "Customer", "Tester", "Canada")
		fx.invoice(c.id, asOf.AddDate(0, 0, -c.daysAgo), c.amount)
	}
	fx.customer(5, "Never", "Bought", "Canada")

	f := models.NewFilter(mustDate(t, "2020-01-01"), asOf, asOf)
	rows, err := fx.db.GetChurnAnalysis(context.Background(), f, models.ChurnParams{ActiveMonths: 6, RiskMonths: 12})
	checkNoError(t, err)
	checkIntEqual(t, "rows", len(rows), 5)

	byID := make(map[int64]models.ChurnRow, len(rows))
	for _, r := range rows {
		byID[r.CustomerID] = r
	}
	for _, c := range cases {
		r := byID[c.id]
		checkStringEqual(t, "status", r.ChurnStatus, c.status)
		checkStringEqual(t, "tier", r.ValueTier, c.tier)
		if r.DaysSinceLastPurchase == nil || *r.DaysSinceLastPurchase != c.daysAgo {
			t.Errorf("customer %d: expected %d days since last purchase, got %v", c.id, c.daysAgo, r.DaysSinceLastPurchase)
		}
	}

	never := byID[5]
	checkStringEqual(t, "never status", never.ChurnStatus, models.ChurnNeverPurchased)
	checkStringEqual(t, "never tier", never.ValueTier, "Zero")
	if never.DaysSinceLastPurchase != nil || never.LastPurchaseDate != nil {
		t.Error("customer without purchases should have nil dates")
	}
	checkIntEqual(t, "never orders", never.TotalOrders, 0)

	// NULL values sort last.
	checkIntEqual(t, "last row", int(rows[len(rows)-1].CustomerID), 5)
}

func TestChurnAnalysisRejectsInvalidWindows(t *testing.T) {
	db := setupTestDB(t)
	f := models.NewFilter(mustDate(t, "2024-01-01"), mustDate(t, "2024-06-30"), mustDate(t, "2024-06-30"))

	for _, p := range []models.ChurnParams{
		{ActiveMonths: 6, RiskMonths: 6},
		{ActiveMonths: 6, RiskMonths: 3},
		{ActiveMonths: 0, RiskMonths: 3},
	} {
		_, err := db.GetChurnAnalysis(context.Background(), f, p)
		checkErrorIs(t, err, models.ErrInvalidFilter)
	}
}

func TestCohortRetentionPeriodNumbers(t *testing.T) {
	fx := newFixture(t)
	fx.customer(1, "Cohort", "Tester", "Canada")
	fx.invoice(1, mustDate(t, "2023-11-15"), 5)
	fx.invoice(1, mustDate(t, "2024-01-03"), 5)
	fx.invoice(1, mustDate(t, "2024-02-20"), 5)

	asOf := mustDate(t, "2024-06-30")
	cells, err := fx.db.GetCohortRetention(context.Background(),
		models.NewFilter(mustDate(t, "2020-01-01"), asOf, asOf))
	checkNoError(t, err)
	checkIntEqual(t, "cells", len(cells), 3)

	// The year boundary does not reset the month offset.
	for i, want := range []int{0, 2, 3} {
		checkIntEqual(t, "period number", cells[i].PeriodNumber, want)
		checkIntEqual(t, "cohort size", cells[i].CohortSize, 1)
	}
}

func TestCustomerQueriesOnSeededData(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()
	f := seededFilter(t)

	journeys, err := db.GetCustomerJourneys(ctx, f)
	checkNoError(t, err)
	checkIntEqual(t, "journeys", len(journeys), 59)
	for _, j := range journeys {
		if j.LastPurchase.Before(j.FirstPurchase) {
			t.Fatalf("customer %d: last purchase before first", j.CustomerID)
		}
		if j.TotalOrders < 1 {
			t.Fatalf("customer %d: no orders", j.CustomerID)
		}
	}

	locations, err := db.GetCustomerLocations(ctx, f)
	checkNoError(t, err)
	checkIntPositive(t, "locations", len(locations))

	prefs, err := db.GetCustomerPreferences(ctx, f)
	checkNoError(t, err)
	checkIntEqual(t, "preferences", len(prefs), 59)
	for _, p := range prefs {
		if p.TracksInPreferredGenre > p.TotalTracks {
			t.Fatalf("customer %d: preferred genre tracks exceed total", p.CustomerID)
		}
		if p.GenrePreferencePct <= 0 || p.GenrePreferencePct > 100 {
			t.Fatalf("customer %d: genre preference %.2f out of range", p.CustomerID, p.GenrePreferencePct)
		}
	}

	clients, err := db.GetTopClients(ctx, f)
	checkNoError(t, err)
	checkIntEqual(t, "top clients", len(clients), 59)
	for i := 1; i < len(clients); i++ {
		if clients[i].TotalSpending > clients[i-1].TotalSpending {
			t.Fatal("top clients not ordered by spending")
		}
	}
}
