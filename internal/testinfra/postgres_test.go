// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

//go:build integration

package testinfra

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/database"
	"github.com/tomtom215/groovify/internal/models"
)

const parityAnchor = "2024-06-30"

func openSeeded(t *testing.T, cfg config.DatabaseConfig) *database.DB {
	t.Helper()
	cfg.SeedMockData = true
	cfg.SeedAnchor = parityAnchor
	db, err := database.New(&cfg)
	if err != nil {
		t.Fatalf("open %s: %v", cfg.Driver, err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close %s: %v", cfg.Driver, err)
		}
	})
	return db
}

// TestPostgresMatchesDuckDB seeds the same dataset into both engines and compares the
// results of the portable query library.
func TestPostgresMatchesDuckDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pg, err := NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("Failed to create Postgres container: %v", err)
	}
	defer CleanupContainer(t, ctx, pg.Container)

	pgDB := openSeeded(t, pg.DatabaseConfig())
	duck := openSeeded(t, config.DatabaseConfig{Driver: config.DriverDuckDB, Path: ":memory:", MaxMemory: "1GB"})

	if pgDB.Engine() != config.DriverPostgres || pgDB.Schema() != "public" {
		t.Fatalf("unexpected engine %s / schema %s", pgDB.Engine(), pgDB.Schema())
	}

	anchor, _ := time.Parse(models.DateLayout, parityAnchor)
	f := models.NewFilter(anchor.AddDate(-3, 0, 0), anchor, anchor)

	t.Run("finance kpis", func(t *testing.T) {
		want, err := duck.GetFinanceKPIs(ctx, f)
		if err != nil {
			t.Fatalf("duckdb: %v", err)
		}
		got, err := pgDB.GetFinanceKPIs(ctx, f)
		if err != nil {
			t.Fatalf("postgres: %v", err)
		}
		if got.TotalInvoices != want.TotalInvoices {
			t.Errorf("invoices: postgres %d, duckdb %d", got.TotalInvoices, want.TotalInvoices)
		}
		if math.Abs(got.TotalRevenue-want.TotalRevenue) > 0.01 {
			t.Errorf("revenue: postgres %.2f, duckdb %.2f", got.TotalRevenue, want.TotalRevenue)
		}
		if got.UniqueCustomers != want.UniqueCustomers {
			t.Errorf("customers: postgres %d, duckdb %d", got.UniqueCustomers, want.UniqueCustomers)
		}
	})

	t.Run("explorer metadata", func(t *testing.T) {
		tables, err := pgDB.ListTables(ctx)
		if err != nil {
			t.Fatalf("list tables: %v", err)
		}
		want, _ := duck.ListTables(ctx)
		if len(tables) != len(want) {
			t.Errorf("tables: postgres %v, duckdb %v", tables, want)
		}

		rels, err := pgDB.GetRelationships(ctx)
		if err != nil {
			t.Fatalf("relationships: %v", err)
		}
		if len(rels) == 0 {
			t.Error("expected foreign keys on postgres")
		}
	})

	t.Run("read-only explorer", func(t *testing.T) {
		res, err := pgDB.RunReadOnly(ctx, "SELECT COUNT(*) AS n FROM artist", 10)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if res.RowCount != 1 {
			t.Errorf("rows = %d", res.RowCount)
		}

		_, err = pgDB.RunReadOnly(ctx, "DELETE FROM artist", 10)
		if !errors.Is(err, database.ErrReadOnlyViolation) {
			t.Errorf("expected a read-only violation, got %v", err)
		}
	})

	t.Run("churn", func(t *testing.T) {
		params := models.ChurnParams{ActiveMonths: 6, RiskMonths: 12}
		want, err := duck.GetChurnAnalysis(ctx, f, params)
		if err != nil {
			t.Fatalf("duckdb: %v", err)
		}
		got, err := pgDB.GetChurnAnalysis(ctx, f, params)
		if err != nil {
			t.Fatalf("postgres: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("rows: postgres %d, duckdb %d", len(got), len(want))
		}
		counts := func(rows []models.ChurnRow) map[string]int {
			m := make(map[string]int)
			for _, r := range rows {
				m[r.ChurnStatus]++
			}
			return m
		}
		gc, wc := counts(got), counts(want)
		for status, n := range wc {
			if gc[status] != n {
				t.Errorf("%s: postgres %d, duckdb %d", status, gc[status], n)
			}
		}
	})
}
