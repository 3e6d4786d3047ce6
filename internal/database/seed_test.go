// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tomtom215/groovify/internal/models"
)

// seedFingerprint summarises a seeded dataset.
func seedFingerprint(t *testing.T, db *DB) string {
	t.Helper()
	res, err := db.RunReadOnly(context.Background(), `
		SELECT
			(SELECT COUNT(*) FROM invoice),
			(SELECT COUNT(*) FROM invoice_line),
			(SELECT SUM(total) FROM invoice),
			(SELECT SUM(track_id * quantity) FROM invoice_line),
			(SELECT COUNT(*) FROM playlist_track)`, 1)
	checkNoError(t, err)
	return fmt.Sprint(res.Rows[0]...)
}

func TestSeedMockDataIsDeterministic(t *testing.T) {
	// Each subtest holds the test database slot until it completes.
	var fingerprints []string
	for _, run := range []string{"first", "second"} {
		t.Run(run, func(t *testing.T) {
			fingerprints = append(fingerprints, seedFingerprint(t, setupSeededDB(t)))
		})
	}
	if len(fingerprints) != 2 {
		t.Fatal("seeding failed")
	}
	checkStringEqual(t, "fingerprint", fingerprints[1], fingerprints[0])
}

func TestSeedMockDataInvariants(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	for _, table := range chinookTables {
		res, err := db.RunReadOnly(ctx, "SELECT COUNT(*) FROM "+quoteIdent(table), 1)
		checkNoError(t, err)
		if fmt.Sprint(res.Rows[0][0]) == "0" {
			t.Errorf("table %s is empty after seeding", table)
		}
	}

	// Every invoice total is the sum of its lines.
	res, err := db.RunReadOnly(ctx, `
		SELECT COUNT(*)
		FROM invoice i
		JOIN (
			SELECT invoice_id, SUM(unit_price * quantity) AS line_total
			FROM invoice_line
			GROUP BY invoice_id
		) l ON l.invoice_id = i.invoice_id
		WHERE ABS(i.total - l.line_total) > 0.001`, 1)
	checkNoError(t, err)
	checkStringEqual(t, "mismatched totals", fmt.Sprint(res.Rows[0][0]), "0")

	// The recent window has one order per day, including the anchor.
	res, err = db.RunReadOnly(ctx, `
		SELECT COUNT(DISTINCT CAST(invoice_date AS DATE))
		FROM invoice
		WHERE invoice_date >= DATE '2024-05-02'`, 1)
	checkNoError(t, err)
	checkStringEqual(t, "distinct recent days", fmt.Sprint(res.Rows[0][0]), "60")

	bounds, err := db.GetDateBounds(ctx)
	checkNoError(t, err)
	checkStringEqual(t, "max date", bounds.MaxDate.Format(models.DateLayout), testAnchor)
}

func TestSeedAnchor(t *testing.T) {
	t.Parallel()

	got := seedAnchor("2023-02-14")
	checkStringEqual(t, "parsed", got.Format(models.DateLayout), "2023-02-14")

	today := models.TruncateDay(time.Now().UTC())
	if got := seedAnchor(""); !got.Equal(today) && !got.Equal(today.AddDate(0, 0, 1)) {
		t.Errorf("empty anchor should be today, got %v", got)
	}
	if got := seedAnchor("14/02/2023"); got.Format(models.DateLayout) == "2023-02-14" {
		t.Error("invalid anchors fall back to today")
	}
}

func TestLowerASCII(t *testing.T) {
	t.Parallel()
	checkStringEqual(t, "ascii", lowerASCII("FrançOIS"), "françois")
	checkStringEqual(t, "cents", fmt.Sprint(centsToAmount(199)), "1.99")
}
