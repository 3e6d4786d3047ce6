// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/groovify/internal/metrics"
	"github.com/tomtom215/groovify/internal/models"
)

// dateRangeClause filters invoices (alias i) on the inclusive calendar-day range of a Filter.
const dateRangeClause = "CAST(i.invoice_date AS DATE) BETWEEN CAST(? AS DATE) AND CAST(? AS DATE)"

// scanFunc scans a single row into a result type
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan executes a query under the breaker and scans all rows with scan.
// The query id names the query in metrics and wrapped errors.
func queryAndScan[T any](ctx context.Context, db *DB, queryID, query string, args []any, scan scanFunc[T]) ([]T, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var results []T
	err := db.breaker.execute(func() error {
		rows, err := db.conn.QueryContext(ctx, db.dialect.rebind(query), args...)
		if err != nil {
			return err
		}
		defer closeWithLog(rows, "rows")

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return fmt.Errorf("scan row: %w", err)
			}
			results = append(results, item)
		}
		return rows.Err()
	})
	metrics.RecordDBQuery(queryID, db.dialect.name, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", queryID, err)
	}

	return results, nil
}

// queryRow executes a query expecting at most one row. sql.ErrNoRows leaves dest untouched.
func (db *DB) queryRow(ctx context.Context, queryID, query string, args []any, dest ...any) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err := db.breaker.execute(func() error {
		err := db.conn.QueryRowContext(ctx, db.dialect.rebind(query), args...).Scan(dest...)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	})
	metrics.RecordDBQuery(queryID, db.dialect.name, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s: %w", queryID, err)
	}
	return nil
}

// rangeArgs returns the start and end parameters of the date range clause.
func rangeArgs(f models.Filter) []any {
	return []any{f.Start(), f.End()}
}

// inPlaceholders returns "?, ?, ?" for n values.
func inPlaceholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// stringArgs converts values to query arguments.
func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// limitClause renders a LIMIT clause; a non-positive limit renders nothing.
func limitClause(limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf("LIMIT %d", limit)
}
