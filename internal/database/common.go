// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/groovify/internal/models"
)

// GetDateBounds returns the first and last invoice dates. Both are nil on an empty database.
func (db *DB) GetDateBounds(ctx context.Context) (*models.DateBounds, error) {
	query := `
		SELECT CAST(MIN(invoice_date) AS DATE) AS min_d,
		       CAST(MAX(invoice_date) AS DATE) AS max_d
		FROM invoice`

	var minD, maxD sql.NullTime
	if err := db.queryRow(ctx, "date bounds", query, nil, &minD, &maxD); err != nil {
		return nil, err
	}

	bounds := &models.DateBounds{}
	if minD.Valid {
		t := models.TruncateDay(minD.Time)
		bounds.MinDate = &t
	}
	if maxD.Valid {
		t := models.TruncateDay(maxD.Time)
		bounds.MaxDate = &t
	}
	return bounds, nil
}

// CountTables returns the number of base tables in the active schema.
func (db *DB) CountTables(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type = 'BASE TABLE'`

	var count int
	if err := db.queryRow(ctx, "table count", query, []any{db.dialect.schema}, num(&count)); err != nil {
		return 0, err
	}
	return count, nil
}

// GetDatabaseInfo describes the engine, schema and invoice date range.
func (db *DB) GetDatabaseInfo(ctx context.Context) (*models.DatabaseInfo, error) {
	count, err := db.CountTables(ctx)
	if err != nil {
		return nil, err
	}
	bounds, err := db.GetDateBounds(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DatabaseInfo{
		Engine:     db.dialect.name,
		Schema:     db.dialect.schema,
		TableCount: count,
		Bounds:     *bounds,
	}, nil
}
