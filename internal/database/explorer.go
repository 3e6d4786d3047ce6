// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tomtom215/groovify/internal/logging"
	"github.com/tomtom215/groovify/internal/metrics"
	"github.com/tomtom215/groovify/internal/models"
)

// readStatements are the statement keywords accepted by the free-form explorer.
var readStatements = map[string]bool{
	"SELECT":   true,
	"WITH":     true,
	"SHOW":     true,
	"DESCRIBE": true,
	"EXPLAIN":  true,
	"VALUES":   true,
	"TABLE":    true,
}

// writeKeywords matches statements that change data, schema or session state, and the
// DuckDB statements that reach outside the database.
var writeKeywords = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|MERGE|CREATE|DROP|ALTER|TRUNCATE|COPY|` +
	`ATTACH|DETACH|INSTALL|LOAD|PRAGMA|SET|CALL|EXPORT|IMPORT|GRANT|REVOKE|VACUUM|CHECKPOINT)\b`)

// ValidateReadOnly checks that query is a single read statement. It returns the statement
// without its trailing semicolon, or an error wrapping ErrReadOnlyViolation.
func ValidateReadOnly(query string) (string, error) {
	stmts := splitStatements(query)
	switch len(stmts) {
	case 0:
		return "", fmt.Errorf("%w: query is empty", ErrReadOnlyViolation)
	case 1:
	default:
		return "", fmt.Errorf("%w: found %d statements", ErrReadOnlyViolation, len(stmts))
	}
	stmt := stmts[0]

	keyword := firstKeyword(stmt)
	if keyword == "" {
		return "", fmt.Errorf("%w: query is empty", ErrReadOnlyViolation)
	}
	if !readStatements[keyword] {
		return "", fmt.Errorf("%w: %s statements are not allowed", ErrReadOnlyViolation, keyword)
	}
	if m := writeKeywords.FindString(maskSQL(stmt)); m != "" {
		return "", fmt.Errorf("%w: %s is not allowed", ErrReadOnlyViolation, strings.ToUpper(m))
	}
	return stmt, nil
}

// RunReadOnly executes a free-form read query and returns at most limit rows. Truncated is
// set when more rows were available. Postgres runs the query in a READ ONLY transaction.
func (db *DB) RunReadOnly(ctx context.Context, query string, limit int) (*models.QueryResult, error) {
	stmt, err := ValidateReadOnly(query)
	if err != nil {
		metrics.RecordExplorerQuery("rejected")
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var result *models.QueryResult
	err = db.breaker.execute(func() error {
		var rows *sql.Rows
		var err error
		if db.dialect.readOnlyTx {
			tx, txErr := db.conn.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
			if txErr != nil {
				return txErr
			}
			defer func() { _ = tx.Rollback() }()
			rows, err = tx.QueryContext(ctx, stmt)
			if err != nil {
				return err
			}
		} else {
			rows, err = db.conn.QueryContext(ctx, stmt)
			if err != nil {
				return err
			}
		}
		defer closeWithLog(rows, "rows")

		result, err = collectRows(rows, limit)
		return err
	})
	metrics.RecordDBQuery("explorer", db.dialect.name, time.Since(start), err)
	if err != nil {
		metrics.RecordExplorerQuery("error")
		return nil, fmt.Errorf("explorer query: %w", err)
	}

	result.DurationMS = time.Since(start).Milliseconds()
	metrics.RecordExplorerQuery("ok")
	logging.Debug().
		Int("rows", result.RowCount).
		Bool("truncated", result.Truncated).
		Int64("duration_ms", result.DurationMS).
		Msg("Explorer query executed")
	return result, nil
}

// collectRows reads up to limit rows into a generic table. limit <= 0 means no limit.
func collectRows(rows *sql.Rows, limit int) (*models.QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	result := &models.QueryResult{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		if limit > 0 && len(result.Rows) == limit {
			result.Truncated = true
			break
		}
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	result.RowCount = len(result.Rows)
	return result, nil
}

// ListTables returns the base tables of the active schema in name order.
func (db *DB) ListTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	return queryAndScan(ctx, db, "list tables", query, []any{db.dialect.schema},
		func(rows *sql.Rows) (string, error) {
			var name string
			err := rows.Scan(str(&name))
			return name, err
		})
}

// GetTableStats returns row count, column count and storage size per table, in table name
// order. A table whose counts cannot be read reports zeros; a table whose size cannot be
// read reports models.SizeUnavailable. TableSize is otherwise left for display formatting.
func (db *DB) GetTableStats(ctx context.Context) ([]models.TableStats, error) {
	tables, err := db.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]models.TableStats, 0, len(tables))
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats = append(stats, db.tableStats(ctx, table))
	}
	return stats, nil
}

func (db *DB) tableStats(ctx context.Context, table string) models.TableStats {
	s := models.TableStats{TableName: table}
	qualified := quoteIdent(db.dialect.schema) + "." + quoteIdent(table)

	countQuery := "SELECT COUNT(*) FROM " + qualified
	columnQuery := `
		SELECT COUNT(*)
		FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ?`

	if err := db.queryRow(ctx, "table row count", countQuery, nil, num(&s.RowCount)); err != nil {
		logging.Debug().Err(err).Str("table", table).Msg("Row count unavailable")
		return models.TableStats{TableName: table, TableSize: models.SizeUnavailable}
	}
	if err := db.queryRow(ctx, "table column count", columnQuery, []any{db.dialect.schema, table}, num(&s.ColumnCount)); err != nil {
		logging.Debug().Err(err).Str("table", table).Msg("Column count unavailable")
		return models.TableStats{TableName: table, TableSize: models.SizeUnavailable}
	}

	var sizeQuery string
	var sizeArgs []any
	if db.dialect.name == duckdbDialect.name {
		sizeQuery = `
			SELECT COUNT(DISTINCT block_id) * (SELECT MAX(block_size) FROM pragma_database_size())
			FROM pragma_storage_info(` + quoteLiteral(table) + `)
			WHERE block_id >= 0`
	} else {
		sizeQuery = "SELECT pg_total_relation_size(CAST(? AS regclass))"
		sizeArgs = []any{qualified}
	}
	if err := db.queryRow(ctx, "table size", sizeQuery, sizeArgs, num(&s.SizeBytes)); err != nil {
		logging.Debug().Err(err).Str("table", table).Msg("Table size unavailable")
		s.SizeBytes = 0
		s.TableSize = models.SizeUnavailable
	}
	return s
}

// GetSchemaColumns lists the columns of every base table in the active schema.
func (db *DB) GetSchemaColumns(ctx context.Context) ([]models.SchemaColumn, error) {
	query := `
		SELECT c.table_name, c.column_name, c.data_type, c.is_nullable, c.column_default
		FROM information_schema.columns c
		JOIN information_schema.tables t
			ON t.table_schema = c.table_schema AND t.table_name = c.table_name
		WHERE c.table_schema = ? AND t.table_type = 'BASE TABLE'
		ORDER BY c.table_name, c.ordinal_position`

	return queryAndScan(ctx, db, "schema columns", query, []any{db.dialect.schema},
		func(rows *sql.Rows) (models.SchemaColumn, error) {
			var c models.SchemaColumn
			var def sql.NullString
			err := rows.Scan(str(&c.TableName), str(&c.ColumnName), str(&c.DataType), str(&c.IsNullable), &def)
			if def.Valid {
				c.ColumnDefault = &def.String
			}
			return c, err
		})
}

// GetRelationships lists the foreign key column pairs of the active schema.
func (db *DB) GetRelationships(ctx context.Context) ([]models.Relationship, error) {
	var query string
	if db.dialect.name == duckdbDialect.name {
		query = `
			SELECT source_table, source_column, target_table, target_column, constraint_name
			FROM (
				SELECT
					table_name AS source_table,
					UNNEST(constraint_column_names) AS source_column,
					referenced_table AS target_table,
					UNNEST(referenced_column_names) AS target_column,
					constraint_name
				FROM duckdb_constraints()
				WHERE constraint_type = 'FOREIGN KEY' AND schema_name = ?
			) fk
			ORDER BY source_table, constraint_name, source_column`
	} else {
		query = `
			SELECT
				tc.table_name AS source_table,
				kcu.column_name AS source_column,
				ccu.table_name AS target_table,
				ccu.column_name AS target_column,
				tc.constraint_name
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage kcu
				ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
			JOIN information_schema.constraint_column_usage ccu
				ON ccu.constraint_name = tc.constraint_name AND ccu.table_schema = tc.table_schema
			WHERE tc.constraint_type = 'FOREIGN KEY' AND tc.table_schema = ?
			ORDER BY tc.table_name, tc.constraint_name, kcu.column_name`
	}

	return queryAndScan(ctx, db, "relationships", query, []any{db.dialect.schema},
		func(rows *sql.Rows) (models.Relationship, error) {
			var r models.Relationship
			err := rows.Scan(str(&r.SourceTable), str(&r.SourceColumn), str(&r.TargetTable),
				str(&r.TargetColumn), str(&r.ConstraintName))
			return r, err
		})
}
