// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

/*
schema.go - Chinook Schema Management (DuckDB)

The embedded engine owns its copy of the Chinook sample database. On startup:

  - The eleven Chinook tables are created when missing, using the snake_case
    names of the PostgreSQL distribution (artist, album, track, invoice_line, ...).
  - When CHINOOK_SCRIPT points at a Chinook SQL script and the invoice table is
    empty, the script's INSERT statements are replayed into those tables. Other
    statements (CREATE DATABASE, \c, DDL, constraints) are skipped because the
    schema above already defines them.
  - Otherwise, when SEED_MOCK_DATA is set and the database is empty, a
    deterministic synthetic catalogue and sales history is generated (seed.go).

Postgres deployments are never modified.

Index Strategy:
Indexes cover the join keys of every analytics query and the invoice date used
by every date range filter.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tomtom215/groovify/internal/logging"
)

// chinookTables lists the Chinook tables in dependency order.
var chinookTables = []string{
	"genre", "media_type", "artist", "album", "track",
	"employee", "customer", "invoice", "invoice_line",
	"playlist", "playlist_track",
}

// getTableCreationQueries returns the Chinook table creation SQL statements
func getTableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS genre (
			genre_id INTEGER PRIMARY KEY,
			name VARCHAR(120)
		)`,
		`CREATE TABLE IF NOT EXISTS media_type (
			media_type_id INTEGER PRIMARY KEY,
			name VARCHAR(120)
		)`,
		`CREATE TABLE IF NOT EXISTS artist (
			artist_id INTEGER PRIMARY KEY,
			name VARCHAR(120)
		)`,
		`CREATE TABLE IF NOT EXISTS album (
			album_id INTEGER PRIMARY KEY,
			title VARCHAR(160) NOT NULL,
			artist_id INTEGER NOT NULL REFERENCES artist (artist_id)
		)`,
		`CREATE TABLE IF NOT EXISTS track (
			track_id INTEGER PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			album_id INTEGER REFERENCES album (album_id),
			media_type_id INTEGER NOT NULL REFERENCES media_type (media_type_id),
			genre_id INTEGER REFERENCES genre (genre_id),
			composer VARCHAR(220),
			milliseconds INTEGER NOT NULL,
			bytes INTEGER,
			unit_price NUMERIC(10, 2) NOT NULL
		)`,
		// reports_to is not declared as a foreign key.
		`CREATE TABLE IF NOT EXISTS employee (
			employee_id INTEGER PRIMARY KEY,
			last_name VARCHAR(20) NOT NULL,
			first_name VARCHAR(20) NOT NULL,
			title VARCHAR(30),
			reports_to INTEGER,
			birth_date TIMESTAMP,
			hire_date TIMESTAMP,
			address VARCHAR(70),
			city VARCHAR(40),
			state VARCHAR(40),
			country VARCHAR(40),
			postal_code VARCHAR(10),
			phone VARCHAR(24),
			fax VARCHAR(24),
			email VARCHAR(60)
		)`,
		`CREATE TABLE IF NOT EXISTS customer (
			customer_id INTEGER PRIMARY KEY,
			first_name VARCHAR(40) NOT NULL,
			last_name VARCHAR(20) NOT NULL,
			company VARCHAR(80),
			address VARCHAR(70),
			city VARCHAR(40),
			state VARCHAR(40),
			country VARCHAR(40),
			postal_code VARCHAR(10),
			phone VARCHAR(24),
			fax VARCHAR(24),
			email VARCHAR(60) NOT NULL,
			support_rep_id INTEGER REFERENCES employee (employee_id)
		)`,
		`CREATE TABLE IF NOT EXISTS invoice (
			invoice_id INTEGER PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES customer (customer_id),
			invoice_date TIMESTAMP NOT NULL,
			billing_address VARCHAR(70),
			billing_city VARCHAR(40),
			billing_state VARCHAR(40),
			billing_country VARCHAR(40),
			billing_postal_code VARCHAR(10),
			total NUMERIC(10, 2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS invoice_line (
			invoice_line_id INTEGER PRIMARY KEY,
			invoice_id INTEGER NOT NULL REFERENCES invoice (invoice_id),
			track_id INTEGER NOT NULL REFERENCES track (track_id),
			unit_price NUMERIC(10, 2) NOT NULL,
			quantity INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS playlist (
			playlist_id INTEGER PRIMARY KEY,
			name VARCHAR(120)
		)`,
		`CREATE TABLE IF NOT EXISTS playlist_track (
			playlist_id INTEGER NOT NULL REFERENCES playlist (playlist_id),
			track_id INTEGER NOT NULL REFERENCES track (track_id),
			PRIMARY KEY (playlist_id, track_id)
		)`,
	}
}

// getIndexQueries returns the index creation statements
func getIndexQueries() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_invoice_date ON invoice (invoice_date)",
		"CREATE INDEX IF NOT EXISTS idx_invoice_customer ON invoice (customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_invoice_line_invoice ON invoice_line (invoice_id)",
		"CREATE INDEX IF NOT EXISTS idx_invoice_line_track ON invoice_line (track_id)",
		"CREATE INDEX IF NOT EXISTS idx_track_album ON track (album_id)",
		"CREATE INDEX IF NOT EXISTS idx_track_genre ON track (genre_id)",
		"CREATE INDEX IF NOT EXISTS idx_album_artist ON album (artist_id)",
		"CREATE INDEX IF NOT EXISTS idx_customer_rep ON customer (support_rep_id)",
	}
}

// ensureChinook creates the schema and fills an empty database from the configured source.
func (db *DB) ensureChinook(ctx context.Context) error {
	for _, query := range getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create chinook table: %w", err)
		}
	}

	var invoices int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM invoice").Scan(&invoices); err != nil {
		return fmt.Errorf("failed to count invoices: %w", err)
	}

	switch {
	case invoices > 0:
		logging.Debug().Int64("invoices", invoices).Msg("Chinook data present")
	case db.cfg.ChinookPath != "":
		if err := db.LoadChinookScript(ctx, db.cfg.ChinookPath); err != nil {
			return err
		}
	case db.cfg.SeedMockData:
		if err := db.SeedMockData(ctx, seedAnchor(db.cfg.SeedAnchor)); err != nil {
			return err
		}
	default:
		logging.Warn().Msg("Chinook tables are empty; set CHINOOK_SCRIPT or SEED_MOCK_DATA to load data")
	}

	// Indexes are built after bulk loading.
	for _, query := range getIndexQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// LoadChinookScript replays the INSERT statements of a Chinook SQL script in one transaction.
func (db *DB) LoadChinookScript(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return fmt.Errorf("failed to read chinook script %s: %w", path, err)
	}

	stmts := scriptInserts(string(raw))
	if len(stmts) == 0 {
		return fmt.Errorf("chinook script %s contains no INSERT statements", path)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin script load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("chinook script statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chinook script: %w", err)
	}

	logging.Info().Str("path", path).Int("statements", len(stmts)).Msg("Loaded Chinook script")
	return nil
}

// scriptInserts extracts the INSERT statements of a SQL script, dropping psql
// meta-commands (lines starting with a backslash).
func scriptInserts(script string) []string {
	var kept strings.Builder
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), `\`) {
			continue
		}
		kept.WriteString(line)
		kept.WriteByte('\n')
	}

	var inserts []string
	for _, stmt := range splitStatements(kept.String()) {
		if firstKeyword(stmt) == "INSERT" {
			inserts = append(inserts, stmt)
		}
	}
	return inserts
}

// firstKeyword returns the upper-cased first word of a statement after leading comments.
func firstKeyword(stmt string) string {
	s := stripLeadingComments(stmt)
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	if end < 0 {
		end = len(s)
	}
	return strings.ToUpper(s[:end])
}
