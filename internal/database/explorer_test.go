// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/tomtom215/groovify/internal/models"
)

func TestValidateReadOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{name: "select", query: "SELECT * FROM artist LIMIT 10;", want: "SELECT * FROM artist LIMIT 10"},
		{name: "lower case with comment", query: "-- top artists\nselect name from artist", want: "-- top artists\nselect name from artist"},
		{name: "cte", query: "WITH a AS (SELECT 1) SELECT * FROM a", want: "WITH a AS (SELECT 1) SELECT * FROM a"},
		{name: "describe", query: "DESCRIBE artist", want: "DESCRIBE artist"},
		{name: "keyword inside literal", query: "SELECT 'DROP TABLE artist; --' AS joke", want: "SELECT 'DROP TABLE artist; --' AS joke"},
		{name: "keyword inside quoted identifier", query: `SELECT 1 AS "delete"`, want: `SELECT 1 AS "delete"`},
		{name: "keyword as identifier suffix", query: "SELECT last_update, offset_ms FROM t", want: "SELECT last_update, offset_ms FROM t"},

		{name: "empty", query: "   ", wantErr: true},
		{name: "only comment", query: "-- nothing here", wantErr: true},
		{name: "delete", query: "DELETE FROM artist", wantErr: true},
		{name: "multiple statements", query: "SELECT 1; DROP TABLE artist", wantErr: true},
		{name: "two selects", query: "SELECT 1; SELECT 2;", wantErr: true},
		{name: "cte wrapping insert", query: "WITH x AS (SELECT 1) INSERT INTO artist SELECT 999, 'x'", wantErr: true},
		{name: "copy", query: "COPY artist TO 'out.csv'", wantErr: true},
		{name: "attach", query: "ATTACH 'other.db'", wantErr: true},
		{name: "pragma", query: "PRAGMA database_list", wantErr: true},
		{name: "set", query: "SET threads = 1", wantErr: true},
		{name: "create as select", query: "CREATE TABLE x AS SELECT 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ValidateReadOnly(tt.query)
			if tt.wantErr {
				checkError(t, err)
				checkErrorIs(t, err, ErrReadOnlyViolation)
				return
			}
			checkNoError(t, err)
			checkStringEqual(t, "statement", got, tt.want)
		})
	}
}

func TestRunReadOnly(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	t.Run("truncates at the limit", func(t *testing.T) {
		res, err := db.RunReadOnly(ctx, "SELECT artist_id, name FROM artist ORDER BY artist_id;", 10)
		checkNoError(t, err)
		checkIntEqual(t, "rows", res.RowCount, 10)
		if !res.Truncated {
			t.Error("expected truncated result")
		}
		if !slices.Equal(res.Columns, []string{"artist_id", "name"}) {
			t.Errorf("unexpected columns %v", res.Columns)
		}
		checkStringEqual(t, "first artist", fmt.Sprint(res.Rows[0][1]), "AC/DC")
	})

	t.Run("small results are complete", func(t *testing.T) {
		res, err := db.RunReadOnly(ctx, "SELECT 1 AS one, 'x' AS letter, NULL AS nothing", 1000)
		checkNoError(t, err)
		checkIntEqual(t, "rows", res.RowCount, 1)
		if res.Truncated {
			t.Error("did not expect truncation")
		}
		checkStringEqual(t, "one", fmt.Sprint(res.Rows[0][0]), "1")
		checkStringEqual(t, "letter", fmt.Sprint(res.Rows[0][1]), "x")
		if res.Rows[0][2] != nil {
			t.Errorf("expected nil for NULL, got %v", res.Rows[0][2])
		}
	})

	t.Run("empty results keep columns", func(t *testing.T) {
		res, err := db.RunReadOnly(ctx, "SELECT name FROM artist WHERE 1 = 0", 1000)
		checkNoError(t, err)
		checkIntEqual(t, "rows", res.RowCount, 0)
		checkIntEqual(t, "columns", len(res.Columns), 1)
		if res.Rows == nil {
			t.Error("rows should be an empty slice, not nil")
		}
	})

	t.Run("writes are rejected before execution", func(t *testing.T) {
		_, err := db.RunReadOnly(ctx, "DELETE FROM artist", 1000)
		checkErrorIs(t, err, ErrReadOnlyViolation)

		res, err := db.RunReadOnly(ctx, "SELECT COUNT(*) AS n FROM artist", 1000)
		checkNoError(t, err)
		checkStringEqual(t, "artists left", fmt.Sprint(res.Rows[0][0]), "30")
	})

	t.Run("engine errors are returned", func(t *testing.T) {
		_, err := db.RunReadOnly(ctx, "SELECT * FROM no_such_table", 1000)
		checkError(t, err)
	})
}

func TestExplorerMetadata(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tables, err := db.ListTables(ctx)
	checkNoError(t, err)
	want := slices.Clone(chinookTables)
	slices.Sort(want)
	if !slices.Equal(tables, want) {
		t.Errorf("tables: expected %v, got %v", want, tables)
	}

	stats, err := db.GetTableStats(ctx)
	checkNoError(t, err)
	checkIntEqual(t, "stats", len(stats), len(chinookTables))
	for _, s := range stats {
		switch s.TableName {
		case "artist":
			checkIntEqual(t, "artist rows", int(s.RowCount), 30)
			checkIntEqual(t, "artist columns", s.ColumnCount, 2)
		case "track":
			checkIntEqual(t, "track rows", int(s.RowCount), 600)
			checkIntEqual(t, "track columns", s.ColumnCount, 9)
		}
		if s.SizeBytes < 0 {
			t.Errorf("%s: negative size", s.TableName)
		}
	}

	columns, err := db.GetSchemaColumns(ctx)
	checkNoError(t, err)
	var artistColumns []string
	for _, c := range columns {
		if c.TableName == "artist" {
			artistColumns = append(artistColumns, c.ColumnName)
		}
	}
	if !slices.Equal(artistColumns, []string{"artist_id", "name"}) {
		t.Errorf("artist columns in ordinal order: got %v", artistColumns)
	}

	rels, err := db.GetRelationships(ctx)
	checkNoError(t, err)
	found := slices.ContainsFunc(rels, func(r models.Relationship) bool {
		return r.SourceTable == "album" && r.SourceColumn == "artist_id" &&
			r.TargetTable == "artist" && r.TargetColumn == "artist_id"
	})
	if !found {
		t.Errorf("expected album.artist_id -> artist.artist_id among %d relationships", len(rels))
	}
}

func TestQuoting(t *testing.T) {
	t.Parallel()
	checkStringEqual(t, "ident", quoteIdent(`we"ird`), `"we""ird"`)
	checkStringEqual(t, "literal", quoteLiteral("o'clock"), `'o''clock'`)
}
