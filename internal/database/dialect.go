// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"strconv"
	"strings"

	"github.com/tomtom215/groovify/internal/config"
)

// dialect captures the differences between the supported engines. Queries are written once
// with '?' placeholders and portable SQL; the dialect handles the rest.
type dialect struct {
	name       string
	schema     string
	driverName string
	dollarArgs bool
	readOnlyTx bool
}

var (
	duckdbDialect = dialect{
		name:       config.DriverDuckDB,
		schema:     "main",
		driverName: "duckdb",
	}
	postgresDialect = dialect{
		name:       config.DriverPostgres,
		schema:     "public",
		driverName: "postgres",
		dollarArgs: true,
		readOnlyTx: true,
	}
)

func dialectFor(driver string) (dialect, bool) {
	switch driver {
	case config.DriverDuckDB:
		return duckdbDialect, true
	case config.DriverPostgres:
		return postgresDialect, true
	}
	return dialect{}, false
}

// rebind rewrites '?' placeholders for the dialect.
func (d dialect) rebind(query string) string {
	if !d.dollarArgs {
		return query
	}
	return rebindDollar(query)
}

// rebindDollar rewrites '?' placeholders as $1, $2, ... Question marks inside quoted
// literals, quoted identifiers and comments are left alone.
func rebindDollar(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 16)

	n, last := 0, 0
	walkSQL(query, func(i int, c byte) {
		if c != '?' {
			return
		}
		n++
		b.WriteString(query[last:i])
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
		last = i + 1
	})
	b.WriteString(query[last:])
	return b.String()
}

// skipQuoted returns the index just past the literal opened by quote at start.
// A doubled quote is an escaped quote. An unterminated literal runs to the end.
func skipQuoted(s string, start int, quote byte) int {
	for i := start + 1; i < len(s); i++ {
		if s[i] != quote {
			continue
		}
		if i+1 < len(s) && s[i+1] == quote {
			i++
			continue
		}
		return i + 1
	}
	return len(s)
}

// quoteIdent quotes an identifier for interpolation into SQL text.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral quotes a string literal for interpolation into SQL text.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
