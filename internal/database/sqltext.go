// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"strings"
)

// Lexical helpers for SQL text: statement splitting and literal masking. They understand
// single and double quotes with doubled-quote escapes, line comments and block comments,
// which covers the Chinook scripts and what users type into the explorer.

// splitStatements splits a script on semicolons outside literals and comments.
// Empty statements are dropped and surrounding whitespace trimmed.
func splitStatements(script string) []string {
	var stmts []string
	start := 0
	walkSQL(script, func(i int, c byte) {
		if c == ';' {
			if s := strings.TrimSpace(script[start:i]); s != "" {
				stmts = append(stmts, s)
			}
			start = i + 1
		}
	})
	if s := strings.TrimSpace(script[start:]); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}

// maskSQL returns query with literal, quoted identifier and comment contents replaced by
// spaces, so that keyword scans only see SQL structure. Offsets are preserved.
func maskSQL(query string) string {
	masked := []byte(query)
	for i := range masked {
		masked[i] = ' '
	}
	walkSQL(query, func(i int, c byte) {
		masked[i] = c
	})
	return string(masked)
}

// stripLeadingComments removes comments and whitespace before the first token.
func stripLeadingComments(query string) string {
	s := query
	for {
		s = strings.TrimSpace(s)
		switch {
		case strings.HasPrefix(s, "--"):
			nl := strings.IndexByte(s, '\n')
			if nl < 0 {
				return ""
			}
			s = s[nl+1:]
		case strings.HasPrefix(s, "/*"):
			end := strings.Index(s[2:], "*/")
			if end < 0 {
				return ""
			}
			s = s[2+end+2:]
		default:
			return s
		}
	}
}

// walkSQL calls visit for every byte of query that is outside literals, quoted
// identifiers and comments.
func walkSQL(query string, visit func(i int, c byte)) {
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'' || c == '"':
			i = skipQuoted(query, i, c) - 1
		case c == '-' && i+1 < len(query) && query[i+1] == '-':
			nl := strings.IndexByte(query[i:], '\n')
			if nl < 0 {
				return
			}
			i += nl - 1
		case c == '/' && i+1 < len(query) && query[i+1] == '*':
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				return
			}
			i += 2 + end + 1
		default:
			visit(i, c)
		}
	}
}
