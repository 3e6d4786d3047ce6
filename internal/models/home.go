// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package models

import "time"

// DateBounds is the first and last invoice date. Both are nil when there are no invoices.
type DateBounds struct {
	MinDate *time.Time `json:"min_d"`
	MaxDate *time.Time `json:"max_d"`
}

// Filter returns a filter spanning the full bounds, or ok=false when there are no invoices.
func (b DateBounds) Filter(asOf time.Time) (Filter, bool) {
	if b.MinDate == nil || b.MaxDate == nil {
		return Filter{}, false
	}
	return NewFilter(*b.MinDate, *b.MaxDate, asOf), true
}

// DatabaseInfo describes the connected database for the home page.
type DatabaseInfo struct {
	Engine     string     `json:"engine"`
	Schema     string     `json:"schema"`
	TableCount int        `json:"table_count"`
	Bounds     DateBounds `json:"date_bounds"`
}

// AppSummary is the static description shown on the home page.
type AppSummary struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Pages       []string `json:"pages"`
}
