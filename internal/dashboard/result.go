// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package dashboard

import (
	"time"

	"github.com/tomtom215/groovify/internal/charts"
	"github.com/tomtom215/groovify/internal/models"
)

// Status tags a section result.
type Status string

const (
	StatusOK    Status = "ok"
	StatusEmpty Status = "empty"
	StatusError Status = "error"
)

// Result is the outcome of one section: rows with optional summary and charts, an empty table
// with placeholder charts, or a failure reason.
type Result struct {
	Status  Status        `json:"status"`
	Rows    any           `json:"rows,omitempty"`
	Summary any           `json:"summary,omitempty"`
	Charts  []charts.Spec `json:"charts,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Section is a named result within a page.
type Section struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Result
}

// Page is a rendered dashboard page.
type Page struct {
	Name        string         `json:"name"`
	Filter      *models.Filter `json:"filter,omitempty"`
	Sections    []Section      `json:"sections"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Section returns the named section.
func (p *Page) Section(name string) (Section, bool) {
	for _, s := range p.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Failed reports how many sections of the page failed.
func (p *Page) Failed() int {
	n := 0
	for _, s := range p.Sections {
		if s.Status == StatusError {
			n++
		}
	}
	return n
}

// Failure wraps an error as a section result.
func Failure(err error) Result {
	return Result{Status: StatusError, Error: err.Error()}
}

// Rows tags a table: empty tables keep their placeholder charts and an empty, non-nil row set.
func Rows[T any](rows []T, specs ...charts.Spec) Result {
	if rows == nil {
		rows = []T{}
	}
	res := Result{Status: StatusOK, Rows: rows, Charts: specs}
	if len(rows) == 0 {
		res.Status = StatusEmpty
	}
	return res
}

// Single tags a one-row result. ok false gives an empty result.
func Single(value any, ok bool, specs ...charts.Spec) Result {
	if !ok {
		return Result{Status: StatusEmpty, Charts: specs}
	}
	return Result{Status: StatusOK, Rows: value, Charts: specs}
}

// WithSummary attaches a summary to a successful or empty result.
func (r Result) WithSummary(summary any) Result {
	if r.Status != StatusError {
		r.Summary = summary
	}
	return r
}
