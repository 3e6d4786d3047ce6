// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/groovify/internal/charts"
	"github.com/tomtom215/groovify/internal/database"
	"github.com/tomtom215/groovify/internal/metrics"
	"github.com/tomtom215/groovify/internal/models"
)

// QueryResponse is the result of a free-form explorer query.
type QueryResponse struct {
	*models.QueryResult
	Chart charts.Spec `json:"chart"`
}

// ExplorerTables lists the tables of the analytics schema.
//
// Method: GET
// Path: /api/v1/sql/tables
//
// @Summary List tables
// @Tags Explorer
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]string}
// @Router /sql/tables [get]
func (h *Handler) ExplorerTables(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	tables, err := h.svc.DB().ListTables(r.Context())
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	respondSuccess(w, r, tables, start)
}

// ExplorerStats reports per table row counts, column counts and sizes.
//
// Method: GET
// Path: /api/v1/sql/stats
//
// @Summary Table statistics
// @Tags Explorer
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.TableStats}
// @Router /sql/stats [get]
func (h *Handler) ExplorerStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats, err := h.svc.TableStats(r.Context())
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	respondSuccess(w, r, stats, start)
}

// ExplorerSchema lists every column of the analytics schema.
//
// Method: GET
// Path: /api/v1/sql/schema
//
// @Summary Schema columns
// @Tags Explorer
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.SchemaColumn}
// @Router /sql/schema [get]
func (h *Handler) ExplorerSchema(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	columns, err := h.svc.DB().GetSchemaColumns(r.Context())
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	respondSuccess(w, r, columns, start)
}

// ExplorerRelationships lists the foreign keys of the analytics schema.
//
// Method: GET
// Path: /api/v1/sql/relationships
//
// @Summary Foreign keys
// @Tags Explorer
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Relationship}
// @Router /sql/relationships [get]
func (h *Handler) ExplorerRelationships(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rels, err := h.svc.DB().GetRelationships(r.Context())
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	respondSuccess(w, r, rels, start)
}

// ExplorerQuery runs one read-only statement.
//
// Method: POST
// Path: /api/v1/sql/query
//
// Request Body:
//
//	{"query": "SELECT name FROM artist LIMIT 10"}
//
// Responses:
//   - 200: columns, rows (capped at the configured limit), truncated flag and a chart
//   - 400 READ_ONLY_VIOLATION: the statement is not a single read-only statement
//   - 400 QUERY_ERROR: the engine rejected the statement
//   - 429 RATE_LIMITED: too many explorer queries, Retry-After gives the wait in seconds
//
// @Summary Run a read-only query
// @Tags Explorer
// @Accept json
// @Produce json
// @Param request body api.SQLQueryRequest true "Statement"
// @Success 200 {object} models.APIResponse{data=api.QueryResponse}
// @Failure 400 {object} models.APIResponse "Rejected or failed statement"
// @Failure 429 {object} models.APIResponse "Explorer throttled"
// @Failure 503 {object} models.APIResponse "Database unavailable"
// @Router /sql/query [post]
func (h *Handler) ExplorerQuery(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, maxQueryBodyBytes)
	var req SQLQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	if wait, ok := h.reserveExplorerQuery(); !ok {
		metrics.RecordExplorerQuery("throttled")
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		respondError(w, r, http.StatusTooManyRequests, models.ErrCodeRateLimited,
			"Too many explorer queries, retry later", nil)
		return
	}

	res, chart, err := h.svc.Query(r.Context(), req.Query)
	switch {
	case err == nil:
		respondSuccess(w, r, QueryResponse{QueryResult: res, Chart: chart}, start)
	case errors.Is(err, database.ErrReadOnlyViolation):
		respondError(w, r, http.StatusBadRequest, models.ErrCodeReadOnlyViolation, err.Error(), nil)
	case database.IsUnavailable(err):
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeDatabase, "The database is unavailable", err)
	default:
		respondError(w, r, http.StatusBadRequest, models.ErrCodeQuery, err.Error(), err)
	}
}

// reserveExplorerQuery takes a token from the explorer limiter. When none is available now it
// returns the delay until one is and leaves the limiter untouched.
func (h *Handler) reserveExplorerQuery() (time.Duration, bool) {
	res := h.explorer.Reserve()
	if !res.OK() {
		return time.Minute, false
	}
	if delay := res.Delay(); delay > 0 {
		res.Cancel()
		return delay, false
	}
	return 0, true
}
