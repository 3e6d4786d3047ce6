// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/groovify/internal/database"
	"github.com/tomtom215/groovify/internal/logging"
	"github.com/tomtom215/groovify/internal/models"
	"github.com/tomtom215/groovify/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response. Successful GET responses carry an ETag and are answered
// with 304 when the client already holds the same data.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusOK && r.Method == http.MethodGet {
		etag := dataETag(response.Data, data)
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "private, max-age=60")
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// dataETag tags the payload only, so the envelope timestamp does not defeat revalidation.
// body is hashed when the payload cannot be marshalled on its own.
func dataETag(payload interface{}, body []byte) string {
	if data, err := json.Marshal(payload); err == nil {
		return generateETag(data)
	}
	return generateETag(body)
}

// generateETag hashes a response body with FNV-1a.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondSuccess wraps data in a success envelope. start is when the handler began work.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error response. err, when set, is logged but never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondErrorDetails(w, r, status, code, message, nil, err)
}

func respondErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", sanitizeLogValue(code)).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondValidation sends a 400 VALIDATION_ERROR.
func respondValidation(w http.ResponseWriter, r *http.Request, apiErr *models.APIError) {
	respondErrorDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
}

// respondDatabaseError maps a query failure to 503 while the database is unreachable and to
// 500 otherwise.
func respondDatabaseError(w http.ResponseWriter, r *http.Request, err error) {
	if database.IsUnavailable(err) {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeDatabase, "The database is unavailable", err)
		return
	}
	respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabase, "A database error occurred", err)
}

// respondFilterError answers a failed filter resolution: an invalid filter is the client's
// fault, anything else is a database failure.
func respondFilterError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, models.ErrInvalidFilter) {
		respondValidation(w, r, &models.APIError{Code: models.ErrCodeValidation, Message: err.Error()})
		return
	}
	respondDatabaseError(w, r, err)
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// queryReader reads typed query parameters and remembers the ones that failed to parse.
type queryReader struct {
	values url.Values
	bad    []string
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{values: r.URL.Query()}
}

func (q *queryReader) str(key string) string {
	return strings.TrimSpace(q.values.Get(key))
}

// int returns 0 when the parameter is absent.
func (q *queryReader) int(key string) int {
	if p := q.intPtr(key); p != nil {
		return *p
	}
	return 0
}

func (q *queryReader) intPtr(key string) *int {
	raw := q.str(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.bad = append(q.bad, key)
		return nil
	}
	return &v
}

func (q *queryReader) floatPtr(key string) *float64 {
	raw := q.str(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.bad = append(q.bad, key)
		return nil
	}
	return &v
}

// err reports the parameters that were not numbers.
func (q *queryReader) err() *models.APIError {
	if len(q.bad) == 0 {
		return nil
	}
	return &models.APIError{
		Code:    models.ErrCodeValidation,
		Message: strings.Join(q.bad, ", ") + " must be numeric",
		Details: map[string]interface{}{"fields": q.bad},
	}
}

// parseDate parses an optional YYYY-MM-DD value; empty gives the zero time.
func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseCommaSeparated parses a comma-separated string into a slice
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
