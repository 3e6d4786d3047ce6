// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with the custom tags the dashboard request structs need
// and user-friendly error messages that plug into the API error envelope.
//
// # Custom Tags
//
//   - isodate: a calendar date in YYYY-MM-DD form
//   - notbefore=Field: a date that does not precede the named sibling date field
//   - genrelist: a comma separated list of non-empty genre names
//
// # Example
//
//	type FinanceQuery struct {
//	    StartDate   string `validate:"omitempty,isodate"`
//	    EndDate     string `validate:"omitempty,isodate,notbefore=StartDate"`
//	    Granularity string `validate:"omitempty,oneof=month quarter year"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Error Format
//
// ToAPIError produces the VALIDATION_ERROR shape used by every endpoint:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "end_date must not be before start_date",
//	    "details": {"field": "end_date", "tag": "notbefore", "value": "2020-01-01"}
//	}
//
// Field names are taken from the `query` or `json` struct tag when present, so messages name
// the parameter the client actually sent.
package validation
