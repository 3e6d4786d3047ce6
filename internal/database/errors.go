// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/groovify/internal/logging"
)

// ErrReadOnlyViolation is returned when a free-form query is not a single read statement.
var ErrReadOnlyViolation = errors.New("only single read-only statements are allowed")

// ErrUnsupportedDriver is returned by New for an unknown database driver.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// IsUnavailable reports whether err means the database could not serve the query at all: the
// circuit breaker is open or the connection failed or timed out.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return true
	}
	return countsAsOutage(err)
}

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// isConnectionError checks if an error indicates database connection loss
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"bad connection",
		"database is closed",
		"no such host",
		"i/o timeout",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
