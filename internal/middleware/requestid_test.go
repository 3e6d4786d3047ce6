// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/groovify/internal/logging"
)

func serveRequestID(t *testing.T, header string) (responseID, contextID, correlationID string) {
	t.Helper()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextID = logging.RequestIDFromContext(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/home", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec.Header().Get(RequestIDHeader), contextID, correlationID
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	responseID, contextID, correlationID := serveRequestID(t, "")

	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("response X-Request-ID is not a valid UUID: %v", err)
	}
	if contextID != responseID {
		t.Errorf("context ID %q does not match response header %q", contextID, responseID)
	}
	if correlationID == "" {
		t.Error("expected a correlation ID in the context")
	}
}

func TestRequestID_PreservesExistingID(t *testing.T) {
	responseID, contextID, _ := serveRequestID(t, "upstream-42")

	if responseID != "upstream-42" || contextID != "upstream-42" {
		t.Errorf("expected the upstream ID to be kept, got %q / %q", responseID, contextID)
	}
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	responseID, _, _ := serveRequestID(t, strings.Repeat("x", maxRequestIDLength+1))

	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("oversized upstream IDs should be replaced, got %q", responseID)
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, _, _ := serveRequestID(t, "")
		if seen[id] {
			t.Fatalf("duplicate request ID %s", id)
		}
		seen[id] = true
	}
}
