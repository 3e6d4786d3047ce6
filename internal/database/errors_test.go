// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tomtom215/groovify/internal/logging"
)

// mockCloser implements io.Closer for testing
type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}

// captureLogs routes the global logger into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })
	return &buf
}

func TestCloseWithLog(t *testing.T) {
	t.Run("nil closer does not panic", func(t *testing.T) {
		buf := captureLogs(t)
		closeWithLog(nil, "test")
		if buf.Len() > 0 {
			t.Errorf("Expected no log output for nil closer, got: %s", buf.String())
		}
	})

	t.Run("successful close does not log", func(t *testing.T) {
		buf := captureLogs(t)
		closer := &mockCloser{}
		closeWithLog(closer, "rows")
		if !closer.closed {
			t.Error("Expected closer to be closed")
		}
		if buf.Len() > 0 {
			t.Errorf("Expected no log output for successful close, got: %s", buf.String())
		}
	})

	t.Run("error during close is logged", func(t *testing.T) {
		buf := captureLogs(t)
		closer := &mockCloser{err: errors.New("close failed: connection reset")}
		closeWithLog(closer, "database connection")

		out := buf.String()
		for _, want := range []string{"Failed to close resource", "database connection", "close failed: connection reset"} {
			if !strings.Contains(out, want) {
				t.Errorf("Expected log to contain %q, got: %s", want, out)
			}
		}
	})
}

func TestCloseQuietly(t *testing.T) {
	closeQuietly(nil)

	closer := &mockCloser{err: errors.New("ignored")}
	closeQuietly(closer)
	if !closer.closed {
		t.Error("Expected closer to be closed")
	}
}

func TestIsConnectionError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("syntax error at or near \"SELEC\""), false},
		{errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true},
		{fmt.Errorf("rfm segments: %w", errors.New("driver: bad connection")), true},
		{errors.New("sql: database is closed"), true},
		{errors.New("read tcp: i/o timeout"), true},
	}
	for _, tt := range tests {
		if got := isConnectionError(tt.err); got != tt.want {
			t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestCountsAsOutage(t *testing.T) {
	t.Parallel()

	if countsAsOutage(context.Canceled) {
		t.Error("cancellation is the caller's choice, not an outage")
	}
	if !countsAsOutage(fmt.Errorf("query: %w", context.DeadlineExceeded)) {
		t.Error("timeouts count against the breaker")
	}
	if countsAsOutage(errors.New("Catalog Error: Table with name nope does not exist")) {
		t.Error("query errors do not count against the breaker")
	}
}
