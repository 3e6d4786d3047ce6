// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestQueryBreakerIgnoresQueryErrors(t *testing.T) {
	b := newQueryBreaker("test-query-errors")
	queryErr := errors.New("Parser Error: syntax error at end of input")

	for i := 0; i < 20; i++ {
		if err := b.execute(func() error { return queryErr }); !errors.Is(err, queryErr) {
			t.Fatalf("expected the query error back, got %v", err)
		}
	}
	checkStringEqual(t, "state", b.state(), "closed")
}

func TestQueryBreakerOpensOnOutage(t *testing.T) {
	b := newQueryBreaker("test-outage")

	for i := 0; i < 10; i++ {
		_ = b.execute(func() error { return context.DeadlineExceeded })
	}
	checkStringEqual(t, "state", b.state(), "open")

	called := false
	err := b.execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if called {
		t.Error("open breaker must not run the query")
	}
}

func TestStateToString(t *testing.T) {
	t.Parallel()
	checkStringEqual(t, "closed", stateToString(gobreaker.StateClosed), "closed")
	checkStringEqual(t, "half-open", stateToString(gobreaker.StateHalfOpen), "half-open")
	checkStringEqual(t, "open", stateToString(gobreaker.StateOpen), "open")
	if stateToFloat(gobreaker.StateOpen) != 2 {
		t.Error("open state should export as 2")
	}
}
