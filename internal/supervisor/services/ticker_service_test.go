// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerServiceRunsImmediatelyAndOnInterval(t *testing.T) {
	var calls atomic.Int32
	svc := NewTickerService("sampler", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if calls.Load() < 3 {
		t.Errorf("expected several samples, got %d", calls.Load())
	}
	if svc.String() != "sampler" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestTickerServiceReturnsSampleError(t *testing.T) {
	sampleErr := errors.New("pool unavailable")
	var calls atomic.Int32
	svc := NewTickerService("failing", 5*time.Millisecond, func(context.Context) error {
		if calls.Add(1) == 2 {
			return sampleErr
		}
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- svc.Serve(context.Background()) }()

	select {
	case err := <-done:
		if !errors.Is(err, sampleErr) {
			t.Errorf("expected the sample error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return the sample error")
	}
}

func TestTickerServiceDefaultInterval(t *testing.T) {
	svc := NewTickerService("default", 0, func(context.Context) error { return nil })
	if svc.interval != time.Minute {
		t.Errorf("interval = %v, want 1m", svc.interval)
	}
}
