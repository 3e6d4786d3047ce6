// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package testinfra starts throwaway containers for integration tests.
//
// Everything here is behind the integration build tag and needs Docker:
//
//	go test -tags integration ./internal/testinfra/...
//
// NewPostgresContainer runs a Postgres server and returns the DatabaseConfig that points the
// database package at it, so the query library can be checked against a second engine:
//
//	pg, err := testinfra.NewPostgresContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, pg.Container)
//
//	cfg := pg.DatabaseConfig()
//	cfg.SeedMockData = true
//	db, err := database.New(&cfg)
//
// Tests skip themselves when Docker is not available.
package testinfra
