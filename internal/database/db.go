// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"

	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/logging"
	"github.com/tomtom215/groovify/internal/metrics"
)

const defaultQueryTimeout = 30 * time.Second

// DB wraps the SQL connection pool holding the Chinook data and provides the analytics queries
type DB struct {
	conn         *sql.DB
	cfg          *config.DatabaseConfig
	dialect      dialect
	breaker      *queryBreaker
	queryTimeout time.Duration
}

// New opens the configured engine. For DuckDB the Chinook schema is created when missing and
// optionally loaded from a script or seeded. Postgres is expected to hold Chinook already
// unless a script or seeding is configured.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	d, ok := dialectFor(cfg.Driver)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	dsn, err := dataSourceName(cfg, d)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	db := &DB{
		conn:         conn,
		cfg:          cfg,
		dialect:      d,
		breaker:      newQueryBreaker(d.name + "-queries"),
		queryTimeout: timeout,
	}

	db.configureConnectionPool()

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("engine", d.name).
		Str("schema", d.schema).
		Msg("Database ready")

	return db, nil
}

// dataSourceName builds the driver specific connection string.
func dataSourceName(cfg *config.DatabaseConfig, d dialect) (string, error) {
	if d.name == config.DriverPostgres {
		return cfg.PostgresDSN(), nil
	}

	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}
	if path != ":memory:" {
		// DuckDB does not create missing parent directories.
		dbDir := filepath.Dir(path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return "", fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	return fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s", path, numThreads, maxMemory), nil
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	maxOpen := db.cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = runtime.NumCPU()
	}
	db.conn.SetMaxOpenConns(maxOpen)
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// initialize verifies connectivity and, for DuckDB, prepares the Chinook data.
func (db *DB) initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach %s: %w", db.dialect.name, err)
	}

	if db.dialect.name != config.DriverDuckDB {
		// A Postgres server is only written to when asked to load or seed Chinook.
		if db.cfg.SeedMockData || db.cfg.ChinookPath != "" {
			return db.ensureChinook(ctx)
		}
		return nil
	}

	if err := db.ensureChinook(ctx); err != nil {
		return err
	}

	// Free-form explorer queries must not reach the file system or the network.
	if _, err := db.conn.ExecContext(ctx, "SET enable_external_access = false"); err != nil {
		logging.Warn().Err(err).Msg("Could not disable external access for DuckDB")
	}
	return nil
}

// Close closes the connection pool. File backed DuckDB databases are checkpointed first.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if db.dialect.name == config.DriverDuckDB && db.cfg.Path != "" && db.cfg.Path != ":memory:" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}
	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// Conn returns the underlying SQL connection pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Engine returns the driver name: duckdb or postgres.
func (db *DB) Engine() string {
	return db.dialect.name
}

// Schema returns the schema holding the Chinook tables.
func (db *DB) Schema() string {
	return db.dialect.schema
}

// BreakerState returns the query circuit breaker state: closed, half-open or open.
func (db *DB) BreakerState() string {
	return db.breaker.state()
}

// RecordPoolStats publishes the connection pool size.
func (db *DB) RecordPoolStats() {
	metrics.DBOpenConnections.Set(float64(db.conn.Stats().OpenConnections))
}

// ensureContext applies the configured query timeout when ctx has no deadline
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), db.queryTimeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, db.queryTimeout)
	}
	return ctx, func() {}
}
