// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package config loads Groovify configuration from defaults, an optional YAML file,
// a .env file and environment variables (highest priority), in that order.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Supported database drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// Config is the root configuration.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Cache     CacheConfig     `koanf:"cache"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Alerts    AlertsConfig    `koanf:"alerts"`
	Explorer  ExplorerConfig  `koanf:"explorer"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatabaseConfig selects and configures the SQL engine holding the Chinook data.
//
// Environment Variables:
//   - DB_DRIVER: duckdb (default, embedded) or postgres
//   - DUCKDB_PATH: DuckDB file, ":memory:" for an ephemeral database
//   - DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD, DB_SSLMODE: Postgres connection
//   - SEED_MOCK_DATA: seed a synthetic Chinook dataset into an empty DuckDB database
//   - CHINOOK_SCRIPT: SQL script loaded into an empty DuckDB database instead of the seed
type DatabaseConfig struct {
	Driver string `koanf:"driver"`

	// DuckDB
	Path         string `koanf:"path"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"` // 0 = NumCPU
	SeedMockData bool   `koanf:"seed_mock_data"`
	SeedAnchor   string `koanf:"seed_anchor"` // YYYY-MM-DD, latest invoice date of the seed; empty = today
	ChinookPath  string `koanf:"chinook_script"`

	// Postgres
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"sslmode"`

	MaxOpenConns int           `koanf:"max_open_conns"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// PostgresDSN builds a lib/pq connection URL from the discrete settings.
func (d *DatabaseConfig) PostgresDSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// CacheConfig controls the query result cache.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// AnalyticsConfig holds page-level defaults applied when a request omits a parameter.
type AnalyticsConfig struct {
	ChurnActiveMonths      int `koanf:"churn_active_months"`
	ChurnRiskMonths        int `koanf:"churn_risk_months"`
	TopClientsLimit        int `koanf:"top_clients_limit"`
	TopCountriesLimit      int `koanf:"top_countries_limit"`
	TrackLimit             int `koanf:"track_limit"`
	ArtistLimit            int `koanf:"artist_limit"`
	PlaylistDiscoveryLimit int `koanf:"playlist_discovery_limit"`
	MinTrackSales          int `koanf:"min_track_sales"`
	MinArtistAlbums        int `koanf:"min_artist_albums"`
	MinPlaylistAppearances int `koanf:"min_playlist_appearances"`
	TopPerEmployee         int `koanf:"top_per_employee"`
	SectionConcurrency     int `koanf:"section_concurrency"`
}

// AlertsConfig holds the thresholds used by the alert queries.
type AlertsConfig struct {
	MinSalesThreshold       int     `koanf:"min_sales_threshold"`
	AlbumSalesThreshold     int     `koanf:"album_sales_threshold"`
	TrackLimit              int     `koanf:"track_limit"`
	AlbumLimit              int     `koanf:"album_limit"`
	InventoryLimit          int     `koanf:"inventory_limit"`
	RevenueAnalysisDays     int     `koanf:"revenue_analysis_days"`
	CriticalDropPct         float64 `koanf:"critical_drop_pct"`
	WarningDropPct          float64 `koanf:"warning_drop_pct"`
	ChurnDaysThreshold      int     `koanf:"churn_days_threshold"`
	ChurnCriticalDays       int     `koanf:"churn_critical_days"`
	HighValueCustomerMin    float64 `koanf:"high_value_customer_min"`
	MediumValueCustomerMin  float64 `koanf:"medium_value_customer_min"`
	LowPerformanceOrders    int     `koanf:"low_performance_orders"`
	MediumPerformanceOrders int     `koanf:"medium_performance_orders"`
	FraudWindowDays         int     `koanf:"fraud_window_days"`
	FraudLimit              int     `koanf:"fraud_limit"`
	FraudAmount             float64 `koanf:"fraud_amount"`
	SuspiciousItems         int     `koanf:"suspicious_items"`
	BulkPurchase            int     `koanf:"bulk_purchase"`
	HighValueSingleItem     float64 `koanf:"high_value_single_item"`
}

// ExplorerConfig bounds the free-form SQL explorer.
type ExplorerConfig struct {
	ResultLimit      int `koanf:"result_limit"`
	QueriesPerMinute int `koanf:"queries_per_minute"`
	Burst            int `koanf:"burst"`
}

// SecurityConfig holds HTTP hardening settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads the configuration using Koanf and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
