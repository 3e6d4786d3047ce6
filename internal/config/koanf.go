// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/groovify/config.yaml",
	"/etc/groovify/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the .env file path.
const DotEnvPathEnvVar = "DOTENV_PATH"

// Default returns the built-in configuration, before any file or environment overrides.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:       DriverDuckDB,
			Path:         "/data/groovify.duckdb",
			MaxMemory:    "1GB",
			Threads:      0,
			SeedMockData: false,
			Host:         "localhost",
			Port:         5432,
			Name:         "chinook",
			User:         "postgres",
			SSLMode:      "disable",
			MaxOpenConns: 10,
			QueryTimeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Port:        8501,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		Analytics: AnalyticsConfig{
			ChurnActiveMonths:      6,
			ChurnRiskMonths:        12,
			TopClientsLimit:        3,
			TopCountriesLimit:      10,
			TrackLimit:             100,
			ArtistLimit:            50,
			PlaylistDiscoveryLimit: 50,
			MinTrackSales:          1,
			MinArtistAlbums:        1,
			MinPlaylistAppearances: 1,
			TopPerEmployee:         5,
			SectionConcurrency:     4,
		},
		Alerts: AlertsConfig{
			MinSalesThreshold:       3,
			AlbumSalesThreshold:     5,
			TrackLimit:              25,
			AlbumLimit:              20,
			InventoryLimit:          50,
			RevenueAnalysisDays:     30,
			CriticalDropPct:         30,
			WarningDropPct:          15,
			ChurnDaysThreshold:      180,
			ChurnCriticalDays:       365,
			HighValueCustomerMin:    50,
			MediumValueCustomerMin:  25,
			LowPerformanceOrders:    30,
			MediumPerformanceOrders: 50,
			FraudWindowDays:         30,
			FraudLimit:              20,
			FraudAmount:             100,
			SuspiciousItems:         15,
			BulkPurchase:            20,
			HighValueSingleItem:     50,
		},
		Explorer: ExplorerConfig{
			ResultLimit:      1000,
			QueriesPerMinute: 60,
			Burst:            10,
		},
		Security: SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration with the precedence ENV > .env > file > defaults.
// A missing .env or config file is not an error.
func LoadWithKoanf() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv populates the process environment from a .env file. Variables that are
// already set win over the file.
func loadDotEnv() error {
	path := os.Getenv(DotEnvPathEnvVar)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Unmapped variables are ignored so the rest of the environment cannot leak in.
var envMappings = map[string]string{
	"db_driver":        "database.driver",
	"duckdb_path":      "database.path",
	"duckdb_max_mem":   "database.max_memory",
	"duckdb_threads":   "database.threads",
	"seed_mock_data":   "database.seed_mock_data",
	"seed_anchor":      "database.seed_anchor",
	"chinook_script":   "database.chinook_script",
	"db_host":          "database.host",
	"db_port":          "database.port",
	"db_name":          "database.name",
	"db_user":          "database.user",
	"db_password":      "database.password",
	"db_sslmode":       "database.sslmode",
	"db_max_conns":     "database.max_open_conns",
	"db_query_timeout": "database.query_timeout",

	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"cache_enabled": "cache.enabled",
	"cache_ttl":     "cache.ttl",

	"churn_months_default": "analytics.churn_active_months",
	"churn_risk_months":    "analytics.churn_risk_months",
	"top_clients_limit":    "analytics.top_clients_limit",
	"top_countries_limit":  "analytics.top_countries_limit",
	"section_concurrency":  "analytics.section_concurrency",

	"min_sales_threshold":        "alerts.min_sales_threshold",
	"album_sales_threshold":      "alerts.album_sales_threshold",
	"revenue_analysis_days":      "alerts.revenue_analysis_days",
	"critical_drop_threshold":    "alerts.critical_drop_pct",
	"warning_drop_threshold":     "alerts.warning_drop_pct",
	"churn_days_threshold":       "alerts.churn_days_threshold",
	"fraud_amount_threshold":     "alerts.fraud_amount",
	"suspicious_items_threshold": "alerts.suspicious_items",
	"bulk_purchase_threshold":    "alerts.bulk_purchase",
	"high_value_single_item":     "alerts.high_value_single_item",

	"query_results_limit":   "explorer.result_limit",
	"explorer_rate_per_min": "explorer.queries_per_minute",

	"rate_limit_reqs":    "security.rate_limit_reqs",
	"rate_limit_window":  "security.rate_limit_window",
	"disable_rate_limit": "security.rate_limit_disabled",
	"cors_origins":       "security.cors_origins",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DB_HOST -> database.host
//   - CHURN_MONTHS_DEFAULT -> analytics.churn_active_months
//   - QUERY_RESULTS_LIMIT -> explorer.result_limit
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
