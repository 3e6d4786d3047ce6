// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/groovify/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateAnalytics(); err != nil {
		return err
	}

	if err := c.validateAlerts(); err != nil {
		return err
	}

	if err := c.validateExplorer(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=duckdb")
		}
		if c.Database.Threads < 0 {
			return fmt.Errorf("DUCKDB_THREADS must be >= 0")
		}
		if c.Database.SeedAnchor != "" {
			if _, err := time.Parse(time.DateOnly, c.Database.SeedAnchor); err != nil {
				return fmt.Errorf("SEED_ANCHOR must be YYYY-MM-DD: %w", err)
			}
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			return fmt.Errorf("DB_HOST, DB_NAME and DB_USER are required when DB_DRIVER=postgres")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("DB_PORT must be between 1 and 65535")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be one of: duckdb, postgres")
	}

	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

// validateAnalytics enforces the churn ordering: the risk window must extend past the
// active window.
func (c *Config) validateAnalytics() error {
	a := c.Analytics
	if a.ChurnActiveMonths < 1 {
		return fmt.Errorf("CHURN_MONTHS_DEFAULT must be at least 1")
	}
	if a.ChurnRiskMonths <= a.ChurnActiveMonths {
		return fmt.Errorf("CHURN_RISK_MONTHS (%d) must be greater than CHURN_MONTHS_DEFAULT (%d)",
			a.ChurnRiskMonths, a.ChurnActiveMonths)
	}
	if a.TopClientsLimit < 1 || a.TopCountriesLimit < 1 {
		return fmt.Errorf("TOP_CLIENTS_LIMIT and TOP_COUNTRIES_LIMIT must be at least 1")
	}
	if a.SectionConcurrency < 1 {
		return fmt.Errorf("SECTION_CONCURRENCY must be at least 1")
	}
	return nil
}

func (c *Config) validateAlerts() error {
	a := c.Alerts
	if a.WarningDropPct <= 0 || a.CriticalDropPct <= a.WarningDropPct {
		return fmt.Errorf("CRITICAL_DROP_THRESHOLD must exceed WARNING_DROP_THRESHOLD (both positive)")
	}
	if a.RevenueAnalysisDays < 1 || a.FraudWindowDays < 1 {
		return fmt.Errorf("alert analysis windows must be at least 1 day")
	}
	if a.LowPerformanceOrders >= a.MediumPerformanceOrders {
		return fmt.Errorf("alerts.low_performance_orders must be below alerts.medium_performance_orders")
	}
	if a.ChurnCriticalDays < a.ChurnDaysThreshold {
		return fmt.Errorf("alerts.churn_critical_days must be >= CHURN_DAYS_THRESHOLD")
	}
	return nil
}

func (c *Config) validateExplorer() error {
	if c.Explorer.ResultLimit < 1 {
		return fmt.Errorf("QUERY_RESULTS_LIMIT must be at least 1")
	}
	if c.Explorer.QueriesPerMinute < 1 || c.Explorer.Burst < 1 {
		return fmt.Errorf("explorer rate settings must be at least 1")
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
