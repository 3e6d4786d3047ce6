// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered with promauto on package load and exposed by the HTTP server at
/metrics in the Prometheus text format:

	curl http://localhost:8501/metrics

# Available Metrics

Database:
  - groovify_db_query_duration_seconds{query,engine}
  - groovify_db_query_errors_total{query,engine,error_type}
  - groovify_db_open_connections

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Dashboard:
  - groovify_section_outcomes_total{page,status}
  - groovify_explorer_queries_total{result}
  - cache_hits_total, cache_misses_total, cache_entries{cache_type}

Resilience:
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
