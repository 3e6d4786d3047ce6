// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

/*
Package models defines the data structures shared by the query library, the page service and
the HTTP API of Groovify.

Key Components:

  - Filter: the date range and reference date passed to every query
  - ChurnParams, MusicParams, AlertThresholds: per-page parameters
  - APIResponse: standardized API response wrapper

Model Categories:

1. Parameters (filter.go):
  - Filter with inclusive StartDate/EndDate and the AsOf reference date
  - Granularity: month, quarter or year
  - ErrInvalidFilter for empty or inverted ranges and invalid windows

2. Page rows:
  - finance.go: KPIs, revenue trends, geography, amounts, seasonality, baskets
  - customers.go: RFM segments, clusters, journeys, churn, cohorts, top clients
  - music.go: tracks, genres, artists, albums, playlists, discovery
  - employees.go: performance, satisfaction, territories, hierarchy, productivity
  - alerts.go: alert rows, severities and the alert summary
  - explorer.go: table statistics, schema, relationships, free-form query results
  - home.go: date bounds, database summary, application summary

3. API envelope (api_responses.go):
  - APIResponse, Metadata and APIError with the error codes

Dates are calendar days in UTC. Nullable columns are pointers and serialize as JSON null.
*/
package models
