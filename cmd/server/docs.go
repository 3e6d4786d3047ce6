// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package main

// Swagger general API information. Regenerate docs/ with:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title Groovify API
// @version 1.0
// @description Sales analytics for a digital music store: finance, customers, catalogue, sales staff, alerts and a read-only SQL explorer over the Chinook schema.
// @description
// @description ## Pages
// @description
// @description Every page endpoint returns named sections. A failed section carries status "error" and a reason while the other sections still render.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Explorer queries are additionally throttled to 60 per minute.
// @description
// @description ## Caching
// @description
// @description Query results are cached for 5 minutes. GET responses carry an ETag; send If-None-Match to receive 304 Not Modified.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/groovify/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness probes
//
// @tag.name Pages
// @tag.description Dashboard pages made of independently rendered sections
//
// @tag.name Explorer
// @tag.description Schema browser and read-only SQL
//
// @tag.name Meta
// @tag.description Date bounds, cache and latency statistics
