// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package services adapts Groovify components to suture.Service.
//
// HTTPServerService turns the blocking ListenAndServe of *http.Server into a Serve that
// drains connections when its context ends. TickerService runs a sampling function on a
// fixed interval, used for the database pool and cache gauges.
package services
