// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package shaping derives display columns from query results: customer profiles, rankings,
// cluster and churn summaries, period labels and table size formatting.
//
// Every function is pure. Functions that return a slice never modify their input.
package shaping
