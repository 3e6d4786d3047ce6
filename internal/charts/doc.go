// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

/*
Package charts maps shaped analytics tables to declarative chart descriptions.

A Spec names the chart kind, the axis titles and the data series; rendering is left to the
client. Every builder is a pure function of its input: equal tables give equal specs, and an
empty table gives a placeholder spec with Empty set and the "No data available" annotation
instead of an error.

The generic entry points are Build, Pie, Heatmap, Treemap and Table. The page files
(finance.go, customers.go, music.go, employees.go, alerts.go, explorer.go) bind them to
the model types of each dashboard page.
*/
package charts
