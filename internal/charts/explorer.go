// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package charts

import "github.com/tomtom215/groovify/internal/models"

// TableSizes draws the row count of every table.
func TableSizes(rows []models.TableStats) Spec {
	return Build(KindHorizontalBar, "Rows per Table", rows, Mapping[models.TableStats]{
		X:     func(r models.TableStats) any { return r.TableName },
		Y:     func(r models.TableStats) float64 { return float64(r.RowCount) },
		Label: func(r models.TableStats) string { return r.TableSize },
	}, Axes{X: "Table", Y: "Rows"})
}

// QueryResult renders a free-form query result as a table.
func QueryResult(res models.QueryResult) Spec {
	return Table("Query Result", res.Columns, res.Rows)
}
