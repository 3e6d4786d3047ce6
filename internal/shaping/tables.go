// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package shaping

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/tomtom215/groovify/internal/models"
)

const (
	kilobyte = 1024
	megabyte = 1024 * 1024
)

// FormatBytes renders a size as "%d B", "%.1f KB" or "%.1f MB". A unit is used only when the
// size is strictly greater than one of it, so 1024 renders as "1024 B".
func FormatBytes(n int64) string {
	switch {
	case n > megabyte:
		return fmt.Sprintf("%.1f MB", float64(n)/megabyte)
	case n > kilobyte:
		return fmt.Sprintf("%.1f KB", float64(n)/kilobyte)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// ShapeTableStats formats TableSize for every table whose size is known and orders the
// tables by size, largest first. Tables of equal size keep their order.
func ShapeTableStats(rows []models.TableStats) []models.TableStats {
	out := slices.Clone(rows)
	for i := range out {
		if out[i].TableSize != models.SizeUnavailable {
			out[i].TableSize = FormatBytes(out[i].SizeBytes)
		}
	}
	slices.SortStableFunc(out, func(a, b models.TableStats) int {
		return cmp.Compare(b.SizeBytes, a.SizeBytes)
	})
	return out
}

// TableTotals sums the statistics of all tables. The size is "N/A" when no table reported one.
func TableTotals(rows []models.TableStats) models.TableStatsTotals {
	totals := models.TableStatsTotals{TotalTables: len(rows)}
	for _, r := range rows {
		totals.TotalRows += r.RowCount
		totals.TotalColumns += r.ColumnCount
		totals.TotalSizeBytes += r.SizeBytes
	}
	if totals.TotalSizeBytes > 0 {
		totals.TotalSizeDisplay = FormatBytes(totals.TotalSizeBytes)
	} else {
		totals.TotalSizeDisplay = models.SizeUnavailable
	}
	return totals
}
