// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package models

// SizeUnavailable is displayed when a table size cannot be determined.
const SizeUnavailable = "N/A"

// TableStats describes one table of the active schema. TableSize is the display form of
// SizeBytes, or "N/A" when the size lookup failed.
type TableStats struct {
	TableName   string `json:"table_name"`
	RowCount    int64  `json:"row_count"`
	ColumnCount int    `json:"column_count"`
	TableSize   string `json:"table_size"`
	SizeBytes   int64  `json:"size_bytes"`
}

// TableStatsTotals sums TableStats over the whole schema.
type TableStatsTotals struct {
	TotalTables      int    `json:"total_tables"`
	TotalRows        int64  `json:"total_rows"`
	TotalColumns     int    `json:"total_columns"`
	TotalSizeBytes   int64  `json:"total_size_bytes"`
	TotalSizeDisplay string `json:"total_size_display"`
}

// SchemaColumn is one column of one table.
type SchemaColumn struct {
	TableName     string  `json:"table_name"`
	ColumnName    string  `json:"column_name"`
	DataType      string  `json:"data_type"`
	IsNullable    string  `json:"is_nullable"`
	ColumnDefault *string `json:"column_default"`
}

// Relationship is one foreign key column pair.
type Relationship struct {
	SourceTable    string `json:"source_table"`
	SourceColumn   string `json:"source_column"`
	TargetTable    string `json:"target_table"`
	TargetColumn   string `json:"target_column"`
	ConstraintName string `json:"constraint_name"`
}

// QueryResult is the generic table returned by a free-form query. Values are normalised
// to JSON friendly types.
type QueryResult struct {
	Columns    []string `json:"columns"`
	Rows       [][]any  `json:"rows"`
	RowCount   int      `json:"row_count"`
	Truncated  bool     `json:"truncated"`
	DurationMS int64    `json:"duration_ms"`
}
