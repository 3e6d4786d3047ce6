// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package dashboard

import (
	"context"

	"github.com/tomtom215/groovify/internal/charts"
	"github.com/tomtom215/groovify/internal/models"
	"github.com/tomtom215/groovify/internal/shaping"
)

// Explorer renders the schema browser: tables, table statistics with totals, columns and
// foreign keys. Metadata is read live so that the explorer reflects the current schema.
func (s *Service) Explorer(ctx context.Context) *Page {
	return s.render(ctx, PageExplorer, nil, []task{
		{name: "tables", title: "Tables", run: func(ctx context.Context) Result {
			rows, err := s.db.ListTables(ctx)
			if err != nil {
				return Failure(err)
			}
			return Rows(rows)
		}},
		{name: "stats", title: "Table Statistics", run: func(ctx context.Context) Result {
			stats, err := s.TableStats(ctx)
			if err != nil {
				return Failure(err)
			}
			return Rows(stats, charts.TableSizes(stats)).WithSummary(shaping.TableTotals(stats))
		}},
		{name: "schema", title: "Schema", run: func(ctx context.Context) Result {
			rows, err := s.db.GetSchemaColumns(ctx)
			if err != nil {
				return Failure(err)
			}
			return Rows(rows)
		}},
		{name: "relationships", title: "Relationships", run: func(ctx context.Context) Result {
			rows, err := s.db.GetRelationships(ctx)
			if err != nil {
				return Failure(err)
			}
			return Rows(rows)
		}},
	})
}

// TableStats returns the statistics of every table, largest first, with display sizes.
func (s *Service) TableStats(ctx context.Context) ([]models.TableStats, error) {
	stats, err := s.db.GetTableStats(ctx)
	if err != nil {
		return nil, err
	}
	return shaping.ShapeTableStats(stats), nil
}

// Query runs a free-form read-only statement capped at the configured row limit. The error
// wraps database.ErrReadOnlyViolation when the statement is rejected.
func (s *Service) Query(ctx context.Context, query string) (*models.QueryResult, charts.Spec, error) {
	res, err := s.db.RunReadOnly(ctx, query, s.cfg.Explorer.ResultLimit)
	if err != nil {
		return nil, charts.Spec{}, err
	}
	return res, charts.QueryResult(*res), nil
}
