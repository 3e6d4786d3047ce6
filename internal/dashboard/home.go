// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package dashboard

import (
	"context"

	"github.com/tomtom215/groovify/internal/models"
)

// AppSummary describes the application on the Home page.
func AppSummary() models.AppSummary {
	return models.AppSummary{
		Name:        "Groovify",
		Version:     Version,
		Description: "Sales analytics for a digital music store: finance, customers, catalogue, staff and alerts.",
		Pages:       PageNames,
	}
}

// Home renders the application summary, the database description and the headline KPIs over
// the full invoice history.
func (s *Service) Home(ctx context.Context) *Page {
	return s.render(ctx, PageHome, nil, []task{
		{name: "summary", title: "About", run: func(context.Context) Result {
			return Single(AppSummary(), true)
		}},
		{name: "database", title: "Database", run: func(ctx context.Context) Result {
			info, err := load(ctx, s, "database info", nil, s.db.GetDatabaseInfo)
			if err != nil {
				return Failure(err)
			}
			return Single(info, true)
		}},
		{name: "kpis", title: "Key Figures", run: func(ctx context.Context) Result {
			bounds, err := s.DateBounds(ctx)
			if err != nil {
				return Failure(err)
			}
			f, ok := bounds.Filter(s.Today())
			if !ok {
				return Single(nil, false)
			}
			kpis, err := s.financeKPIs(ctx, f)
			if err != nil {
				return Failure(err)
			}
			return Single(kpis, kpis.TotalInvoices > 0).WithSummary(f)
		}},
	})
}
