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

// EmployeesRequest parameterises the Employees page. Zero values use the defaults.
type EmployeesRequest struct {
	Filter         models.Filter
	SalesMetric    shaping.EmployeeMetric
	TopPerEmployee int
}

// Employees renders sales agent performance, satisfaction, territories, efficiency, top
// customers, team structure and productivity.
func (s *Service) Employees(ctx context.Context, req EmployeesRequest) *Page {
	f := req.Filter
	metric := req.SalesMetric
	if metric == "" {
		metric = shaping.ByRevenue
	}
	topN := req.TopPerEmployee
	if topN <= 0 {
		topN = s.cfg.Analytics.TopPerEmployee
	}

	return s.render(ctx, PageEmployees, &f, []task{
		{name: "performance", title: "Sales Performance", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "employee performance", filterParams(f), func(ctx context.Context) ([]models.EmployeePerformance, error) {
				return s.db.GetEmployeePerformance(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.EmployeeSales(rows))
		}},
		{name: "sales", title: "Sales by Employee", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "employee sales", filterParams(f), func(ctx context.Context) ([]models.EmployeeSales, error) {
				return s.db.GetEmployeeSales(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			ranked, err := shaping.RankEmployeeSales(rows, metric)
			if err != nil {
				return Failure(err)
			}
			return Rows(ranked, charts.SalesShare(ranked))
		}},
		{name: "satisfaction", title: "Customer Satisfaction", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "customer satisfaction", filterParams(f), func(ctx context.Context) ([]models.CustomerSatisfaction, error) {
				return s.db.GetCustomerSatisfaction(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.Satisfaction(rows))
		}},
		{name: "territories", title: "Territorial Performance", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "territory performance", filterParams(f), func(ctx context.Context) ([]models.TerritoryPerformance, error) {
				return s.db.GetTerritoryPerformance(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.Territories(rows))
		}},
		{name: "efficiency", title: "Efficiency", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "employee efficiency", filterParams(f), func(ctx context.Context) ([]models.EmployeeEfficiency, error) {
				return s.db.GetEmployeeEfficiency(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.Efficiency(rows))
		}},
		{name: "top_customers", title: "Top Customers per Employee", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "employee top customers", filterParams(f, topN), func(ctx context.Context) ([]models.EmployeeTopCustomer, error) {
				return s.db.GetEmployeeTopCustomers(ctx, f, topN)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.TopCustomers(rows))
		}},
		{name: "hierarchy", title: "Team Hierarchy", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "team hierarchy", nil, s.db.GetTeamHierarchy)
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.Hierarchy(rows))
		}},
		{name: "management", title: "Customer Management", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "customer management", filterParams(f), func(ctx context.Context) ([]models.CustomerManagement, error) {
				return s.db.GetCustomerManagement(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.CustomerPortfolio(rows))
		}},
		{name: "productivity", title: "Productivity", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "employee productivity", filterParams(f), func(ctx context.Context) ([]models.EmployeeProductivity, error) {
				return s.db.GetEmployeeProductivity(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.Productivity(rows))
		}},
	})
}
