// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package charts

import "github.com/tomtom215/groovify/internal/models"

// EmployeeSales draws total sales per representative.
func EmployeeSales(rows []models.EmployeePerformance) Spec {
	return Build(KindBar, "Sales by Employee", rows, Mapping[models.EmployeePerformance]{
		X:     func(r models.EmployeePerformance) any { return r.EmployeeName },
		Y:     func(r models.EmployeePerformance) float64 { return r.TotalSales },
		Color: func(r models.EmployeePerformance) any { return r.TotalSales },
	}, Axes{X: "Employee", Y: "Sales ($)", ColorScale: ScaleViridis, Hover: []string{"customers_managed", "total_orders"}})
}

// SalesShare draws each employee's share of revenue.
func SalesShare(rows []models.EmployeeSales) Spec {
	return Pie("Revenue Share by Employee", rows,
		func(r models.EmployeeSales) string { return r.EmployeeName },
		func(r models.EmployeeSales) float64 { return r.TotalRevenue },
		Axes{Hover: []string{"order_count", "unique_customers"}})
}

// Satisfaction plots transactions per customer against the repeat customer ratio.
func Satisfaction(rows []models.CustomerSatisfaction) Spec {
	return Build(KindScatter, "Customer Satisfaction", rows, Mapping[models.CustomerSatisfaction]{
		X:     func(r models.CustomerSatisfaction) any { return r.TransactionsPerCustomer },
		Y:     func(r models.CustomerSatisfaction) float64 { return r.RepeatCustomerPct },
		Size:  func(r models.CustomerSatisfaction) float64 { return float64(r.TotalCustomers) },
		Label: func(r models.CustomerSatisfaction) string { return r.EmployeeName },
	}, Axes{X: "Transactions per Customer", Y: "Repeat Customers (%)"})
}

// Territories is a heatmap of revenue per employee and customer country.
func Territories(rows []models.TerritoryPerformance) Spec {
	return Heatmap("Territorial Performance", rows,
		func(r models.TerritoryPerformance) any { return r.Country },
		func(r models.TerritoryPerformance) any { return r.EmployeeName },
		func(r models.TerritoryPerformance) float64 { return r.TerritoryRevenue },
		Axes{X: "Country", Y: "Employee", ColorScale: ScaleBlues})
}

// Efficiency plots average monthly revenue against its consistency.
func Efficiency(rows []models.EmployeeEfficiency) Spec {
	return Build(KindScatter, "Efficiency", rows, Mapping[models.EmployeeEfficiency]{
		X:     func(r models.EmployeeEfficiency) any { return r.AvgMonthlyRevenue },
		Y:     func(r models.EmployeeEfficiency) float64 { return r.RevenueConsistency },
		Size:  func(r models.EmployeeEfficiency) float64 { return r.AvgMonthlyOrders },
		Label: func(r models.EmployeeEfficiency) string { return r.EmployeeName },
	}, Axes{X: "Average Monthly Revenue ($)", Y: "Revenue Consistency", Hover: []string{"active_months"}})
}

// TopCustomers draws the best customers of every employee, one series per employee.
func TopCustomers(rows []models.EmployeeTopCustomer) Spec {
	return Build(KindBar, "Top Customers by Employee", rows, Mapping[models.EmployeeTopCustomer]{
		X:     func(r models.EmployeeTopCustomer) any { return r.CustomerName },
		Y:     func(r models.EmployeeTopCustomer) float64 { return r.CustomerTotalSpent },
		Group: func(r models.EmployeeTopCustomer) string { return r.EmployeeName },
	}, Axes{X: "Customer", Y: "Spent ($)", Hover: []string{"customer_rank", "customer_orders"}})
}

// Hierarchy nests employees under their manager.
func Hierarchy(rows []models.TeamMember) Spec {
	return Treemap("Team Hierarchy", rows,
		func(r models.TeamMember) string { return r.EmployeeName },
		func(r models.TeamMember) string { return r.ManagerName },
		func(models.TeamMember) float64 { return 1 },
		Axes{Hover: []string{"title", "city"}})
}

// CustomerPortfolio draws the customers managed by each representative.
func CustomerPortfolio(rows []models.CustomerManagement) Spec {
	return Build(KindBar, "Customer Management", rows, Mapping[models.CustomerManagement]{
		X:     func(r models.CustomerManagement) any { return r.EmployeeName },
		Y:     func(r models.CustomerManagement) float64 { return float64(r.CustomerCount) },
		Color: func(r models.CustomerManagement) any { return r.CountryCount },
	}, Axes{X: "Employee", Y: "Customers", ColorScale: ScaleBlues, Hover: []string{"avg_customer_value"}})
}

// Productivity draws revenue per active day.
func Productivity(rows []models.EmployeeProductivity) Spec {
	return Build(KindBar, "Productivity", rows, Mapping[models.EmployeeProductivity]{
		X:     func(r models.EmployeeProductivity) any { return r.EmployeeName },
		Y:     func(r models.EmployeeProductivity) float64 { return r.RevenuePerDay },
		Color: func(r models.EmployeeProductivity) any { return r.OrdersPerDay },
	}, Axes{X: "Employee", Y: "Revenue per Active Day ($)", ColorScale: ScalePurples})
}
