// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/groovify/internal/models"
)

// Employee queries attribute a customer's invoices to the customer's support representative
// (customer.support_rep_id).

// GetEmployeePerformance returns every employee's sales over the range, best first.
func (db *DB) GetEmployeePerformance(ctx context.Context, f models.Filter) ([]models.EmployeePerformance, error) {
	query := `
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.title AS job_title,
			COUNT(DISTINCT c.customer_id) AS customers_managed,
			COUNT(DISTINCT i.invoice_id) AS total_orders,
			COALESCE(ROUND(SUM(i.total), 2), 0) AS total_sales,
			COALESCE(ROUND(AVG(i.total), 2), 0) AS avg_order_value,
			COALESCE(ROUND(SUM(i.total) / NULLIF(COUNT(DISTINCT c.customer_id), 0), 2), 0) AS revenue_per_customer
		FROM employee e
		LEFT JOIN customer c ON e.employee_id = c.support_rep_id
		LEFT JOIN invoice i ON c.customer_id = i.customer_id
			AND ` + dateRangeClause + `
		GROUP BY e.employee_id, e.first_name, e.last_name, e.title
		ORDER BY total_sales DESC, e.employee_id`

	return queryAndScan(ctx, db, "employee performance", query, rangeArgs(f),
		func(rows *sql.Rows) (models.EmployeePerformance, error) {
			var p models.EmployeePerformance
			err := rows.Scan(num(&p.EmployeeID), str(&p.EmployeeName), str(&p.JobTitle),
				num(&p.CustomersManaged), num(&p.TotalOrders), num(&p.TotalSales),
				num(&p.AvgOrderValue), num(&p.RevenuePerCustomer))
			return p, err
		})
}

// GetCustomerSatisfaction approximates satisfaction per representative by repeat purchasing.
// Employees without customers are omitted.
func (db *DB) GetCustomerSatisfaction(ctx context.Context, f models.Filter) ([]models.CustomerSatisfaction, error) {
	query := `
		WITH per_customer AS (
			SELECT
				c.support_rep_id,
				c.customer_id,
				COUNT(i.invoice_id) AS orders,
				SUM(i.total) AS spent
			FROM customer c
			LEFT JOIN invoice i ON c.customer_id = i.customer_id
				AND ` + dateRangeClause + `
			GROUP BY c.support_rep_id, c.customer_id
		)
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			COUNT(pc.customer_id) AS total_customers,
			COALESCE(SUM(pc.orders), 0) AS total_transactions,
			COALESCE(ROUND(SUM(pc.spent) / NULLIF(SUM(pc.orders), 0), 2), 0) AS avg_transaction_value,
			ROUND(SUM(pc.orders) * 1.0 / NULLIF(COUNT(pc.customer_id), 0), 2) AS transactions_per_customer,
			ROUND(100.0 * SUM(CASE WHEN pc.orders > 1 THEN 1 ELSE 0 END)
				/ NULLIF(COUNT(pc.customer_id), 0), 1) AS repeat_customer_pct
		FROM employee e
		JOIN per_customer pc ON pc.support_rep_id = e.employee_id
		GROUP BY e.employee_id, e.first_name, e.last_name
		ORDER BY transactions_per_customer DESC, e.employee_id`

	return queryAndScan(ctx, db, "customer satisfaction", query, rangeArgs(f),
		func(rows *sql.Rows) (models.CustomerSatisfaction, error) {
			var s models.CustomerSatisfaction
			err := rows.Scan(num(&s.EmployeeID), str(&s.EmployeeName), num(&s.TotalCustomers),
				num(&s.TotalTransactions), num(&s.AvgTransactionValue),
				num(&s.TransactionsPerCustomer), num(&s.RepeatCustomerPct))
			return s, err
		})
}

// GetTerritoryPerformance returns each representative's results per customer country and state.
func (db *DB) GetTerritoryPerformance(ctx context.Context, f models.Filter) ([]models.TerritoryPerformance, error) {
	query := `
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			c.country,
			c.state,
			COUNT(DISTINCT c.customer_id) AS customers_in_territory,
			COUNT(DISTINCT i.invoice_id) AS orders_in_territory,
			COALESCE(ROUND(SUM(i.total), 2), 0) AS territory_revenue
		FROM employee e
		JOIN customer c ON e.employee_id = c.support_rep_id
		LEFT JOIN invoice i ON c.customer_id = i.customer_id
			AND ` + dateRangeClause + `
		GROUP BY e.employee_id, e.first_name, e.last_name, c.country, c.state
		ORDER BY territory_revenue DESC, e.employee_id, c.country, c.state`

	return queryAndScan(ctx, db, "territory performance", query, rangeArgs(f),
		func(rows *sql.Rows) (models.TerritoryPerformance, error) {
			var t models.TerritoryPerformance
			err := rows.Scan(num(&t.EmployeeID), str(&t.EmployeeName), str(&t.Country), str(&t.State),
				num(&t.CustomersInTerritory), num(&t.OrdersInTerritory), num(&t.TerritoryRevenue))
			return t, err
		})
}

// GetEmployeeEfficiency summarises each representative's months with at least one order:
// averages and the standard deviation of monthly revenue.
func (db *DB) GetEmployeeEfficiency(ctx context.Context, f models.Filter) ([]models.EmployeeEfficiency, error) {
	query := `
		WITH monthly_performance AS (
			SELECT
				e.employee_id,
				e.first_name || ' ' || e.last_name AS employee_name,
				DATE_TRUNC('month', i.invoice_date) AS month,
				COUNT(DISTINCT i.invoice_id) AS monthly_orders,
				SUM(i.total) AS monthly_revenue
			FROM employee e
			JOIN customer c ON e.employee_id = c.support_rep_id
			JOIN invoice i ON c.customer_id = i.customer_id
			WHERE ` + dateRangeClause + `
			GROUP BY e.employee_id, e.first_name, e.last_name, DATE_TRUNC('month', i.invoice_date)
		)
		SELECT
			employee_id,
			employee_name,
			COUNT(*) AS active_months,
			ROUND(AVG(monthly_orders), 2) AS avg_monthly_orders,
			ROUND(AVG(monthly_revenue), 2) AS avg_monthly_revenue,
			ROUND(STDDEV(monthly_revenue), 2) AS revenue_consistency
		FROM monthly_performance
		GROUP BY employee_id, employee_name
		ORDER BY avg_monthly_revenue DESC, employee_id`

	return queryAndScan(ctx, db, "employee efficiency", query, rangeArgs(f),
		func(rows *sql.Rows) (models.EmployeeEfficiency, error) {
			var e models.EmployeeEfficiency
			err := rows.Scan(num(&e.EmployeeID), str(&e.EmployeeName), num(&e.ActiveMonths),
				num(&e.AvgMonthlyOrders), num(&e.AvgMonthlyRevenue), num(&e.RevenueConsistency))
			return e, err
		})
}

// GetEmployeeTopCustomers returns up to topN best customers per representative. Ties share
// a rank, so a representative can list more than topN customers.
func (db *DB) GetEmployeeTopCustomers(ctx context.Context, f models.Filter, topN int) ([]models.EmployeeTopCustomer, error) {
	query := `
		WITH ranked AS (
			SELECT
				e.employee_id,
				e.first_name || ' ' || e.last_name AS employee_name,
				c.customer_id,
				c.first_name || ' ' || c.last_name AS customer_name,
				c.country AS customer_country,
				COUNT(i.invoice_id) AS customer_orders,
				ROUND(SUM(i.total), 2) AS customer_total_spent,
				RANK() OVER (PARTITION BY e.employee_id ORDER BY SUM(i.total) DESC) AS customer_rank
			FROM employee e
			JOIN customer c ON e.employee_id = c.support_rep_id
			JOIN invoice i ON c.customer_id = i.customer_id
			WHERE ` + dateRangeClause + `
			GROUP BY e.employee_id, e.first_name, e.last_name, c.customer_id, c.first_name, c.last_name, c.country
			HAVING SUM(i.total) > 0
		)
		SELECT
			employee_id, employee_name, customer_name, customer_country,
			customer_orders, customer_total_spent, customer_rank
		FROM ranked
		WHERE customer_rank <= ?
		ORDER BY employee_id, customer_rank, customer_id`

	args := append(rangeArgs(f), topN)

	return queryAndScan(ctx, db, "employee top customers", query, args,
		func(rows *sql.Rows) (models.EmployeeTopCustomer, error) {
			var t models.EmployeeTopCustomer
			err := rows.Scan(num(&t.EmployeeID), str(&t.EmployeeName), str(&t.CustomerName),
				str(&t.CustomerCountry), num(&t.CustomerOrders), num(&t.CustomerTotalSpent),
				num(&t.CustomerRank))
			return t, err
		})
}

// GetEmployeeSales returns order and revenue totals per employee with office location.
func (db *DB) GetEmployeeSales(ctx context.Context, f models.Filter) ([]models.EmployeeSales, error) {
	query := `
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.title,
			e.city,
			e.country,
			COUNT(DISTINCT i.invoice_id) AS order_count,
			COUNT(DISTINCT i.customer_id) AS unique_customers,
			COALESCE(ROUND(SUM(i.total), 2), 0) AS total_revenue,
			COALESCE(ROUND(AVG(i.total), 2), 0) AS avg_order_value
		FROM employee e
		LEFT JOIN customer c ON e.employee_id = c.support_rep_id
		LEFT JOIN invoice i ON c.customer_id = i.customer_id
			AND ` + dateRangeClause + `
		GROUP BY e.employee_id, e.first_name, e.last_name, e.title, e.city, e.country
		ORDER BY total_revenue DESC, e.employee_id`

	return queryAndScan(ctx, db, "employee sales", query, rangeArgs(f),
		func(rows *sql.Rows) (models.EmployeeSales, error) {
			var s models.EmployeeSales
			err := rows.Scan(num(&s.EmployeeID), str(&s.EmployeeName), str(&s.Title), str(&s.City),
				str(&s.Country), num(&s.OrderCount), num(&s.UniqueCustomers), num(&s.TotalRevenue),
				num(&s.AvgOrderValue))
			return s, err
		})
}

// GetTeamHierarchy lists employees with their managers, top of the hierarchy first.
func (db *DB) GetTeamHierarchy(ctx context.Context) ([]models.TeamMember, error) {
	query := `
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.title,
			e.city,
			e.country,
			e.reports_to,
			m.first_name || ' ' || m.last_name AS manager_name
		FROM employee e
		LEFT JOIN employee m ON e.reports_to = m.employee_id
		ORDER BY e.reports_to NULLS FIRST, e.employee_id`

	return queryAndScan(ctx, db, "team hierarchy", query, nil,
		func(rows *sql.Rows) (models.TeamMember, error) {
			var m models.TeamMember
			err := rows.Scan(num(&m.EmployeeID), str(&m.EmployeeName), str(&m.Title), str(&m.City),
				str(&m.Country), optNum(&m.ReportsTo), str(&m.ManagerName))
			return m, err
		})
}

// GetCustomerManagement returns the size, spread and value of each employee's portfolio.
// avg_customer_value is revenue in range per managed customer.
func (db *DB) GetCustomerManagement(ctx context.Context, f models.Filter) ([]models.CustomerManagement, error) {
	query := `
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			COUNT(DISTINCT c.customer_id) AS customer_count,
			COUNT(DISTINCT c.city) AS city_count,
			COUNT(DISTINCT c.country) AS country_count,
			COALESCE(ROUND(SUM(i.total), 2), 0) AS total_customer_value,
			COALESCE(ROUND(SUM(i.total) / NULLIF(COUNT(DISTINCT c.customer_id), 0), 2), 0) AS avg_customer_value
		FROM employee e
		LEFT JOIN customer c ON e.employee_id = c.support_rep_id
		LEFT JOIN invoice i ON c.customer_id = i.customer_id
			AND ` + dateRangeClause + `
		GROUP BY e.employee_id, e.first_name, e.last_name
		ORDER BY total_customer_value DESC, e.employee_id`

	return queryAndScan(ctx, db, "customer management", query, rangeArgs(f),
		func(rows *sql.Rows) (models.CustomerManagement, error) {
			var m models.CustomerManagement
			err := rows.Scan(num(&m.EmployeeID), str(&m.EmployeeName), num(&m.CustomerCount),
				num(&m.CityCount), num(&m.CountryCount), num(&m.TotalCustomerValue), num(&m.AvgCustomerValue))
			return m, err
		})
}

// GetEmployeeProductivity returns each employee's orders and revenue per active selling day.
func (db *DB) GetEmployeeProductivity(ctx context.Context, f models.Filter) ([]models.EmployeeProductivity, error) {
	query := `
		WITH stats AS (
			SELECT
				e.employee_id,
				e.first_name || ' ' || e.last_name AS employee_name,
				COUNT(DISTINCT i.invoice_id) AS total_orders,
				COUNT(DISTINCT c.customer_id) AS total_customers,
				COALESCE(SUM(i.total), 0) AS total_revenue,
				COUNT(DISTINCT CAST(i.invoice_date AS DATE)) AS active_days
			FROM employee e
			LEFT JOIN customer c ON e.employee_id = c.support_rep_id
			LEFT JOIN invoice i ON c.customer_id = i.customer_id
				AND ` + dateRangeClause + `
			GROUP BY e.employee_id, e.first_name, e.last_name
		)
		SELECT
			employee_id,
			employee_name,
			total_orders,
			total_customers,
			ROUND(total_revenue, 2) AS total_revenue,
			active_days,
			CASE WHEN active_days > 0 THEN ROUND(total_orders * 1.0 / active_days, 2) ELSE 0 END AS orders_per_day,
			CASE WHEN active_days > 0 THEN ROUND(total_revenue / active_days, 2) ELSE 0 END AS revenue_per_day
		FROM stats
		ORDER BY revenue_per_day DESC, employee_id`

	return queryAndScan(ctx, db, "employee productivity", query, rangeArgs(f),
		func(rows *sql.Rows) (models.EmployeeProductivity, error) {
			var p models.EmployeeProductivity
			err := rows.Scan(num(&p.EmployeeID), str(&p.EmployeeName), num(&p.TotalOrders),
				num(&p.TotalCustomers), num(&p.TotalRevenue), num(&p.ActiveDays),
				num(&p.OrdersPerDay), num(&p.RevenuePerDay))
			return p, err
		})
}
