// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package models

// EmployeePerformance is a support representative's sales over the range.
type EmployeePerformance struct {
	EmployeeID         int64   `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	JobTitle           string  `json:"job_title"`
	CustomersManaged   int     `json:"customers_managed"`
	TotalOrders        int     `json:"total_orders"`
	TotalSales         float64 `json:"total_sales"`
	AvgOrderValue      float64 `json:"avg_order_value"`
	RevenuePerCustomer float64 `json:"revenue_per_customer"`
}

// CustomerSatisfaction approximates satisfaction by repeat purchasing.
type CustomerSatisfaction struct {
	EmployeeID              int64   `json:"employee_id"`
	EmployeeName            string  `json:"employee_name"`
	TotalCustomers          int     `json:"total_customers"`
	TotalTransactions       int     `json:"total_transactions"`
	AvgTransactionValue     float64 `json:"avg_transaction_value"`
	TransactionsPerCustomer float64 `json:"transactions_per_customer"`
	RepeatCustomerPct       float64 `json:"repeat_customer_pct"`
}

// TerritoryPerformance is a representative's results in one country and state.
type TerritoryPerformance struct {
	EmployeeID           int64   `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	Country              string  `json:"country"`
	State                string  `json:"state"`
	CustomersInTerritory int     `json:"customers_in_territory"`
	OrdersInTerritory    int     `json:"orders_in_territory"`
	TerritoryRevenue     float64 `json:"territory_revenue"`
}

// EmployeeEfficiency summarises a representative's months with at least one order.
type EmployeeEfficiency struct {
	EmployeeID         int64   `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	ActiveMonths       int     `json:"active_months"`
	AvgMonthlyOrders   float64 `json:"avg_monthly_orders"`
	AvgMonthlyRevenue  float64 `json:"avg_monthly_revenue"`
	RevenueConsistency float64 `json:"revenue_consistency"`
}

// EmployeeTopCustomer is one of a representative's best customers.
type EmployeeTopCustomer struct {
	EmployeeID         int64   `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	CustomerName       string  `json:"customer_name"`
	CustomerCountry    string  `json:"customer_country"`
	CustomerOrders     int     `json:"customer_orders"`
	CustomerTotalSpent float64 `json:"customer_total_spent"`
	CustomerRank       int     `json:"customer_rank"`
}

// EmployeeSales is a representative's order and revenue totals with office location.
type EmployeeSales struct {
	EmployeeID      int64   `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Title           string  `json:"title"`
	City            string  `json:"city"`
	Country         string  `json:"country"`
	OrderCount      int     `json:"order_count"`
	UniqueCustomers int     `json:"unique_customers"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgOrderValue   float64 `json:"avg_order_value"`
}

// TeamMember is one node of the reporting hierarchy. ReportsTo is nil for the top manager.
type TeamMember struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Title        string `json:"title"`
	City         string `json:"city"`
	Country      string `json:"country"`
	ReportsTo    *int64 `json:"reports_to"`
	ManagerName  string `json:"manager_name"`
}

// CustomerManagement is the size and value of a representative's customer portfolio.
type CustomerManagement struct {
	EmployeeID         int64   `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	CustomerCount      int     `json:"customer_count"`
	CityCount          int     `json:"city_count"`
	CountryCount       int     `json:"country_count"`
	TotalCustomerValue float64 `json:"total_customer_value"`
	AvgCustomerValue   float64 `json:"avg_customer_value"`
}

// EmployeeProductivity is a representative's output per active day.
type EmployeeProductivity struct {
	EmployeeID     int64   `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	TotalOrders    int     `json:"total_orders"`
	TotalCustomers int     `json:"total_customers"`
	TotalRevenue   float64 `json:"total_revenue"`
	ActiveDays     int     `json:"active_days"`
	OrdersPerDay   float64 `json:"orders_per_day"`
	RevenuePerDay  float64 `json:"revenue_per_day"`
}
