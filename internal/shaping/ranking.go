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

// RankBy returns a copy of rows sorted by key, highest first. Rows with equal keys keep
// their input order.
func RankBy[T any](rows []T, key func(T) float64) []T {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
	return out
}

// TopN returns the first n rows. n <= 0 returns every row.
func TopN[T any](rows []T, n int) []T {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}

// ClientMetric selects the ranking of the top clients table.
type ClientMetric string

const (
	BySpending   ClientMetric = "spending"
	ByListening  ClientMetric = "listening"
	ByDiversity  ClientMetric = "diversity"
	ByEngagement ClientMetric = "engagement"
)

// Valid reports whether m is a known client metric.
func (m ClientMetric) Valid() bool {
	switch m {
	case BySpending, ByListening, ByDiversity, ByEngagement:
		return true
	}
	return false
}

// RankTopClients profiles the clients, ranks them on metric and keeps the first n with a
// 1-based rank. Engagement ranks on the unrounded order frequency.
func RankTopClients(rows []models.TopClient, metric ClientMetric, n int) ([]models.TopClient, error) {
	var key func(models.TopClient) float64
	switch metric {
	case BySpending:
		key = func(c models.TopClient) float64 { return c.TotalSpending }
	case ByListening:
		key = func(c models.TopClient) float64 { return c.TotalMinutes }
	case ByDiversity:
		key = func(c models.TopClient) float64 { return c.DiversityScore }
	case ByEngagement:
		key = func(c models.TopClient) float64 {
			return OrderFrequency(c.NbOrders, c.FirstOrder, c.LastOrder)
		}
	default:
		return nil, fmt.Errorf("%w: unknown client metric %q", models.ErrInvalidFilter, metric)
	}

	ranked := TopN(RankBy(ProfileTopClients(rows), key), n)
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

// EmployeeMetric selects the ranking of the employee sales table.
type EmployeeMetric string

const (
	ByRevenue       EmployeeMetric = "revenue"
	ByVolume        EmployeeMetric = "volume"
	ByCustomerCount EmployeeMetric = "customers"
	ByOrderValue    EmployeeMetric = "order_value"
)

// Valid reports whether m is a known employee metric.
func (m EmployeeMetric) Valid() bool {
	switch m {
	case ByRevenue, ByVolume, ByCustomerCount, ByOrderValue:
		return true
	}
	return false
}

// RankEmployeeSales sorts employee sales on metric, highest first.
func RankEmployeeSales(rows []models.EmployeeSales, metric EmployeeMetric) ([]models.EmployeeSales, error) {
	switch metric {
	case ByRevenue:
		return RankBy(rows, func(s models.EmployeeSales) float64 { return s.TotalRevenue }), nil
	case ByVolume:
		return RankBy(rows, func(s models.EmployeeSales) float64 { return float64(s.OrderCount) }), nil
	case ByCustomerCount:
		return RankBy(rows, func(s models.EmployeeSales) float64 { return float64(s.UniqueCustomers) }), nil
	case ByOrderValue:
		return RankBy(rows, func(s models.EmployeeSales) float64 { return s.AvgOrderValue }), nil
	}
	return nil, fmt.Errorf("%w: unknown employee metric %q", models.ErrInvalidFilter, metric)
}
