// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package charts

// Mapping selects the columns of a row type. X and Y are required. Group splits the rows
// into one series per distinct value, in order of first appearance.
type Mapping[T any] struct {
	X     func(T) any
	Y     func(T) float64
	Size  func(T) float64
	Color func(T) any
	Label func(T) string
	Group func(T) string
}

// Build maps rows to a bar, line, area or scatter chart.
func Build[T any](kind Kind, title string, rows []T, m Mapping[T], axes Axes) Spec {
	if len(rows) == 0 {
		return Placeholder(kind, title)
	}

	spec := newSpec(kind, title, axes)
	index := make(map[string]int)
	for _, r := range rows {
		name := ""
		if m.Group != nil {
			name = m.Group(r)
		}
		i, ok := index[name]
		if !ok {
			i = len(spec.Series)
			index[name] = i
			spec.Series = append(spec.Series, Series{Name: name})
		}

		p := Point{X: m.X(r), Y: m.Y(r)}
		if m.Size != nil {
			p.Size = m.Size(r)
		}
		if m.Color != nil {
			p.Color = m.Color(r)
		}
		if m.Label != nil {
			p.Label = m.Label(r)
		}
		spec.Series[i].Points = append(spec.Series[i].Points, p)
	}
	return spec
}

// Pie maps rows to pie slices. Rows with a non-positive value are dropped, and a pie without
// slices is a placeholder.
func Pie[T any](title string, rows []T, name func(T) string, value func(T) float64, axes Axes) Spec {
	points := make([]Point, 0, len(rows))
	for _, r := range rows {
		if v := value(r); v > 0 {
			points = append(points, Point{X: name(r), Y: v})
		}
	}
	if len(points) == 0 {
		return Placeholder(KindPie, title)
	}
	spec := newSpec(KindPie, title, axes)
	spec.Series = []Series{{Points: points}}
	return spec
}

// Heatmap maps rows to cells keyed by column x and row y.
func Heatmap[T any](title string, rows []T, x, y func(T) any, z func(T) float64, axes Axes) Spec {
	if len(rows) == 0 {
		return Placeholder(KindHeatmap, title)
	}
	spec := newSpec(KindHeatmap, title, axes)
	points := make([]Point, len(rows))
	for i, r := range rows {
		v := z(r)
		points[i] = Point{X: x(r), Y: y(r), Z: &v}
	}
	spec.Series = []Series{{Points: points}}
	return spec
}

// Treemap maps rows to labelled tiles nested under parent. Root tiles have an empty parent.
func Treemap[T any](title string, rows []T, label, parent func(T) string, value func(T) float64, axes Axes) Spec {
	if len(rows) == 0 {
		return Placeholder(KindTreemap, title)
	}
	spec := newSpec(KindTreemap, title, axes)
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{X: label(r), Y: value(r), Label: label(r), Parent: parent(r)}
	}
	spec.Series = []Series{{Points: points}}
	return spec
}

// Table wraps a generic result set. A table without columns is a placeholder; a table with
// columns but no rows keeps its header.
func Table(title string, columns []string, rows [][]any) Spec {
	if len(columns) == 0 {
		return Placeholder(KindTable, title)
	}
	spec := newSpec(KindTable, title, Axes{})
	spec.Series = []Series{}
	spec.Columns = columns
	spec.Rows = rows
	if rows == nil {
		spec.Rows = [][]any{}
	}
	if len(rows) == 0 {
		spec.Empty = true
		spec.Annotation = NoDataMessage
	}
	return spec
}
