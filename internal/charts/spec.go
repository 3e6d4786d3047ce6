// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package charts

// Kind is the chart type a client should draw.
type Kind string

const (
	KindBar           Kind = "bar"
	KindHorizontalBar Kind = "horizontal_bar"
	KindLine          Kind = "line"
	KindArea          Kind = "area"
	KindPie           Kind = "pie"
	KindScatter       Kind = "scatter"
	KindTreemap       Kind = "treemap"
	KindHeatmap       Kind = "heatmap"
	KindTable         Kind = "table"
)

// NoDataMessage annotates placeholder charts.
const NoDataMessage = "No data available"

// Color scales used by the dashboard.
const (
	ScaleViridis = "Viridis"
	ScaleBlues   = "Blues"
	ScaleReds    = "Reds"
	ScalePurples = "Purples"
	ScaleRdYlGn  = "RdYlGn"
)

// Point is one mark. Y carries the value for bars, lines, pies and treemaps; heatmaps put the
// row category in Y and the cell value in Z.
type Point struct {
	X      any      `json:"x"`
	Y      any      `json:"y"`
	Z      *float64 `json:"z,omitempty"`
	Size   float64  `json:"size,omitempty"`
	Color  any      `json:"color,omitempty"`
	Label  string   `json:"label,omitempty"`
	Parent string   `json:"parent,omitempty"`
}

// Series is a named group of points. Ungrouped charts have a single series with an empty name.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Spec is a declarative chart description.
type Spec struct {
	Kind       Kind     `json:"kind"`
	Title      string   `json:"title"`
	XTitle     string   `json:"x_title,omitempty"`
	YTitle     string   `json:"y_title,omitempty"`
	ColorScale string   `json:"color_scale,omitempty"`
	Hover      []string `json:"hover,omitempty"`
	Series     []Series `json:"series"`
	Columns    []string `json:"columns,omitempty"`
	Rows       [][]any  `json:"rows,omitempty"`
	Empty      bool     `json:"empty"`
	Annotation string   `json:"annotation,omitempty"`
}

// Axes carries the presentation fields shared by every builder.
type Axes struct {
	X          string
	Y          string
	ColorScale string
	Hover      []string
}

// Placeholder is the chart shown for an empty table.
func Placeholder(kind Kind, title string) Spec {
	return Spec{
		Kind:       kind,
		Title:      title,
		Series:     []Series{},
		Empty:      true,
		Annotation: NoDataMessage,
	}
}

func newSpec(kind Kind, title string, axes Axes) Spec {
	return Spec{
		Kind:       kind,
		Title:      title,
		XTitle:     axes.X,
		YTitle:     axes.Y,
		ColorScale: axes.ColorScale,
		Hover:      axes.Hover,
	}
}
