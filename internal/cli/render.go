// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package cli

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/groovify/internal/dashboard"
	"github.com/tomtom215/groovify/internal/models"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var (
	pageHeading    = color.New(color.FgCyan, color.Bold)
	sectionHeading = color.New(color.FgYellow)
	errorText      = color.New(color.FgRed)
	faintText      = color.New(color.Faint)
)

// printer writes results as tables or as indented JSON.
type printer struct {
	out     io.Writer
	format  string
	maxRows int
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// page prints every section of a rendered page.
func (p *printer) page(page *dashboard.Page) error {
	if p.format == formatJSON {
		return p.json(page)
	}

	pageHeading.Fprintf(p.out, "%s\n", strings.ToUpper(page.Name))
	if f := page.Filter; f != nil {
		faintText.Fprintf(p.out, "%s to %s, as of %s\n", f.Start(), f.End(), f.AsOfParam())
	}

	for _, s := range page.Sections {
		fmt.Fprintln(p.out)
		sectionHeading.Fprintf(p.out, "%s\n", s.Title)

		switch s.Status {
		case dashboard.StatusError:
			errorText.Fprintf(p.out, "unavailable: %s\n", s.Error)
			continue
		case dashboard.StatusEmpty:
			faintText.Fprintln(p.out, "no data")
			continue
		}

		if s.Summary != nil {
			p.table(tabulate(s.Summary))
		}
		if s.Rows != nil {
			p.table(tabulate(s.Rows))
		}
	}

	if failed := page.Failed(); failed > 0 {
		fmt.Fprintln(p.out)
		errorText.Fprintf(p.out, "%d section(s) failed\n", failed)
	}
	return nil
}

// queryResult prints an explorer result.
func (p *printer) queryResult(res *models.QueryResult) error {
	if p.format == formatJSON {
		return p.json(res)
	}

	rows := make([][]string, len(res.Rows))
	for i, row := range res.Rows {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = cell(reflect.ValueOf(v))
		}
	}
	p.table(res.Columns, rows)

	summary := fmt.Sprintf("%d row(s) in %d ms", res.RowCount, res.DurationMS)
	if res.Truncated {
		summary += ", truncated at the result limit"
	}
	faintText.Fprintln(p.out, summary)
	return nil
}

// table renders a header and rows, cut at maxRows.
func (p *printer) table(header []string, rows [][]string) {
	if len(header) == 0 {
		faintText.Fprintln(p.out, "no rows")
		return
	}

	hidden := 0
	if p.maxRows > 0 && len(rows) > p.maxRows {
		hidden = len(rows) - p.maxRows
		rows = rows[:p.maxRows]
	}

	t := tablewriter.NewWriter(p.out)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.AppendBulk(rows)
	t.Render()

	if hidden > 0 {
		faintText.Fprintf(p.out, "... %d more row(s)\n", hidden)
	}
}

// tabulate turns a slice of structs, a struct or a map into a header and string rows. Struct
// columns are named by their json tags and follow field order.
func tabulate(v any) ([]string, [][]string) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elem := rv.Type().Elem()
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct || elem == timeType {
			rows := make([][]string, rv.Len())
			for i := range rows {
				rows[i] = []string{cell(rv.Index(i))}
			}
			return []string{"value"}, rows
		}
		fields := columns(elem)
		rows := make([][]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item := reflect.Indirect(rv.Index(i))
			if !item.IsValid() {
				continue
			}
			rows = append(rows, structRow(item, fields))
		}
		return header(fields), rows

	case reflect.Struct:
		fields := columns(rv.Type())
		return header(fields), [][]string{structRow(rv, fields)}

	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		values := make(map[string]string, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			values[k] = cell(iter.Value())
		}
		sort.Strings(keys)
		rows := make([][]string, len(keys))
		for i, k := range keys {
			rows[i] = []string{k, values[k]}
		}
		return []string{"key", "value"}, rows

	default:
		return []string{"value"}, [][]string{{cell(rv)}}
	}
}

var timeType = reflect.TypeOf(time.Time{})

// column is a printable struct field, possibly inside an embedded struct.
type column struct {
	name  string
	index []int
}

func columns(t reflect.Type) []column {
	var out []column
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out = append(out, column{name: name, index: f.Index})
	}
	return out
}

func header(fields []column) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

func structRow(v reflect.Value, fields []column) []string {
	row := make([]string, len(fields))
	for i, f := range fields {
		fv, err := v.FieldByIndexErr(f.index)
		if err != nil {
			continue
		}
		row[i] = cell(fv)
	}
	return row
}

// cell formats one value: dates without a time of day as YYYY-MM-DD, floats with two
// decimals, nil as an empty string and composite values as JSON.
func cell(v reflect.Value) string {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return ""
	}

	if t, ok := v.Interface().(time.Time); ok {
		if t.Equal(models.TruncateDay(t)) {
			return t.Format(models.DateLayout)
		}
		return t.Format(time.RFC3339)
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', 2, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return fmt.Sprint(v.Interface())
		}
		return string(b)
	}
}
