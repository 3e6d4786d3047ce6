// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"database/sql"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/duckdb/duckdb-go/v2"
)

// The two engines return aggregates in different Go types: DuckDB yields DECIMAL, HUGEINT
// and DOUBLE; lib/pq yields NUMERIC as text. The scanners below accept all of them.

type number interface {
	~int | ~int64 | ~float64
}

// numScanner scans any numeric column into *T. NULL scans as zero and integer targets
// are rounded to the nearest value.
type numScanner[T number] struct {
	dst *T
}

func num[T number](dst *T) sql.Scanner { return numScanner[T]{dst: dst} }

func (s numScanner[T]) Scan(src any) error {
	f, ok, err := toFloat(src)
	if err != nil {
		return err
	}
	if !ok {
		*s.dst = 0
		return nil
	}
	var zero T
	switch any(zero).(type) {
	case float64:
		*s.dst = T(f)
	default:
		*s.dst = T(math.Round(f))
	}
	return nil
}

// optNumScanner scans a nullable numeric column, leaving *dst nil on NULL.
type optNumScanner[T number] struct {
	dst **T
}

func optNum[T number](dst **T) sql.Scanner { return optNumScanner[T]{dst: dst} }

func (s optNumScanner[T]) Scan(src any) error {
	if src == nil {
		*s.dst = nil
		return nil
	}
	v := new(T)
	if err := (numScanner[T]{dst: v}).Scan(src); err != nil {
		return err
	}
	*s.dst = v
	return nil
}

// strScanner scans a text column, NULL becoming the empty string.
type strScanner struct {
	dst *string
}

func str(dst *string) sql.Scanner { return strScanner{dst: dst} }

func (s strScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s.dst = ""
	case string:
		*s.dst = v
	case []byte:
		*s.dst = string(v)
	case time.Time:
		*s.dst = v.Format(time.RFC3339)
	default:
		*s.dst = fmt.Sprint(v)
	}
	return nil
}

// toFloat converts a driver value to float64. ok is false for NULL.
func toFloat(src any) (f float64, ok bool, err error) {
	switch v := src.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int16:
		return float64(v), true, nil
	case int8:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	case uint32:
		return float64(v), true, nil
	case uint16:
		return float64(v), true, nil
	case uint8:
		return float64(v), true, nil
	case bool:
		if v {
			return 1, true, nil
		}
		return 0, true, nil
	case *big.Int:
		if v == nil {
			return 0, false, nil
		}
		f, _ := new(big.Float).SetInt(v).Float64()
		return f, true, nil
	case duckdb.Decimal:
		return v.Float64(), true, nil
	case []byte:
		return parseFloat(string(v))
	case string:
		return parseFloat(v)
	default:
		return 0, false, fmt.Errorf("cannot scan %T into a number", src)
	}
}

func parseFloat(s string) (float64, bool, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("cannot parse %q as a number: %w", s, err)
	}
	return f, true, nil
}

// normalizeValue converts a driver value into a JSON friendly form for the free-form explorer.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case *big.Int:
		if x == nil {
			return nil
		}
		if x.IsInt64() {
			return x.Int64()
		}
		return x.String()
	case duckdb.Decimal:
		return x.Float64()
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case float32:
		return normalizeValue(float64(x))
	case map[string]any, []any, string, bool, int64, int32, int16, int8, int,
		uint64, uint32, uint16, uint8:
		return x
	default:
		return fmt.Sprint(x)
	}
}
