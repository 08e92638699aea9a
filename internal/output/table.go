// Package output shapes query results into the 2-D tables the host consumes.
package output

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Table is an ordered header plus rows of cells. A table without a header
// and with a single row carries a bare message or scalar result.
type Table struct {
	Header []string
	Rows   [][]interface{}
}

// Message returns a 1x1 table holding text — the shape the host receives in
// place of an empty result.
func Message(text string) *Table {
	return &Table{Rows: [][]interface{}{{text}}}
}

// Scalar returns a 1x1 table holding a single value.
func Scalar(v interface{}) *Table {
	return &Table{Rows: [][]interface{}{{v}}}
}

// Empty reports whether the table carries no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Grid returns the host-facing 2-D array: header row first when present,
// then one row per record.
func (t *Table) Grid() [][]interface{} {
	grid := make([][]interface{}, 0, len(t.Rows)+1)
	if len(t.Header) > 0 {
		header := make([]interface{}, len(t.Header))
		for i, h := range t.Header {
			header[i] = h
		}
		grid = append(grid, header)
	}
	return append(grid, t.Rows...)
}

// Clone returns a copy whose rows can be reshaped without touching the
// original. Cells are value types, so a row-level copy suffices.
func (t *Table) Clone() *Table {
	c := &Table{Header: append([]string(nil), t.Header...)}
	c.Rows = make([][]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append([]interface{}(nil), row...)
	}
	return c
}

// MapColumn rewrites every cell of the named column through fn. A table
// without that column is left untouched.
func (t *Table) MapColumn(name string, fn func(interface{}) interface{}) {
	idx := -1
	for i, h := range t.Header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for _, row := range t.Rows {
		row[idx] = fn(row[idx])
	}
}

// AddConstColumn appends a column holding the same value in every row.
func (t *Table) AddConstColumn(name string, value interface{}) {
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
}

// CellString renders a single cell for text output.
func CellString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
