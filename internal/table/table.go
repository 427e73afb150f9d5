// Package table implements ordered, named-column tables with totals,
// text rendering, and CSV/XLSX round-tripping.
package table

import (
	"github.com/rotisserie/eris"
)

// Column is a named sequence of values. A numeric column holds float64
// in every cell; anything else is treated as text.
type Column struct {
	Name   string
	Values []any
}

// IsNumeric reports whether every cell in the column is a float64.
// Empty columns are not numeric.
func (c Column) IsNumeric() bool {
	if len(c.Values) == 0 {
		return false
	}
	for _, v := range c.Values {
		if _, ok := v.(float64); !ok {
			return false
		}
	}
	return true
}

// Table is an ordered collection of equal-length columns.
type Table struct {
	Columns []Column
}

// NumRows returns the row count, taken from the first column.
func (t Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Names returns the column names in order.
func (t Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t Table) Column(name string) (Column, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, eris.Errorf("table: column %q not found", name)
}

// NumericColumns returns the names of all numeric columns in order.
func (t Table) NumericColumns() []string {
	var names []string
	for _, c := range t.Columns {
		if c.IsNumeric() {
			names = append(names, c.Name)
		}
	}
	return names
}

// validate checks that all columns have equal length and unique names.
func (t Table) validate() error {
	seen := make(map[string]bool, len(t.Columns))
	n := t.NumRows()
	for _, c := range t.Columns {
		if seen[c.Name] {
			return eris.Errorf("table: duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Values) != n {
			return eris.Errorf("table: column %q has %d rows, expected %d", c.Name, len(c.Values), n)
		}
	}
	return nil
}

// sumColumns resolves the requested column names, defaulting to all
// numeric columns, and errors on absent or non-numeric requests.
func (t Table) sumColumns(cols []string) ([]string, error) {
	if len(cols) == 0 {
		cols = t.NumericColumns()
		if len(cols) == 0 {
			return nil, eris.New("table: no numeric columns to sum")
		}
		return cols, nil
	}
	for _, name := range cols {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if !c.IsNumeric() {
			return nil, eris.Errorf("table: column %q is not numeric", name)
		}
	}
	return cols, nil
}
