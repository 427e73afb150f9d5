package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIsNumeric(t *testing.T) {
	tests := []struct {
		name     string
		col      Column
		expected bool
	}{
		{name: "all floats", col: Column{Values: []any{1.0, 2.5}}, expected: true},
		{name: "strings", col: Column{Values: []any{"x"}}, expected: false},
		{name: "mixed", col: Column{Values: []any{1.0, "x"}}, expected: false},
		{name: "empty", col: Column{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.col.IsNumeric())
		})
	}
}

func TestTableLookups(t *testing.T) {
	tbl := sample()

	assert.Equal(t, []string{"region", "a", "b"}, tbl.Names())
	assert.Equal(t, []string{"a", "b"}, tbl.NumericColumns())
	assert.Equal(t, 3, tbl.NumRows())

	col, err := tbl.Column("b")
	require.NoError(t, err)
	assert.Equal(t, "b", col.Name)

	_, err = tbl.Column("nope")
	assert.Error(t, err)
}

func TestFormatText(t *testing.T) {
	out := FormatText(sample())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "region")
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "north")

	// Numeric cells are right-aligned under their header.
	assert.True(t, strings.HasSuffix(lines[2], "4"))
}

func TestFormatTextHeaders(t *testing.T) {
	out := FormatTextHeaders([]string{"city", "st"}, [][]string{
		{"Portland", "OR"},
		{"Boise", "ID"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "city      st", lines[0])
	assert.Equal(t, "Portland  OR", lines[2])
}

func TestFormatText_CommaGrouping(t *testing.T) {
	out := FormatText(Table{Columns: []Column{
		{Name: "pop", Values: []any{1234567.0, 89.0, 0.5}},
	}})

	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "89")
	// Fractional values keep their plain rendering.
	assert.Contains(t, out, "0.5")
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "1.5", CellString(1.5))
	assert.Equal(t, "3", CellString(3.0))
	assert.Equal(t, "x", CellString("x"))
	assert.Equal(t, "", CellString(nil))
}
