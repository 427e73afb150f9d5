package table

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadCSV loads a CSV file with a header row into a Table. A column
// whose every non-empty cell parses as a number becomes numeric, with
// empty cells read as 0.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, eris.Wrapf(err, "table: open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, eris.Wrapf(err, "table: read %s", path)
	}
	if len(records) == 0 {
		return Table{}, eris.Errorf("table: %s has no header row", path)
	}

	return FromRecords(records[0], records[1:])
}

// WriteCSV writes the table to a CSV file with a header row.
func WriteCSV(t Table, path string) error {
	if err := t.validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "table: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Names()); err != nil {
		return eris.Wrap(err, "table: write header")
	}
	for i := 0; i < t.NumRows(); i++ {
		row := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			row[j] = CellString(c.Values[i])
		}
		if err := w.Write(row); err != nil {
			return eris.Wrapf(err, "table: write row %d", i)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "table: flush csv")
	}
	return nil
}

// FromRecords builds a Table from a header and string rows, inferring
// numeric columns.
func FromRecords(header []string, rows [][]string) (Table, error) {
	if len(header) == 0 {
		return Table{}, eris.New("table: empty header")
	}

	t := Table{Columns: make([]Column, len(header))}
	for j, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				cells[i] = strings.TrimSpace(row[j])
			}
		}
		t.Columns[j] = inferColumn(strings.TrimSpace(name), cells)
	}

	if err := t.validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// inferColumn decides whether a column is numeric and converts cells
// accordingly.
func inferColumn(name string, cells []string) Column {
	numeric := len(cells) > 0
	parsed := make([]float64, len(cells))
	nonEmpty := 0
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		nonEmpty++
		v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
		if err != nil {
			numeric = false
			break
		}
		parsed[i] = v
	}
	if nonEmpty == 0 {
		numeric = false
	}

	values := make([]any, len(cells))
	for i := range cells {
		if numeric {
			values[i] = parsed[i]
		} else {
			values[i] = cells[i]
		}
	}
	return Column{Name: name, Values: values}
}
