package table

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadXLSX loads the named sheet (or the first sheet when name is
// empty) into a Table. The first row is the header.
func ReadXLSX(path, sheetName string) (Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return Table{}, eris.Wrapf(err, "table: open %s", path)
	}

	sheet, err := pickSheet(f, sheetName)
	if err != nil {
		return Table{}, err
	}
	if len(sheet.Rows) == 0 {
		return Table{}, eris.Errorf("table: sheet %q is empty", sheet.Name)
	}

	header := rowStrings(sheet.Rows[0])
	rows := make([][]string, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		rows = append(rows, rowStrings(row))
	}

	return FromRecords(header, rows)
}

// WriteXLSX writes the table to a single-sheet XLSX file.
func WriteXLSX(t Table, path, sheetName string) error {
	if err := t.validate(); err != nil {
		return err
	}
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrapf(err, "table: add sheet %q", sheetName)
	}

	header := sheet.AddRow()
	for _, name := range t.Names() {
		header.AddCell().SetString(name)
	}

	for i := 0; i < t.NumRows(); i++ {
		row := sheet.AddRow()
		for _, c := range t.Columns {
			cell := row.AddCell()
			if v, ok := c.Values[i].(float64); ok {
				cell.SetFloat(v)
			} else {
				cell.SetString(CellString(c.Values[i]))
			}
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "table: save %s", path)
	}
	return nil
}

func pickSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, eris.Errorf("table: sheet %q not found", name)
		}
		return sheet, nil
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("table: workbook has no sheets")
	}
	return f.Sheets[0], nil
}

func rowStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
