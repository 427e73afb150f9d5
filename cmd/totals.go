package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/mapkit/internal/table"
)

var (
	totalsIn    string
	totalsOut   string
	totalsSheet string
	totalsCols  []string
	totalsRows  bool
	totalsDown  bool
)

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Append row and column totals to a table",
	Long: `Loads a CSV or XLSX table, appends totals, and renders the result
as text (or writes it back out with --out).

--rows appends a per-row totals column, --columns a totals row;
with neither flag both are applied.

Examples:
  mapkit totals --in population.csv --cols 2010,2020
  mapkit totals --in results.xlsx --rows --out with_totals.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if totalsIn == "" {
			return eris.New("totals: --in is required")
		}

		t, err := loadTable(totalsIn, totalsSheet)
		if err != nil {
			return err
		}

		switch {
		case totalsRows && !totalsDown:
			t, err = table.AddRowTotals(t, totalsCols, table.TotalLabel)
		case totalsDown && !totalsRows:
			t, err = table.AddColTotals(t, totalsCols, table.TotalLabel)
		default:
			t, err = table.AddTotals(t, totalsCols)
		}
		if err != nil {
			return err
		}

		if totalsOut == "" {
			fmt.Print(table.FormatText(t))
			return nil
		}
		return saveTable(t, totalsOut, totalsSheet)
	},
}

func loadTable(path, sheet string) (table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return table.ReadCSV(path)
	case ".xlsx":
		return table.ReadXLSX(path, sheet)
	default:
		return table.Table{}, eris.Errorf("totals: unsupported input format %q", filepath.Ext(path))
	}
}

func saveTable(t table.Table, path, sheet string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return table.WriteCSV(t, path)
	case ".xlsx":
		return table.WriteXLSX(t, path, sheet)
	default:
		return eris.Errorf("totals: unsupported output format %q", filepath.Ext(path))
	}
}

func init() {
	totalsCmd.Flags().StringVar(&totalsIn, "in", "", "input CSV or XLSX file")
	totalsCmd.Flags().StringVar(&totalsOut, "out", "", "output file; stdout text when omitted")
	totalsCmd.Flags().StringVar(&totalsSheet, "sheet", "", "XLSX sheet name")
	totalsCmd.Flags().StringSliceVar(&totalsCols, "cols", nil, "columns to sum (default: all numeric)")
	totalsCmd.Flags().BoolVar(&totalsRows, "rows", false, "append a per-row totals column")
	totalsCmd.Flags().BoolVar(&totalsDown, "columns", false, "append a totals row")
	rootCmd.AddCommand(totalsCmd)
}
