package main

import (
	"fmt"
	"runtime"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/mapkit/internal/gazetteer"
	"github.com/sells-group/mapkit/internal/geodesy"
	"github.com/sells-group/mapkit/internal/table"
)

var (
	distmatrixIn    string
	distmatrixMiles bool
)

var distmatrixCmd = &cobra.Command{
	Use:   "distmatrix",
	Short: "Pairwise distance matrix for a CSV of places",
	Long: `Reads a CSV with name,state,lon,lat columns and prints the pairwise
great-circle distance matrix. Rows are computed concurrently.

Example:
  mapkit distmatrix --in cities.csv --miles`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if distmatrixIn == "" {
			return eris.New("distmatrix: --in is required")
		}

		t, err := table.ReadCSV(distmatrixIn)
		if err != nil {
			return err
		}
		places, err := placesFromTable(t)
		if err != nil {
			return err
		}
		if len(places) < 2 {
			return eris.New("distmatrix: need at least two places")
		}

		unit := geodesy.HaversineKM
		if distmatrixMiles {
			unit = geodesy.HaversineMiles
		}

		matrix := make([][]float64, len(places))
		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(runtime.NumCPU())
		for i := range places {
			i := i
			g.Go(func() error {
				row := make([]float64, len(places))
				for j := range places {
					row[j] = unit(places[i].Point, places[j].Point)
				}
				matrix[i] = row
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Print(renderMatrix(places, matrix))
		return nil
	},
}

// renderMatrix formats the matrix as a table with place names on both
// axes.
func renderMatrix(places []gazetteer.Place, matrix [][]float64) string {
	headers := make([]string, len(places)+1)
	headers[0] = ""
	for i, p := range places {
		headers[i+1] = p.Name
	}

	rows := make([][]string, len(places))
	for i, p := range places {
		row := make([]string, len(places)+1)
		row[0] = p.Name
		for j, d := range matrix[i] {
			row[j+1] = fmt.Sprintf("%.1f", d)
		}
		rows[i] = row
	}
	return table.FormatTextHeaders(headers, rows)
}

func init() {
	distmatrixCmd.Flags().StringVar(&distmatrixIn, "in", "", "input CSV with name,state,lon,lat columns")
	distmatrixCmd.Flags().BoolVar(&distmatrixMiles, "miles", false, "report miles instead of kilometers")
	rootCmd.AddCommand(distmatrixCmd)
}
