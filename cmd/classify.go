package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/mapkit/internal/choropleth"
	"github.com/sells-group/mapkit/internal/format"
	"github.com/sells-group/mapkit/internal/stats"
	"github.com/sells-group/mapkit/internal/table"
)

var (
	classifyIn      string
	classifyCol     string
	classifyBins    int
	classifyPalette string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Assess a column's distribution and suggest choropleth bins",
	Long: `Reads a numeric column from a CSV file, reports its shape and
spread, recommends a binning method, and prints the computed break
values with a matching color ramp.

Example:
  mapkit classify --in counties.csv --col median_income --bins 5 --palette Blues`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if classifyIn == "" || classifyCol == "" {
			return eris.New("classify: --in and --col are required")
		}

		t, err := table.ReadCSV(classifyIn)
		if err != nil {
			return err
		}
		col, err := t.Column(classifyCol)
		if err != nil {
			return err
		}
		if !col.IsNumeric() {
			return eris.Errorf("classify: column %q is not numeric", classifyCol)
		}

		values := make([]float64, len(col.Values))
		for i, v := range col.Values {
			values[i] = v.(float64)
		}

		shape := stats.Shape(values)
		spread := stats.Uniformity(values)
		method := stats.RecommendBinning(values)

		bins, breaks, err := choropleth.Classify(values, classifyBins, method)
		if err != nil {
			return err
		}

		fmt.Printf("column:   %s (n=%s)\n", classifyCol, format.WithCommas(int64(len(values))))
		fmt.Printf("shape:    %s (skewness %.3f)\n", shape, stats.Skewness(values))
		fmt.Printf("spread:   %s\n", spread)
		fmt.Printf("method:   %s\n", method)
		fmt.Printf("breaks:  ")
		for _, b := range breaks {
			fmt.Printf(" %.*f", cfg.Output.Precision, b)
		}
		fmt.Println()

		counts := make([]int, classifyBins)
		for _, b := range bins {
			counts[b]++
		}
		fmt.Printf("fill:    ")
		for _, c := range counts {
			fmt.Printf(" %s", format.Percent(float64(c)/float64(len(values))))
		}
		fmt.Println()

		colors, err := choropleth.Palette(classifyPalette, classifyBins)
		if err != nil {
			return err
		}
		fmt.Printf("palette:  %s\n", colors)
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyIn, "in", "", "input CSV file")
	classifyCmd.Flags().StringVar(&classifyCol, "col", "", "numeric column to assess")
	classifyCmd.Flags().IntVar(&classifyBins, "bins", 5, "number of bins")
	classifyCmd.Flags().StringVar(&classifyPalette, "palette", "Blues", "color palette name")
	rootCmd.AddCommand(classifyCmd)
}
