package main

import (
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/mapkit/internal/geodesy"
	"github.com/sells-group/mapkit/internal/table"
)

var centroidField string

var centroidCmd = &cobra.Command{
	Use:   "centroid <file.shp>",
	Short: "Per-feature centroids from a shapefile",
	Long: `Reads a shapefile and prints the centroid of every feature as a
table. --field picks the attribute used to label each feature.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := shp.Open(args[0])
		if err != nil {
			return eris.Wrapf(err, "centroid: open %s", args[0])
		}
		defer func() { _ = reader.Close() }()

		labelIdx := -1
		for i, f := range reader.Fields() {
			name := strings.TrimRight(f.String(), "\x00")
			if name == centroidField {
				labelIdx = i
				break
			}
		}
		if centroidField != "" && labelIdx < 0 {
			return eris.Errorf("centroid: field %q not in shapefile", centroidField)
		}

		var labels, lons, lats []any
		var skipped int
		feature := 0
		for reader.Next() {
			_, shape := reader.Shape()
			feature++

			pt, err := geodesy.ShapeCentroid(shape)
			if err != nil {
				skipped++
				continue
			}

			label := fmt.Sprintf("feature %d", feature)
			if labelIdx >= 0 {
				label = reader.Attribute(labelIdx)
			}
			labels = append(labels, label)
			lons = append(lons, pt.Lon)
			lats = append(lats, pt.Lat)
		}

		if skipped > 0 {
			zap.L().Warn("centroid: skipped features without geometry", zap.Int("skipped", skipped))
		}

		t := table.Table{Columns: []table.Column{
			{Name: "feature", Values: labels},
			{Name: "lon", Values: lons},
			{Name: "lat", Values: lats},
		}}
		fmt.Print(table.FormatText(t))
		return nil
	},
}

func init() {
	centroidCmd.Flags().StringVar(&centroidField, "field", "", "attribute field used as the feature label")
	rootCmd.AddCommand(centroidCmd)
}
