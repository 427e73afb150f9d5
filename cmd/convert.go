package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/mapkit/internal/geodesy"
)

var convertReverse bool

var convertCmd = &cobra.Command{
	Use:   "convert <coordinate>...",
	Short: "Convert between DMS and decimal degrees",
	Long: `Converts DMS coordinate strings to decimal degrees. Each argument
may be a single component or a comma-separated lat, lon pair. With
--reverse, decimal "lat,lon" pairs are rendered as DMS.

Examples:
  mapkit convert "40° 42' 46.0\" N, 74° 0' 21.6\" W"
  mapkit convert --reverse "40.7128,-74.0060"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			if convertReverse {
				if err := printDMS(arg); err != nil {
					return err
				}
				continue
			}

			if strings.Contains(arg, ",") {
				pt, err := geodesy.ParseDMSPair(arg)
				if err != nil {
					return err
				}
				fmt.Printf("%.*f, %.*f\n", cfg.Output.Precision, pt.Lat, cfg.Output.Precision, pt.Lon)
				continue
			}

			dd, err := geodesy.ParseDMS(arg)
			if err != nil {
				return err
			}
			fmt.Printf("%.*f\n", cfg.Output.Precision, dd)
		}
		return nil
	},
}

func printDMS(arg string) error {
	parts := strings.SplitN(arg, ",", 2)
	if len(parts) != 2 {
		return eris.Errorf("convert: expected decimal lat,lon in %q", arg)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return eris.Wrapf(err, "convert: latitude in %q", arg)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return eris.Wrapf(err, "convert: longitude in %q", arg)
	}
	fmt.Printf("%s, %s\n", geodesy.FormatDMS(lat, geodesy.AxisLat), geodesy.FormatDMS(lon, geodesy.AxisLon))
	return nil
}

func init() {
	convertCmd.Flags().BoolVar(&convertReverse, "reverse", false, "render decimal degrees as DMS")
	rootCmd.AddCommand(convertCmd)
}
