package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/mapkit/internal/geodesy"
)

var (
	distMiles     bool
	distGazetteer bool
)

var distCmd = &cobra.Command{
	Use:   "dist <from> <to>",
	Short: "Great-circle distance between two points",
	Long: `Computes the haversine distance between two points.

Points may be decimal "lat,lon" pairs, DMS strings, or (with
--via-gazetteer) place names resolved from the local place index.

Examples:
  mapkit dist "40.7128,-74.0060" "51.5074,-0.1278"
  mapkit dist "40° 42' 46.0\" N, 74° 0' 21.6\" W" "51° 30' 26.6\" N, 0° 7' 40.1\" W"
  mapkit dist --via-gazetteer "Portland, OR" "Boise, ID"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := resolvePoint(cmd, args[0])
		if err != nil {
			return err
		}
		to, err := resolvePoint(cmd, args[1])
		if err != nil {
			return err
		}

		km := geodesy.HaversineKM(from, to)
		if distMiles {
			fmt.Printf("%.*f mi\n", cfg.Output.Precision, km*geodesy.MilesPerKM)
			return nil
		}
		fmt.Printf("%.*f km\n", cfg.Output.Precision, km)
		return nil
	},
}

// resolvePoint turns a CLI argument into a Point: decimal lat,lon
// first, then DMS, then (if enabled) a gazetteer name.
func resolvePoint(cmd *cobra.Command, arg string) (geodesy.Point, error) {
	if pt, err := parseDecimalPair(arg); err == nil {
		return pt, nil
	}
	if pt, err := geodesy.ParseDMSPair(arg); err == nil {
		return pt, nil
	}

	if distGazetteer {
		store, err := openGazetteer(cmd)
		if err != nil {
			return geodesy.Point{}, err
		}
		defer store.Close()

		place, err := store.Lookup(cmd.Context(), arg)
		if err != nil {
			return geodesy.Point{}, err
		}
		return place.Point, nil
	}

	return geodesy.Point{}, eris.Errorf("dist: cannot interpret %q as a point", arg)
}

// parseDecimalPair parses "lat,lon" in decimal degrees.
func parseDecimalPair(s string) (geodesy.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return geodesy.Point{}, eris.Errorf("dist: expected lat,lon in %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geodesy.Point{}, eris.Wrapf(err, "dist: latitude in %q", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geodesy.Point{}, eris.Wrapf(err, "dist: longitude in %q", s)
	}
	return geodesy.Point{Lon: lon, Lat: lat}, nil
}

func init() {
	distCmd.Flags().BoolVar(&distMiles, "miles", false, "report miles instead of kilometers")
	distCmd.Flags().BoolVar(&distGazetteer, "via-gazetteer", false, "resolve place names from the local gazetteer")
	rootCmd.AddCommand(distCmd)
}
