package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/mapkit/internal/format"
	"github.com/sells-group/mapkit/internal/gazetteer"
	"github.com/sells-group/mapkit/internal/geodesy"
	"github.com/sells-group/mapkit/internal/table"
)

var gazetteerCmd = &cobra.Command{
	Use:   "gazetteer",
	Short: "Manage the local place index",
	Long:  "Import, look up, and query the SQLite place index used to resolve place names.",
}

var gazImportCmd = &cobra.Command{
	Use:   "import <places.csv>",
	Short: "Import places from a CSV with name,state,lon,lat columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := table.ReadCSV(args[0])
		if err != nil {
			return err
		}
		places, err := placesFromTable(t)
		if err != nil {
			return err
		}

		store, err := openGazetteer(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		batchID, n, err := store.Import(cmd.Context(), places)
		if err != nil {
			return err
		}

		zap.L().Info("gazetteer import complete",
			zap.String("batch_id", batchID),
			zap.Int("places", n),
		)
		fmt.Printf("imported %s places (batch %s)\n", format.WithCommas(int64(n)), batchID)
		return nil
	},
}

var gazLookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Resolve a place name to coordinates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openGazetteer(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		place, err := store.Lookup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s, %s: %.*f, %.*f\n", place.Name, place.State,
			cfg.Output.Precision, place.Point.Lat, cfg.Output.Precision, place.Point.Lon)
		return nil
	},
}

var gazNearK int

var gazNearCmd = &cobra.Command{
	Use:   "near <lat,lon>",
	Short: "List the closest indexed places to a point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pt, err := parseDecimalPair(args[0])
		if err != nil {
			return err
		}

		store, err := openGazetteer(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		nearby, err := store.Near(cmd.Context(), pt, gazNearK)
		if err != nil {
			return err
		}

		var names, states, dists []any
		for _, pd := range nearby {
			names = append(names, pd.Name)
			states = append(states, pd.State)
			dists = append(dists, pd.DistanceKM)
		}
		t := table.Table{Columns: []table.Column{
			{Name: "place", Values: names},
			{Name: "state", Values: states},
			{Name: "km", Values: dists},
		}}
		fmt.Print(table.FormatText(t))
		return nil
	},
}

func openGazetteer(cmd *cobra.Command) (*gazetteer.Store, error) {
	store, err := gazetteer.Open(cfg.Gazetteer.Path)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(cmd.Context()); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// placesFromTable converts a name,state,lon,lat table to places.
func placesFromTable(t table.Table) ([]gazetteer.Place, error) {
	name, err := t.Column("name")
	if err != nil {
		return nil, err
	}
	state, err := t.Column("state")
	if err != nil {
		return nil, err
	}
	lon, err := t.Column("lon")
	if err != nil {
		return nil, err
	}
	lat, err := t.Column("lat")
	if err != nil {
		return nil, err
	}
	if !lon.IsNumeric() || !lat.IsNumeric() {
		return nil, eris.New("gazetteer: lon and lat columns must be numeric")
	}

	places := make([]gazetteer.Place, t.NumRows())
	for i := range places {
		places[i] = gazetteer.Place{
			Name:  table.CellString(name.Values[i]),
			State: table.CellString(state.Values[i]),
			Point: geodesy.Point{
				Lon: lon.Values[i].(float64),
				Lat: lat.Values[i].(float64),
			},
		}
	}
	return places, nil
}

func init() {
	gazNearCmd.Flags().IntVar(&gazNearK, "k", 5, "number of places to list")
	gazetteerCmd.AddCommand(gazImportCmd, gazLookupCmd, gazNearCmd)
	rootCmd.AddCommand(gazetteerCmd)
}
