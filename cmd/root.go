package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/mapkit/internal/choropleth"
	"github.com/sells-group/mapkit/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "mapkit",
	Short: "Helper toolkit for the mapping book's exercises",
	Long:  "Geographic distance, DMS conversion, shapefile centroids, table totals, and choropleth binning advice over CSV/XLSX files.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		if cfg.Palettes.Path != "" {
			if err := choropleth.LoadPalettes(cfg.Palettes.Path); err != nil {
				return fmt.Errorf("load palettes: %w", err)
			}
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
