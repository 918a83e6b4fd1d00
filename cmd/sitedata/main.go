package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/SiteData/internal/config"
	"github.com/GriffinCanCode/SiteData/internal/logging"
	"github.com/GriffinCanCode/SiteData/internal/monitoring"
)

var (
	cfg     *config.Config
	log     *logging.Logger
	metrics *monitoring.Metrics
)

var rootCmd = &cobra.Command{
	Use:           "sitedata",
	Short:         "Inspect and purge per-site browsing data fixtures",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadOrDefault()

		// Logs go to stderr; stdout carries the rendered tree.
		logger, err := logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			return err
		}
		log = logger

		if cfg.Metrics.Enabled {
			metrics = monitoring.NewMetrics()
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
