// Package root contains the root command for the application
package root

import (
	"canefield/harvest-csv/internal/common"
	"canefield/harvest-csv/internal/config"
	"canefield/harvest-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// commands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "harvest-csv",
		Short: "A CLI tool to track sugarcane harvest batches and compare harvest methods.",
		Long: `harvest-csv tracks sugarcane harvest batches, derives a per-batch
efficiency and loss percentage, and aggregates statistics comparing manual
and mechanized harvesting. Records live in a JSON data file and can be
exported to CSV, rendered as reports, or mirrored to a relational database.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to harvest-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger and delimiter
			store.SetLogger(Log)
			common.SetLogger(Log)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}
)

// OpenStore loads the record store from the configured JSON data file.
// A missing file yields an empty store.
func OpenStore() *store.RecordStore {
	st := store.NewRecordStore()
	if err := st.LoadFile(Cfg.RecordsPath(), Cfg.Limits); err != nil {
		Log.Fatalf("Error loading records: %v", err)
	}
	return st
}

// SaveStore persists the store back to the configured JSON data file.
func SaveStore(st *store.RecordStore) {
	if err := st.SaveFile(Cfg.RecordsPath()); err != nil {
		Log.Fatalf("Error saving records: %v", err)
	}
}
