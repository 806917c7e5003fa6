// Package db synchronizes harvest records with the relational database
package db

import (
	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/internal/database"

	"github.com/spf13/cobra"
)

var batchID string

// Cmd represents the db command group
var Cmd = &cobra.Command{
	Use:   "db",
	Short: "Synchronize harvest records with the relational database",
	Long: `Mirror the harvest record collection to a relational database. The
database keeps one row per batch id with a uniqueness constraint, matching
the record store contract: upsert-by-batch-id and delete-by-batch-id.`,
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test the database connection",
	Run:   pingFunc,
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upsert all local records into the database",
	Run:   pushFunc,
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace local records with the database contents",
	Run:   pullFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a batch from the database",
	Run:   deleteFunc,
}

func connect() *database.Adapter {
	adapter, err := database.Open(root.Cfg.Database.DSN)
	if err != nil {
		root.Log.Fatalf("Error connecting to database: %v", err)
	}
	return adapter
}

func pingFunc(cmd *cobra.Command, args []string) {
	adapter := connect()
	if err := adapter.Ping(); err != nil {
		root.Log.Fatalf("Database ping failed: %v", err)
	}
	root.Log.Info("Database connection established successfully")
}

func pushFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	adapter := connect()

	count, err := adapter.PushAll(st.List())
	if err != nil {
		root.Log.Fatalf("Error pushing records (%d written): %v", count, err)
	}
	root.Log.Infof("Pushed %d records to the database", count)
}

func pullFunc(cmd *cobra.Command, args []string) {
	adapter := connect()

	records, err := adapter.FetchAll(root.Cfg.Limits)
	if err != nil {
		root.Log.Fatalf("Error pulling records: %v", err)
	}

	st := root.OpenStore()
	st.ReplaceAll(records)
	root.SaveStore(st)
	root.Log.Infof("Pulled %d records from the database", st.Len())
}

func deleteFunc(cmd *cobra.Command, args []string) {
	adapter := connect()

	removed, err := adapter.DeleteRecord(batchID)
	if err != nil {
		root.Log.Fatalf("Error deleting batch: %v", err)
	}
	if !removed {
		root.Log.Fatalf("No record found for batch '%s' in the database", batchID)
	}
	root.Log.Infof("Batch %s deleted from the database", batchID)
}

func init() {
	deleteCmd.Flags().StringVarP(&batchID, "batch", "b", "", "Batch identifier (required)")
	_ = deleteCmd.MarkFlagRequired("batch")

	Cmd.AddCommand(pingCmd)
	Cmd.AddCommand(pushCmd)
	Cmd.AddCommand(pullCmd)
	Cmd.AddCommand(deleteCmd)
}
