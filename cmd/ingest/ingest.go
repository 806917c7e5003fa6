// Package ingest replaces the record collection from a CSV file
package ingest

import (
	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/internal/common"
	"canefield/harvest-csv/internal/models"
	"canefield/harvest-csv/internal/store"

	"github.com/spf13/cobra"
)

var input string

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Import harvest records from a CSV file",
	Long: `Import harvest records from a CSV file, replacing the current
collection. Every row is validated before any record is committed; a single
malformed row aborts the import and leaves the existing data untouched.`,
	Run: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) {
	rows, err := common.ReadCSVFile[models.RecordRow](input)
	if err != nil {
		root.Log.Fatalf("Error reading CSV file: %v", err)
	}

	records, err := store.BuildAll(rows, root.Cfg.Limits, input)
	if err != nil {
		root.Log.Fatalf("Error importing records: %v", err)
	}

	st := root.OpenStore()
	st.ReplaceAll(records)
	root.SaveStore(st)
	root.Log.Infof("Imported %d records from %s", st.Len(), input)
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file (required)")
	_ = Cmd.MarkFlagRequired("input")
}
