// Package export writes the record collection to a CSV file
package export

import (
	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/internal/common"
	"canefield/harvest-csv/internal/models"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export harvest records to a CSV file",
	Run:   exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	rows := models.Rows(st.List())

	if err := common.WriteRowsToCSV(rows, output); err != nil {
		root.Log.Fatalf("Error exporting records: %v", err)
	}
	root.Log.Infof("Exported %d records to %s", len(rows), output)
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (required)")
	_ = Cmd.MarkFlagRequired("output")
}
