// Package remove handles removal of harvest batches
package remove

import (
	"canefield/harvest-csv/cmd/root"

	"github.com/spf13/cobra"
)

var batchID string

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a harvest batch by id",
	Run:   removeFunc,
}

func removeFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	if !st.Remove(batchID) {
		root.Log.Fatalf("No record found for batch '%s'", batchID)
	}
	root.SaveStore(st)
	root.Log.Infof("Batch %s removed", batchID)
}

func init() {
	Cmd.Flags().StringVarP(&batchID, "batch", "b", "", "Batch identifier (required)")
	_ = Cmd.MarkFlagRequired("batch")
}
