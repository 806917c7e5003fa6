// Package show displays a single harvest batch
package show

import (
	"fmt"

	"canefield/harvest-csv/cmd/root"

	"github.com/spf13/cobra"
)

var batchID string

// Cmd represents the show command
var Cmd = &cobra.Command{
	Use:   "show",
	Short: "Display a harvest batch by id",
	Run:   showFunc,
}

func showFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	rec, err := st.Get(batchID)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	fmt.Println(rec.String())
	if rec.Notes != "" {
		fmt.Printf("Notes: %s\n", rec.Notes)
	}
}

func init() {
	Cmd.Flags().StringVarP(&batchID, "batch", "b", "", "Batch identifier (required)")
	_ = Cmd.MarkFlagRequired("batch")
}
