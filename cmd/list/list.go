// Package list prints the registered harvest batches
package list

import (
	"fmt"
	"strings"

	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/internal/stats"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List registered harvest batches",
	Run:   listFunc,
}

func listFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	records := st.List()

	if len(records) == 0 {
		fmt.Println("No harvest records registered.")
		return
	}

	s := stats.Compute(records)
	fmt.Printf("Total harvests: %d\n", s.TotalCount)
	fmt.Printf("Manual harvests: %d (average efficiency: %s%%)\n",
		s.ManualCount, s.ManualAvgEfficiency.StringFixed(2))
	fmt.Printf("Mechanized harvests: %d (average efficiency: %s%%)\n",
		s.MechanizedCount, s.MechanizedAvgEfficiency.StringFixed(2))
	fmt.Println(strings.Repeat("-", 70))

	for i, rec := range records {
		fmt.Printf("%d. Batch: %s | Method: %s | Date: %s\n",
			i+1, rec.BatchID, rec.Method.Label(), rec.Date)
		fmt.Printf("   Predicted: %st | Harvested: %st\n",
			rec.PredictedTons.StringFixed(2), rec.HarvestedTons.StringFixed(2))
		fmt.Printf("   Efficiency: %s%% | Loss: %s%%\n",
			rec.Efficiency.StringFixed(2), rec.Loss.StringFixed(2))
		if rec.Notes != "" {
			fmt.Printf("   Notes: %s\n", rec.Notes)
		}
		fmt.Println(strings.Repeat("-", 70))
	}
}
