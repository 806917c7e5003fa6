// Package stats prints aggregate harvest statistics
package stats

import (
	"fmt"

	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/internal/stats"

	"github.com/spf13/cobra"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics comparing harvest methods",
	Run:   statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	s := stats.Compute(st.List())

	fmt.Printf("Total records: %d\n", s.TotalCount)
	fmt.Printf("Manual harvests: %d\n", s.ManualCount)
	fmt.Printf("Mechanized harvests: %d\n", s.MechanizedCount)
	fmt.Printf("Overall average efficiency: %s%%\n", s.OverallAvgEfficiency.StringFixed(2))
	fmt.Printf("Average efficiency (manual): %s%%\n", s.ManualAvgEfficiency.StringFixed(2))
	fmt.Printf("Average efficiency (mechanized): %s%%\n", s.MechanizedAvgEfficiency.StringFixed(2))
	fmt.Printf("Efficiency difference: %s%%\n", s.Difference.StringFixed(2))

	fmt.Println("\nRecommendations:")
	for _, rec := range s.Recommendations {
		fmt.Printf("- %s\n", rec)
	}
}
