// Package report generates harvest efficiency reports
package report

import (
	"fmt"
	"os"

	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/internal/report"
	"canefield/harvest-csv/internal/stats"

	"github.com/spf13/cobra"
)

var (
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a harvest efficiency report",
	Long: `Generate a harvest efficiency report with summary counts, per-method
efficiency comparison, recommendations and one detail block per batch.
Text reports default to a timestamped file under the configured reports
directory; pass --output - to print to stdout.`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	records := st.List()
	hr := report.NewHarvestReport(stats.Compute(records), records)
	gen := report.NewReportGenerator()

	// Default destination: timestamped text file in the reports directory
	if output == "" && format == "text" {
		path, err := gen.WriteToFile(hr, root.Cfg.ReportsPath())
		if err != nil {
			root.Log.Fatalf("Error generating report: %v", err)
		}
		root.Log.Infof("Report generated: %s", path)
		return
	}

	data, err := gen.Generate(hr, format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}

	if output == "" || output == "-" {
		fmt.Println(string(data))
		return
	}

	if err := os.WriteFile(output, data, 0600); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Infof("Report generated: %s", output)
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Report format: text or json")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file ('-' for stdout)")
}
