// Package add handles registration of harvest batches
package add

import (
	"canefield/harvest-csv/cmd/root"
	"canefield/harvest-csv/internal/dateutils"
	"canefield/harvest-csv/internal/models"
	"canefield/harvest-csv/internal/validation"

	"github.com/spf13/cobra"
)

var (
	batchID   string
	method    string
	date      string
	predicted string
	harvested string
	notes     string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Register a harvest batch",
	Long: `Register a harvest batch. Efficiency and loss percentages are derived
from the predicted and harvested tonnage. Re-using an existing batch id
replaces the previous record.`,
	Run: addFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	if date == "" {
		date = dateutils.Today()
	}

	rec, err := validation.ValidateAndBuild(models.RecordRow{
		BatchID:       batchID,
		Method:        method,
		Date:          date,
		PredictedTons: predicted,
		HarvestedTons: harvested,
		Notes:         notes,
	}, root.Cfg.Limits)
	if err != nil {
		root.Log.Fatalf("Invalid harvest record: %v", err)
	}

	st := root.OpenStore()
	st.Upsert(rec)
	root.SaveStore(st)

	root.Log.Infof("Batch %s registered (%s, %s)", rec.BatchID, rec.Method.Label(), rec.Date)
	root.Log.Infof("Efficiency: %s%% | Loss: %s%%",
		rec.Efficiency.StringFixed(2), rec.Loss.StringFixed(2))
}

func init() {
	Cmd.Flags().StringVarP(&batchID, "batch", "b", "", "Batch identifier (required)")
	Cmd.Flags().StringVarP(&method, "method", "m", "", "Harvest method: manual or mechanized (required)")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Harvest date in DD/MM/YYYY format (defaults to today)")
	Cmd.Flags().StringVarP(&predicted, "predicted", "p", "", "Predicted tonnage (required)")
	Cmd.Flags().StringVarP(&harvested, "harvested", "t", "", "Harvested tonnage (required)")
	Cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-form notes about the batch")
	_ = Cmd.MarkFlagRequired("batch")
	_ = Cmd.MarkFlagRequired("method")
	_ = Cmd.MarkFlagRequired("predicted")
	_ = Cmd.MarkFlagRequired("harvested")
}
