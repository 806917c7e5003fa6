// Package stats aggregates harvest records into per-method statistics and
// the recommendations derived from them.
package stats

import (
	"fmt"

	"canefield/harvest-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Fixed recommendation texts. Their ordering in Statistics.Recommendations
// is significant and covered by tests.
const (
	RecNoData         = "Not enough data for analysis."
	RecOnlyManual     = "Only manual records exist; register mechanized records for comparison."
	RecOnlyMechanized = "Only mechanized records exist; register manual records for comparison."
	RecSimilar        = "Both methods show similar efficiency."

	RecCheckCalibration  = "Check the calibration of the harvester machines."
	RecOperatorTraining  = "Review operator training."
	RecManualProcedures  = "Review manual harvesting procedures."
	RecFieldCrewTraining = "Consider additional training for the field crew."
)

// Compute aggregates a record collection into Statistics. It is a pure
// function of its input: partition by method, average efficiency per group
// (zero for an empty group, by convention rather than NaN), absolute
// difference, overall average, and the recommendation list.
//
// Comparisons run on the unrounded averages; the stored values are rounded
// to two places afterwards, matching the report output.
func Compute(records []models.HarvestRecord) models.Statistics {
	s := models.Statistics{
		TotalCount:              len(records),
		ManualAvgEfficiency:     decimal.Zero,
		MechanizedAvgEfficiency: decimal.Zero,
		OverallAvgEfficiency:    decimal.Zero,
		Difference:              decimal.Zero,
	}

	if len(records) == 0 {
		s.Recommendations = []string{RecNoData}
		return s
	}

	var manualSum, mechSum, totalSum decimal.Decimal
	for _, rec := range records {
		totalSum = totalSum.Add(rec.Efficiency)
		switch rec.Method {
		case models.MethodManual:
			s.ManualCount++
			manualSum = manualSum.Add(rec.Efficiency)
		case models.MethodMechanized:
			s.MechanizedCount++
			mechSum = mechSum.Add(rec.Efficiency)
		}
	}

	manualAvg := decimal.Zero
	if s.ManualCount > 0 {
		manualAvg = manualSum.Div(decimal.NewFromInt(int64(s.ManualCount)))
	}
	mechAvg := decimal.Zero
	if s.MechanizedCount > 0 {
		mechAvg = mechSum.Div(decimal.NewFromInt(int64(s.MechanizedCount)))
	}

	diff := manualAvg.Sub(mechAvg).Abs()
	overall := totalSum.Div(decimal.NewFromInt(int64(len(records))))

	s.Recommendations = recommend(s.ManualCount, s.MechanizedCount, manualAvg, mechAvg, diff)

	s.ManualAvgEfficiency = manualAvg.Round(2)
	s.MechanizedAvgEfficiency = mechAvg.Round(2)
	s.OverallAvgEfficiency = overall.Round(2)
	s.Difference = diff.Round(2)
	return s
}

// recommend applies the fixed decision table over group presence and the
// unrounded average comparison.
func recommend(manualCount, mechCount int, manualAvg, mechAvg, diff decimal.Decimal) []string {
	switch {
	case manualCount == 0 && mechCount == 0:
		return []string{RecNoData}
	case mechCount == 0:
		return []string{RecOnlyManual}
	case manualCount == 0:
		return []string{RecOnlyMechanized}
	}

	switch manualAvg.Cmp(mechAvg) {
	case 1:
		return []string{
			fmt.Sprintf("Manual harvesting is %s%% more efficient than mechanized.", diff.StringFixed(2)),
			RecCheckCalibration,
			RecOperatorTraining,
		}
	case -1:
		return []string{
			fmt.Sprintf("Mechanized harvesting is %s%% more efficient than manual.", diff.StringFixed(2)),
			RecManualProcedures,
			RecFieldCrewTraining,
		}
	default:
		return []string{RecSimilar}
	}
}
