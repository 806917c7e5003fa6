package stats

import (
	"testing"

	"canefield/harvest-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(batchID string, method models.Method, efficiency string) models.HarvestRecord {
	eff := decimal.RequireFromString(efficiency)
	return models.HarvestRecord{
		BatchID:       batchID,
		Method:        method,
		Date:          "10/06/2024",
		PredictedTons: decimal.NewFromInt(100),
		HarvestedTons: decimal.NewFromInt(100).Mul(eff).Div(decimal.NewFromInt(100)),
		Efficiency:    eff,
		Loss:          decimal.NewFromInt(100).Sub(eff),
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)

	assert.Equal(t, 0, s.TotalCount)
	assert.Equal(t, 0, s.ManualCount)
	assert.Equal(t, 0, s.MechanizedCount)
	assert.True(t, s.ManualAvgEfficiency.IsZero())
	assert.True(t, s.MechanizedAvgEfficiency.IsZero())
	assert.True(t, s.OverallAvgEfficiency.IsZero())
	assert.True(t, s.Difference.IsZero())
	assert.Equal(t, []string{RecNoData}, s.Recommendations)
}

func TestComputeManualAhead(t *testing.T) {
	s := Compute([]models.HarvestRecord{
		record("L001", models.MethodManual, "90"),
		record("L002", models.MethodMechanized, "70"),
	})

	assert.Equal(t, 2, s.TotalCount)
	assert.Equal(t, 1, s.ManualCount)
	assert.Equal(t, 1, s.MechanizedCount)
	assert.Equal(t, "90.00", s.ManualAvgEfficiency.StringFixed(2))
	assert.Equal(t, "70.00", s.MechanizedAvgEfficiency.StringFixed(2))
	assert.Equal(t, "80.00", s.OverallAvgEfficiency.StringFixed(2))
	assert.Equal(t, "20.00", s.Difference.StringFixed(2))

	require.Len(t, s.Recommendations, 3)
	assert.Equal(t, "Manual harvesting is 20.00% more efficient than mechanized.", s.Recommendations[0])
	assert.Equal(t, RecCheckCalibration, s.Recommendations[1])
	assert.Equal(t, RecOperatorTraining, s.Recommendations[2])
}

func TestComputeMechanizedAhead(t *testing.T) {
	s := Compute([]models.HarvestRecord{
		record("L001", models.MethodManual, "60.50"),
		record("L002", models.MethodMechanized, "85.25"),
	})

	assert.Equal(t, "24.75", s.Difference.StringFixed(2))
	require.Len(t, s.Recommendations, 3)
	assert.Equal(t, "Mechanized harvesting is 24.75% more efficient than manual.", s.Recommendations[0])
	assert.Equal(t, RecManualProcedures, s.Recommendations[1])
	assert.Equal(t, RecFieldCrewTraining, s.Recommendations[2])
}

func TestComputeSimilar(t *testing.T) {
	s := Compute([]models.HarvestRecord{
		record("L001", models.MethodManual, "80"),
		record("L002", models.MethodMechanized, "80"),
	})

	assert.Equal(t, "0.00", s.Difference.StringFixed(2))
	assert.Equal(t, []string{RecSimilar}, s.Recommendations)
}

func TestComputeOnlyManual(t *testing.T) {
	s := Compute([]models.HarvestRecord{
		record("L001", models.MethodManual, "75"),
		record("L002", models.MethodManual, "85"),
	})

	assert.Equal(t, 2, s.ManualCount)
	assert.Equal(t, 0, s.MechanizedCount)
	assert.Equal(t, "80.00", s.ManualAvgEfficiency.StringFixed(2))
	assert.True(t, s.MechanizedAvgEfficiency.IsZero())
	assert.Equal(t, []string{RecOnlyManual}, s.Recommendations)
}

func TestComputeOnlyMechanized(t *testing.T) {
	s := Compute([]models.HarvestRecord{
		record("L001", models.MethodMechanized, "64.40"),
	})

	assert.Equal(t, 0, s.ManualCount)
	assert.Equal(t, 1, s.MechanizedCount)
	assert.Equal(t, "64.40", s.MechanizedAvgEfficiency.StringFixed(2))
	assert.Equal(t, []string{RecOnlyMechanized}, s.Recommendations)
}

func TestComputeComparesUnroundedAverages(t *testing.T) {
	// Both averages round to 80.00 but differ in the third decimal,
	// so a winner is still declared.
	s := Compute([]models.HarvestRecord{
		record("L001", models.MethodManual, "80.001"),
		record("L002", models.MethodMechanized, "80.002"),
	})

	require.NotEmpty(t, s.Recommendations)
	assert.Equal(t, "Mechanized harvesting is 0.00% more efficient than manual.", s.Recommendations[0])
}

func TestComputeAveragesAcrossGroups(t *testing.T) {
	s := Compute([]models.HarvestRecord{
		record("L001", models.MethodManual, "90"),
		record("L002", models.MethodManual, "70"),
		record("L003", models.MethodMechanized, "50"),
	})

	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, "80.00", s.ManualAvgEfficiency.StringFixed(2))
	assert.Equal(t, "50.00", s.MechanizedAvgEfficiency.StringFixed(2))
	assert.Equal(t, "70.00", s.OverallAvgEfficiency.StringFixed(2))
	assert.Equal(t, "30.00", s.Difference.StringFixed(2))
}

func TestComputeRepeatingAverageRounds(t *testing.T) {
	s := Compute([]models.HarvestRecord{
		record("L001", models.MethodManual, "100"),
		record("L002", models.MethodManual, "100"),
		record("L003", models.MethodManual, "50"),
	})

	// 250 / 3 = 83.333...
	assert.Equal(t, "83.33", s.ManualAvgEfficiency.StringFixed(2))
	assert.Equal(t, "83.33", s.OverallAvgEfficiency.StringFixed(2))
}
