package validation

import (
	"testing"

	"canefield/harvest-csv/internal/config"
	"canefield/harvest-csv/internal/harvesterror"
	"canefield/harvest-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLimits = config.Limits{
	PredictedMin: 0.0,
	PredictedMax: 100000.0,
	HarvestedMin: 0.0,
	HarvestedMax: 100000.0,
}

func validRow() models.RecordRow {
	return models.RecordRow{
		BatchID:       "L001",
		Method:        "manual",
		Date:          "15/03/2024",
		PredictedTons: "100",
		HarvestedTons: "80",
	}
}

func TestValidateAndBuildComputesEfficiency(t *testing.T) {
	rec, err := ValidateAndBuild(validRow(), testLimits)
	require.NoError(t, err)

	assert.Equal(t, "L001", rec.BatchID)
	assert.Equal(t, models.MethodManual, rec.Method)
	assert.Equal(t, "15/03/2024", rec.Date)
	assert.Equal(t, "80.00", rec.Efficiency.StringFixed(2))
	assert.Equal(t, "20.00", rec.Loss.StringFixed(2))
}

func TestValidateAndBuildBatchID(t *testing.T) {
	row := validRow()
	row.BatchID = "   "
	_, err := ValidateAndBuild(row, testLimits)
	assert.True(t, harvesterror.IsValidation(err, harvesterror.FieldBatchID), "err = %v", err)

	row.BatchID = "  L042  "
	rec, err := ValidateAndBuild(row, testLimits)
	require.NoError(t, err)
	assert.Equal(t, "L042", rec.BatchID)
}

func TestValidateAndBuildMethod(t *testing.T) {
	tests := []struct {
		method string
		want   models.Method
		valid  bool
	}{
		{"manual", models.MethodManual, true},
		{"Manual", models.MethodManual, true},
		{"MECHANIZED", models.MethodMechanized, true},
		{" mechanized ", models.MethodMechanized, true},
		{"tractor", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			row := validRow()
			row.Method = tt.method
			rec, err := ValidateAndBuild(row, testLimits)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, rec.Method)
			} else {
				assert.True(t, harvesterror.IsValidation(err, harvesterror.FieldMethod), "err = %v", err)
			}
		})
	}
}

func TestValidateAndBuildDate(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"15/03/2024", true},
		{"29/02/2024", true}, // leap day
		{"31/02/2024", false},
		{"31/04/2024", false},
		{"1/1/2024", false},
		{"2024-01-15", false},
		{"15/13/2024", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			row := validRow()
			row.Date = tt.date
			_, err := ValidateAndBuild(row, testLimits)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, harvesterror.IsValidation(err, harvesterror.FieldDate), "err = %v", err)
			}
		})
	}
}

func TestValidateAndBuildTonnageRange(t *testing.T) {
	row := validRow()
	row.PredictedTons = "-5"
	_, err := ValidateAndBuild(row, testLimits)
	assert.True(t, harvesterror.IsValidation(err, harvesterror.FieldPredicted), "err = %v", err)

	row = validRow()
	row.PredictedTons = "not-a-number"
	_, err = ValidateAndBuild(row, testLimits)
	assert.True(t, harvesterror.IsValidation(err, harvesterror.FieldPredicted), "err = %v", err)

	row = validRow()
	row.HarvestedTons = "100000.01"
	_, err = ValidateAndBuild(row, testLimits)
	assert.True(t, harvesterror.IsValidation(err, harvesterror.FieldHarvested), "err = %v", err)

	// boundaries are inclusive
	row = validRow()
	row.PredictedTons = "100000"
	row.HarvestedTons = "0"
	rec, err := ValidateAndBuild(row, testLimits)
	require.NoError(t, err)
	assert.Equal(t, "0.00", rec.Efficiency.StringFixed(2))
}

func TestValidateAndBuildPrecomputedTrustedVerbatim(t *testing.T) {
	row := validRow()
	row.Efficiency = "97.13"
	row.Loss = "2.87"

	rec, err := ValidateAndBuild(row, testLimits)
	require.NoError(t, err)
	assert.Equal(t, "97.13", rec.Efficiency.StringFixed(2))
	assert.Equal(t, "2.87", rec.Loss.StringFixed(2))
}

func TestValidateAndBuildPartialPrecomputedRecomputed(t *testing.T) {
	row := validRow()
	row.Efficiency = "97.13"

	rec, err := ValidateAndBuild(row, testLimits)
	require.NoError(t, err)
	assert.Equal(t, "80.00", rec.Efficiency.StringFixed(2))
	assert.Equal(t, "20.00", rec.Loss.StringFixed(2))

	row = validRow()
	row.Efficiency = "oops"
	row.Loss = "2.87"
	rec, err = ValidateAndBuild(row, testLimits)
	require.NoError(t, err)
	assert.Equal(t, "80.00", rec.Efficiency.StringFixed(2))
}

func TestValidateAndBuildRoundTrip(t *testing.T) {
	row := validRow()
	row.Notes = "north field, light rain"
	original, err := ValidateAndBuild(row, testLimits)
	require.NoError(t, err)

	// a widened limit range must not disturb the stored values
	widened := config.Limits{PredictedMin: 0.0, PredictedMax: 200000.0,
		HarvestedMin: 0.0, HarvestedMax: 200000.0}

	rebuilt, err := ValidateAndBuild(original.Row(), widened)
	require.NoError(t, err)
	assert.True(t, original.Equal(rebuilt), "original = %+v rebuilt = %+v", original, rebuilt)
}
