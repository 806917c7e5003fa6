package database

import (
	"testing"

	"canefield/harvest-csv/internal/harvesterror"
	"canefield/harvest-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOpenRequiresDSN(t *testing.T) {
	_, err := Open("")
	assert.True(t, harvesterror.IsPersistence(err), "err = %v", err)
	assert.ErrorContains(t, err, "no database DSN configured")
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "harvest_batches", HarvestRow{}.TableName())
}

func TestToRow(t *testing.T) {
	rec := models.HarvestRecord{
		BatchID:       "L001",
		Method:        models.MethodMechanized,
		Date:          "10/06/2024",
		PredictedTons: decimal.RequireFromString("100.5"),
		HarvestedTons: decimal.RequireFromString("80.4"),
		Efficiency:    decimal.RequireFromString("80.00"),
		Loss:          decimal.RequireFromString("20.00"),
		Notes:         "wet soil",
	}

	row := toRow(rec)
	assert.Equal(t, "L001", row.BatchID)
	assert.Equal(t, "mechanized", row.Method)
	assert.Equal(t, "10/06/2024", row.HarvestDate)
	assert.True(t, row.PredictedTons.Equal(rec.PredictedTons))
	assert.True(t, row.Efficiency.Equal(rec.Efficiency))
	assert.Equal(t, "wet soil", row.Notes)
	assert.Zero(t, row.ID)
}
