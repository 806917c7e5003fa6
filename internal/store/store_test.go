package store

import (
	"testing"

	"canefield/harvest-csv/internal/harvesterror"
	"canefield/harvest-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(batchID string, method models.Method) models.HarvestRecord {
	return models.HarvestRecord{
		BatchID:       batchID,
		Method:        method,
		Date:          "10/06/2024",
		PredictedTons: decimal.NewFromInt(100),
		HarvestedTons: decimal.NewFromInt(80),
		Efficiency:    decimal.NewFromInt(80),
		Loss:          decimal.NewFromInt(20),
	}
}

func TestUpsertInsertsAndReplaces(t *testing.T) {
	st := NewRecordStore()

	st.Upsert(testRecord("L001", models.MethodManual))
	st.Upsert(testRecord("L002", models.MethodMechanized))
	st.Upsert(testRecord("L003", models.MethodManual))
	assert.Equal(t, 3, st.Len())

	// replacement keeps the original position
	updated := testRecord("L002", models.MethodManual)
	updated.Notes = "switched crew"
	st.Upsert(updated)
	assert.Equal(t, 3, st.Len())

	records := st.List()
	assert.Equal(t, "L001", records[0].BatchID)
	assert.Equal(t, "L002", records[1].BatchID)
	assert.Equal(t, "switched crew", records[1].Notes)
	assert.Equal(t, "L003", records[2].BatchID)
}

func TestUpsertIsIdempotent(t *testing.T) {
	st := NewRecordStore()
	rec := testRecord("L001", models.MethodManual)

	st.Upsert(rec)
	st.Upsert(rec)
	st.Upsert(rec)

	assert.Equal(t, 1, st.Len())
	got, err := st.Get("L001")
	require.NoError(t, err)
	assert.True(t, rec.Equal(got))
}

func TestRemove(t *testing.T) {
	st := NewRecordStore()
	st.Upsert(testRecord("L001", models.MethodManual))
	st.Upsert(testRecord("L002", models.MethodMechanized))
	st.Upsert(testRecord("L003", models.MethodManual))

	assert.True(t, st.Remove("L002"))
	assert.False(t, st.Remove("L002"))
	assert.Equal(t, 2, st.Len())

	// index stays consistent after the splice
	got, err := st.Get("L003")
	require.NoError(t, err)
	assert.Equal(t, "L003", got.BatchID)

	records := st.List()
	assert.Equal(t, "L001", records[0].BatchID)
	assert.Equal(t, "L003", records[1].BatchID)
}

func TestGetMiss(t *testing.T) {
	st := NewRecordStore()
	_, err := st.Get("L999")
	assert.True(t, harvesterror.IsNotFound(err), "err = %v", err)
}

func TestListReturnsCopy(t *testing.T) {
	st := NewRecordStore()
	st.Upsert(testRecord("L001", models.MethodManual))

	records := st.List()
	records[0].BatchID = "mutated"

	got, err := st.Get("L001")
	require.NoError(t, err)
	assert.Equal(t, "L001", got.BatchID)
}

func TestReplaceAll(t *testing.T) {
	st := NewRecordStore()
	st.Upsert(testRecord("OLD", models.MethodManual))

	st.ReplaceAll([]models.HarvestRecord{
		testRecord("L001", models.MethodManual),
		testRecord("L002", models.MethodMechanized),
	})

	assert.Equal(t, 2, st.Len())
	_, err := st.Get("OLD")
	assert.True(t, harvesterror.IsNotFound(err))
}

func TestReplaceAllDuplicateBatchIDs(t *testing.T) {
	st := NewRecordStore()

	first := testRecord("L001", models.MethodManual)
	second := testRecord("L001", models.MethodMechanized)
	second.Notes = "later wins"

	st.ReplaceAll([]models.HarvestRecord{
		first,
		testRecord("L002", models.MethodManual),
		second,
	})

	assert.Equal(t, 2, st.Len())
	records := st.List()
	assert.Equal(t, "L001", records[0].BatchID)
	assert.Equal(t, models.MethodMechanized, records[0].Method)
	assert.Equal(t, "later wins", records[0].Notes)
	assert.Equal(t, "L002", records[1].BatchID)
}
