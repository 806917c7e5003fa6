// Package validation builds well-formed harvest records from raw input.
// It is the single entry gate: live CLI entry, CSV ingest, JSON load and
// database pull all pass through ValidateAndBuild with the same limits.
package validation

import (
	"fmt"
	"strings"

	"canefield/harvest-csv/internal/config"
	"canefield/harvest-csv/internal/dateutils"
	"canefield/harvest-csv/internal/efficiency"
	"canefield/harvest-csv/internal/harvesterror"
	"canefield/harvest-csv/internal/models"

	"github.com/shopspring/decimal"
)

// ValidateAndBuild validates every field of a raw row and returns the
// canonical record. Each failure names the offending field and the
// acceptable range or pattern.
//
// When the row carries both a precomputed efficiency and loss (a record
// coming back from storage) they are trusted verbatim and not recomputed,
// so stored values round-trip exactly even if the limit configuration
// changed since they were written. Otherwise both are derived from the
// tonnages. Pure validation, no side effects.
func ValidateAndBuild(row models.RecordRow, limits config.Limits) (models.HarvestRecord, error) {
	var rec models.HarvestRecord

	batchID := strings.TrimSpace(row.BatchID)
	if batchID == "" {
		return rec, &harvesterror.ValidationError{
			Field:      harvesterror.FieldBatchID,
			Value:      row.BatchID,
			Constraint: "must be a non-empty string",
		}
	}

	method, ok := models.ParseMethod(row.Method)
	if !ok {
		return rec, &harvesterror.ValidationError{
			Field:      harvesterror.FieldMethod,
			Value:      row.Method,
			Constraint: "must be one of: manual, mechanized",
		}
	}

	date := strings.TrimSpace(row.Date)
	if !dateutils.IsValidHarvestDate(date) {
		return rec, &harvesterror.ValidationError{
			Field:      harvesterror.FieldDate,
			Value:      row.Date,
			Constraint: "must be a real calendar date in DD/MM/YYYY format",
		}
	}

	predicted, err := parseTons(row.PredictedTons, harvesterror.FieldPredicted,
		limits.PredictedMin, limits.PredictedMax)
	if err != nil {
		return rec, err
	}

	harvested, err := parseTons(row.HarvestedTons, harvesterror.FieldHarvested,
		limits.HarvestedMin, limits.HarvestedMax)
	if err != nil {
		return rec, err
	}

	eff, loss, ok := parsePrecomputed(row.Efficiency, row.Loss)
	if !ok {
		eff, loss = efficiency.Compute(predicted, harvested)
	}

	return models.HarvestRecord{
		BatchID:       batchID,
		Method:        method,
		Date:          date,
		PredictedTons: predicted,
		HarvestedTons: harvested,
		Efficiency:    eff,
		Loss:          loss,
		Notes:         row.Notes,
	}, nil
}

// parseTons parses a tonnage string and checks it against the configured
// inclusive range.
func parseTons(raw string, field harvesterror.Field, min, max float64) (decimal.Decimal, error) {
	constraint := fmt.Sprintf("must be a number between %v and %v", min, max)

	val, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, &harvesterror.ValidationError{
			Field:      field,
			Value:      raw,
			Constraint: constraint,
		}
	}

	if val.LessThan(decimal.NewFromFloat(min)) || val.GreaterThan(decimal.NewFromFloat(max)) {
		return decimal.Decimal{}, &harvesterror.ValidationError{
			Field:      field,
			Value:      raw,
			Constraint: constraint,
		}
	}

	return val, nil
}

// parsePrecomputed returns the stored efficiency/loss pair when both are
// present and parseable. A partial or unparsable pair is treated as absent
// and the caller recomputes from the tonnages.
func parsePrecomputed(effStr, lossStr string) (eff, loss decimal.Decimal, ok bool) {
	if strings.TrimSpace(effStr) == "" || strings.TrimSpace(lossStr) == "" {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}

	eff, err := decimal.NewFromString(strings.TrimSpace(effStr))
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	loss, err = decimal.NewFromString(strings.TrimSpace(lossStr))
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}

	return eff, loss, true
}
