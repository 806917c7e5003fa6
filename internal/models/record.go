// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Method is the harvesting technique used for a batch.
type Method string

const (
	MethodManual     Method = "manual"
	MethodMechanized Method = "mechanized"
)

// ParseMethod parses a method name case-insensitively.
// The second return value is false when the name is not recognized.
func ParseMethod(s string) (Method, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(MethodManual):
		return MethodManual, true
	case string(MethodMechanized):
		return MethodMechanized, true
	default:
		return "", false
	}
}

// Label returns the capitalized form used in reports.
func (m Method) Label() string {
	switch m {
	case MethodManual:
		return "Manual"
	case MethodMechanized:
		return "Mechanized"
	default:
		return string(m)
	}
}

// HarvestRecord represents one harvested sugarcane batch. Records are
// immutable once built; an update is a replacement keyed by BatchID.
type HarvestRecord struct {
	BatchID       string          `json:"batch_id" yaml:"batch_id"`
	Method        Method          `json:"method" yaml:"method"`
	Date          string          `json:"date" yaml:"date"` // DD/MM/YYYY
	PredictedTons decimal.Decimal `json:"predicted_tons" yaml:"predicted_tons"`
	HarvestedTons decimal.Decimal `json:"harvested_tons" yaml:"harvested_tons"`
	Efficiency    decimal.Decimal `json:"efficiency_pct" yaml:"efficiency_pct"` // 0-100, 2 places
	Loss          decimal.Decimal `json:"loss_pct" yaml:"loss_pct"`             // 0-100, 2 places
	Notes         string          `json:"notes" yaml:"notes"`
}

// Equal reports whether two records carry the same values in every field.
// Decimal fields compare by value, not by representation.
func (r HarvestRecord) Equal(other HarvestRecord) bool {
	return r.BatchID == other.BatchID &&
		r.Method == other.Method &&
		r.Date == other.Date &&
		r.PredictedTons.Equal(other.PredictedTons) &&
		r.HarvestedTons.Equal(other.HarvestedTons) &&
		r.Efficiency.Equal(other.Efficiency) &&
		r.Loss.Equal(other.Loss) &&
		r.Notes == other.Notes
}

// String returns a short human-readable summary of the record.
func (r HarvestRecord) String() string {
	return fmt.Sprintf("Batch %s - %s - %s\nPredicted: %st | Harvested: %st\nEfficiency: %s%% | Loss: %s%%",
		r.BatchID, r.Method.Label(), r.Date,
		r.PredictedTons.StringFixed(2), r.HarvestedTons.StringFixed(2),
		r.Efficiency.StringFixed(2), r.Loss.StringFixed(2))
}

// Row converts the record to its serializable form. Tonnages keep their
// exact representation; efficiency and loss are rendered with two places.
func (r HarvestRecord) Row() RecordRow {
	return RecordRow{
		BatchID:       r.BatchID,
		Method:        string(r.Method),
		Date:          r.Date,
		PredictedTons: r.PredictedTons.String(),
		HarvestedTons: r.HarvestedTons.String(),
		Efficiency:    r.Efficiency.StringFixed(2),
		Loss:          r.Loss.StringFixed(2),
		Notes:         r.Notes,
	}
}

// RecordRow is the serializable form of a HarvestRecord exchanged with
// persistence collaborators (JSON data file, CSV export/import, database).
// All fields are strings; the validator rebuilds the canonical record and
// trusts the precomputed efficiency/loss verbatim so stored values
// round-trip exactly.
type RecordRow struct {
	BatchID       string `csv:"BatchID" json:"batch_id" yaml:"batch_id"`
	Method        string `csv:"Method" json:"method" yaml:"method"`
	Date          string `csv:"Date" json:"date" yaml:"date"`
	PredictedTons string `csv:"PredictedTons" json:"predicted_tons" yaml:"predicted_tons"`
	HarvestedTons string `csv:"HarvestedTons" json:"harvested_tons" yaml:"harvested_tons"`
	Efficiency    string `csv:"EfficiencyPct" json:"efficiency_pct" yaml:"efficiency_pct"`
	Loss          string `csv:"LossPct" json:"loss_pct" yaml:"loss_pct"`
	Notes         string `csv:"Notes" json:"notes" yaml:"notes"`
}

// Rows converts a record list to its serializable form, preserving order.
func Rows(records []HarvestRecord) []RecordRow {
	rows := make([]RecordRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	return rows
}
