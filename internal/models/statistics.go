package models

import "github.com/shopspring/decimal"

// Statistics holds the per-method aggregates computed over a record
// collection. Averages are zero (not NaN) for empty groups; Difference is
// the absolute gap between the two method averages, rounded to two places.
type Statistics struct {
	TotalCount              int             `json:"total_count"`
	ManualCount             int             `json:"manual_count"`
	MechanizedCount         int             `json:"mechanized_count"`
	ManualAvgEfficiency     decimal.Decimal `json:"manual_avg_efficiency"`
	MechanizedAvgEfficiency decimal.Decimal `json:"mechanized_avg_efficiency"`
	OverallAvgEfficiency    decimal.Decimal `json:"overall_avg_efficiency"`
	Difference              decimal.Decimal `json:"difference"`
	Recommendations         []string        `json:"recommendations"`
}
