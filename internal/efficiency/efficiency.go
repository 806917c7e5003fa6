// Package efficiency derives the efficiency and loss percentages of a
// harvest batch from its predicted and harvested tonnage.
package efficiency

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Compute returns the efficiency and loss percentages for a batch.
//
// A non-positive prediction yields (0, 0): there is no meaningful
// efficiency and it is not an error. Harvesting more than predicted is
// capped at (100, 0), never reported as negative loss. Otherwise
// efficiency is harvested/predicted*100 and loss is its complement.
//
// Results are rounded to two places with decimal.Round, which rounds half
// away from zero; rounding an already-rounded value is a no-op, so repeated
// runs produce identical output. The function is total: it never errors and
// does not re-validate ranges (a negative harvested tonnage passes through,
// range checks belong to the validator).
func Compute(predicted, harvested decimal.Decimal) (efficiency, loss decimal.Decimal) {
	if predicted.Sign() <= 0 {
		return decimal.Zero, decimal.Zero
	}

	raw := harvested.Div(predicted).Mul(hundred)
	if raw.GreaterThan(hundred) {
		return hundred, decimal.Zero
	}
	return raw.Round(2), hundred.Sub(raw).Round(2)
}
