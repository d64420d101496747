package money

import "github.com/shopspring/decimal"

// Monetary values are fixed-point decimals with two fractional digits.
// Every derived amount (totals, balances, installment shares) goes through
// Round2 before it is compared, stored or returned.
//
// Epsilon absorbs representation noise when amounts produced by different
// code paths are compared for equality or range membership.

var Epsilon = decimal.New(1, -6)

// Round2 rounds half-up to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FromFloat converts an external float input into a canonical amount.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Parse reads an amount persisted as a string. Unparseable input yields zero,
// mirroring how absent numeric attributes are treated on reads.
func Parse(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Equal reports whether a and b differ by no more than Epsilon.
func Equal(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Epsilon)
}

// AtMost reports whether a <= b once Epsilon is granted.
func AtMost(a, b decimal.Decimal) bool {
	return a.LessThanOrEqual(b.Add(Epsilon))
}

// FloorZero clamps negative amounts to zero.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
