// Package money normalizes currency amounts at the API boundary.
// Amounts are held as precise decimals with two fraction digits; binary
// floating point is never used for stored totals.
package money

import (
	"fmt"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Parse converts a decimal string from the boundary into a two-fraction-digit
// amount, rounding half up. It rejects values that are not valid decimals.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, s)
	}
	return Round(d), nil
}

// Round normalizes an amount to two fraction digits, rounding half up.
// decimal.Round rounds half away from zero, which is half-up for the
// positive amounts this application stores.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount with exactly two fraction digits for the boundary.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// IsPositive reports whether the amount is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}
