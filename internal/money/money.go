// Package money converts between wire decimals and stored cents.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned when an amount does not fit in int64 cents.
var ErrOutOfRange = errors.New("amount out of range")

var hundred = decimal.NewFromInt(100)

// ToCents rounds d half-up to whole cents.
func ToCents(d decimal.Decimal) (int64, error) {
	cents := d.Mul(hundred).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, ErrOutOfRange
	}

	return cents.IntPart(), nil
}

// FromCents returns the decimal value of an amount stored in cents.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Float returns cents as a float64 for JSON responses.
func Float(cents int64) float64 {
	return FromCents(cents).InexactFloat64()
}
