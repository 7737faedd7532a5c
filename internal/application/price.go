package application

import (
	"github.com/shopspring/decimal"
)

const (
	priceIntegerDigits  = 9
	priceFractionDigits = 2
)

// ParsePrice parses a decimal price string and enforces the fixed
// precision of the products table: non-negative, at most 9 integer
// digits and 2 fractional digits.
func ParsePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &ConstraintError{Field: "price", Reason: "must be a decimal number"}
	}
	if d.IsNegative() {
		return decimal.Decimal{}, &ConstraintError{Field: "price", Reason: "must not be negative"}
	}
	if d.Exponent() < -priceFractionDigits {
		return decimal.Decimal{}, &ConstraintError{Field: "price", Reason: "at most 2 fractional digits"}
	}
	if intPart := d.Truncate(0).Abs().String(); intPart != "0" && len(intPart) > priceIntegerDigits {
		return decimal.Decimal{}, &ConstraintError{Field: "price", Reason: "at most 9 integer digits"}
	}
	return d, nil
}
