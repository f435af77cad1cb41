package decimal_math

import (
	"github.com/shopspring/decimal"
)

// Quo returns x / y truncated toward zero.
// The quotient is exact: no intermediate rounding to DivisionPrecision happens.
func Quo(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	q, _ := x.QuoRem(y, 0)
	return q, nil
}

// MulDiv returns x * y / denominator truncated toward zero.
// The product is formed exactly before the single truncating division.
func MulDiv(x, y, denominator decimal.Decimal) (decimal.Decimal, error) {
	return Quo(x.Mul(y), denominator)
}

// Trunc drops the fractional part of x.
func Trunc(x decimal.Decimal) decimal.Decimal {
	return x.Truncate(0)
}
