package decimal_math

import (
	"github.com/shopspring/decimal"
)

// Pow10 returns 10^n exactly.
func Pow10(n int32) decimal.Decimal {
	return decimal.New(1, n)
}

// ToBaseUnits converts a UI amount (e.g. 0.4 coin) into integer base units
// (e.g. 40_000_000 octas for 8 decimals), dropping sub-unit dust.
func ToBaseUnits(amount decimal.Decimal, decimals int32) decimal.Decimal {
	return Trunc(amount.Mul(Pow10(decimals)))
}

// FromBaseUnits converts integer base units back to a UI amount.
func FromBaseUnits(amount decimal.Decimal, decimals int32) decimal.Decimal {
	return amount.Shift(-decimals)
}
