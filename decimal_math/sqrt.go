package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Sqrt returns floor(sqrt(x)) of the integer part of x, the same result the Move
// math::sqrt routine produces for u128 inputs.
func Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	if x.Sign() < 0 {
		return decimal.Zero, ErrNegativeSqrt
	}
	return decimal.NewFromBigInt(sqrtInt(x.BigInt()), 0), nil
}

// babylonian method, starting from (value+1)/2
func sqrtInt(value *big.Int) *big.Int {
	if value.Sign() == 0 {
		return big.NewInt(0)
	}
	if value.Cmp(big.NewInt(1)) == 0 {
		return big.NewInt(1)
	}

	x := new(big.Int).Set(value)
	y := new(big.Int).Add(value, big.NewInt(1))
	y.Rsh(y, 1)

	for y.Cmp(x) < 0 {
		x.Set(y)
		y = new(big.Int).Add(x, new(big.Int).Quo(value, x))
		y.Rsh(y, 1)
	}
	return x
}
