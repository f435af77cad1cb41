package cp_amm

import (
	"math/big"

	dmath "github.com/krazyTry/hwswap-go/decimal_math"
	"github.com/shopspring/decimal"
)

// GetMinAmountWithSlippage lowers amount by slippageBps.
//
//	minAmount = amount - amount * slippageBps / 10000
func GetMinAmountWithSlippage(amount *big.Int, slippageBps uint64) *big.Int {
	if slippageBps == 0 || amount == nil {
		return amount
	}
	a := decimal.NewFromBigInt(amount, 0)
	delta, _ := dmath.MulDiv(a, decimal.NewFromBigInt(new(big.Int).SetUint64(slippageBps), 0), BASIS_POINT_MAX)
	return a.Sub(delta).BigInt()
}

// GetMaxAmountWithSlippage raises amount by slippageBps.
//
//	maxAmount = amount + amount * slippageBps / 10000
func GetMaxAmountWithSlippage(amount *big.Int, slippageBps uint64) *big.Int {
	if slippageBps == 0 || amount == nil {
		return amount
	}
	a := decimal.NewFromBigInt(amount, 0)
	delta, _ := dmath.MulDiv(a, decimal.NewFromBigInt(new(big.Int).SetUint64(slippageBps), 0), BASIS_POINT_MAX)
	return a.Add(delta).BigInt()
}
