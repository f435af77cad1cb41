package cp_amm

import (
	dmath "github.com/krazyTry/hwswap-go/decimal_math"
	"github.com/shopspring/decimal"
)

// Quote returns the amount of Y worth amountX at the current reserve ratio.
//
//	assert!(amount_x > 0, ERROR_INSUFFICIENT_AMOUNT);
//	assert!(reserve_x > 0 && reserve_y > 0, ERROR_INSUFFICIENT_LIQUIDITY);
//	amount_y = amount_x * reserve_y / reserve_x
func Quote(amountX, reserveX, reserveY decimal.Decimal) (decimal.Decimal, error) {
	if amountX.Sign() <= 0 {
		return N0, opError("quote", ErrInsufficientAmount, "amountX", amountX, "reserveX", reserveX, "reserveY", reserveY)
	}
	if reserveX.Sign() <= 0 || reserveY.Sign() <= 0 {
		return N0, opError("quote", ErrInsufficientLiquidity, "amountX", amountX, "reserveX", reserveX, "reserveY", reserveY)
	}
	return dmath.MulDiv(amountX, reserveY, reserveX)
}

// GetAmountOut returns the output of an exact-input swap after the 25 bps fee.
//
//	amount_in_with_fee = amount_in * 9975
//	amount_out = amount_in_with_fee * reserve_out / (reserve_in * 10000 + amount_in_with_fee)
func GetAmountOut(amountIn, reserveIn, reserveOut decimal.Decimal) (decimal.Decimal, error) {
	if amountIn.Sign() <= 0 {
		return N0, opError("amountOut", ErrInsufficientAmount, "amountIn", amountIn, "reserveIn", reserveIn, "reserveOut", reserveOut)
	}
	if reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return N0, opError("amountOut", ErrInsufficientLiquidity, "amountIn", amountIn, "reserveIn", reserveIn, "reserveOut", reserveOut)
	}

	amountInWithFee := amountIn.Mul(FEE_NUMERATOR)
	numerator := amountInWithFee.Mul(reserveOut)
	denominator := reserveIn.Mul(FEE_DENOMINATOR).Add(amountInWithFee)

	return dmath.Quo(numerator, denominator)
}

// GetAmountIn returns the input needed for an exact-output swap.
// The trailing +1 keeps the bound on the safe side of the contract's own
// truncation: GetAmountOut(GetAmountIn(out)) >= out.
//
//	numerator = reserve_in * amount_out * 10000
//	denominator = (reserve_out - amount_out) * 9975
//	amount_in = numerator / denominator + 1
func GetAmountIn(amountOut, reserveIn, reserveOut decimal.Decimal) (decimal.Decimal, error) {
	if amountOut.Sign() <= 0 {
		return N0, opError("amountIn", ErrInsufficientAmount, "amountOut", amountOut, "reserveIn", reserveIn, "reserveOut", reserveOut)
	}
	if reserveIn.Sign() <= 0 || reserveOut.Cmp(amountOut) <= 0 {
		return N0, opError("amountIn", ErrInsufficientLiquidity, "amountOut", amountOut, "reserveIn", reserveIn, "reserveOut", reserveOut)
	}

	numerator := reserveIn.Mul(amountOut).Mul(FEE_DENOMINATOR)
	denominator := reserveOut.Sub(amountOut).Mul(FEE_NUMERATOR)

	amountIn, err := dmath.Quo(numerator, denominator)
	if err != nil {
		return N0, opError("amountIn", err, "amountOut", amountOut, "reserveIn", reserveIn, "reserveOut", reserveOut)
	}
	return amountIn.Add(N1), nil
}
