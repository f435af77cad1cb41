package cp_amm

import (
	dmath "github.com/krazyTry/hwswap-go/decimal_math"
	"github.com/shopspring/decimal"
)

// MintAmount returns the LP shares minted for depositing amountX/amountY.
//
// First deposit (totalSupply == 0):
//
//	liquidity = sqrt(amount_x * amount_y) - MINIMUM_LIQUIDITY
//
// Otherwise:
//
//	liquidity = min(amount_x * total_supply / reserve_x, amount_y * total_supply / reserve_y)
func MintAmount(reserveX, reserveY, amountX, amountY, totalSupply decimal.Decimal) (decimal.Decimal, error) {
	args := []any{"reserveX", reserveX, "reserveY", reserveY, "amountX", amountX, "amountY", amountY, "totalSupply", totalSupply}
	if anyNegative(reserveX, reserveY, amountX, amountY, totalSupply) {
		return N0, opError("mintAmount", ErrNegativeValue, args...)
	}

	if totalSupply.IsZero() {
		root, err := dmath.Sqrt(amountX.Mul(amountY))
		if err != nil {
			return N0, opError("mintAmount", err, args...)
		}
		if root.LessThan(MINIMUM_LIQUIDITY) {
			return N0, opError("mintAmount", ErrInsufficientLiquidityMinted, args...)
		}
		return root.Sub(MINIMUM_LIQUIDITY), nil
	}

	liquidityX, err := dmath.MulDiv(amountX, totalSupply, reserveX)
	if err != nil {
		return N0, opError("mintAmount", err, args...)
	}
	liquidityY, err := dmath.MulDiv(amountY, totalSupply, reserveY)
	if err != nil {
		return N0, opError("mintAmount", err, args...)
	}

	liquidity := decimal.Min(liquidityX, liquidityY)
	if liquidity.Sign() <= 0 {
		return N0, opError("mintAmount", ErrInsufficientLiquidityMinted, args...)
	}
	return liquidity, nil
}

// OptimalMint returns the amounts the router actually pulls from a depositor
// who offers up to amountX/amountY.
func OptimalMint(reserveX, reserveY, amountX, amountY decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if reserveX.IsZero() && reserveY.IsZero() {
		return amountX, amountY, nil
	}

	amountYOptimal, err := Quote(amountX, reserveX, reserveY)
	if err != nil {
		return N0, N0, err
	}
	if amountYOptimal.LessThanOrEqual(amountY) {
		return amountX, amountYOptimal, nil
	}

	amountXOptimal, err := Quote(amountY, reserveY, reserveX)
	if err != nil {
		return N0, N0, err
	}
	if amountXOptimal.GreaterThan(amountX) {
		return N0, N0, opError("optimalMint", ErrInvalidAmount,
			"reserveX", reserveX, "reserveY", reserveY, "amountX", amountX, "amountY", amountY)
	}
	return amountXOptimal, amountY, nil
}

// BurnAmounts returns what redeeming liquidity pays out. Held balances, not
// reserves, back the payout.
//
//	amount_x = balance_x * liquidity / total_lp_supply
//	amount_y = balance_y * liquidity / total_lp_supply
func BurnAmounts(balanceX, balanceY, totalSupply, liquidity decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	args := []any{"balanceX", balanceX, "balanceY", balanceY, "totalSupply", totalSupply, "liquidity", liquidity}
	if anyNegative(balanceX, balanceY, totalSupply, liquidity) {
		return N0, N0, opError("burnAmounts", ErrNegativeValue, args...)
	}

	amountX, err := dmath.MulDiv(balanceX, liquidity, totalSupply)
	if err != nil {
		return N0, N0, opError("burnAmounts", err, args...)
	}
	amountY, err := dmath.MulDiv(balanceY, liquidity, totalSupply)
	if err != nil {
		return N0, N0, opError("burnAmounts", err, args...)
	}
	return amountX, amountY, nil
}

// ProtocolFeeLiquidity returns the LP shares minted to the fee recipient for
// invariant growth since kLast.
//
//	root_k = sqrt(reserve_x * reserve_y)
//	root_k_last = sqrt(k_last)
//	liquidity = total_supply * (root_k - root_k_last) * 8 / (root_k_last * 17 + root_k * 8)
func ProtocolFeeLiquidity(reserveX, reserveY, kLast, totalSupply decimal.Decimal) (decimal.Decimal, error) {
	args := []any{"reserveX", reserveX, "reserveY", reserveY, "kLast", kLast, "totalSupply", totalSupply}
	if anyNegative(reserveX, reserveY, kLast, totalSupply) {
		return N0, opError("protocolFeeLiquidity", ErrNegativeValue, args...)
	}
	if kLast.IsZero() {
		return N0, nil
	}

	rootK, err := dmath.Sqrt(reserveX.Mul(reserveY))
	if err != nil {
		return N0, opError("protocolFeeLiquidity", err, args...)
	}
	rootKLast, err := dmath.Sqrt(kLast)
	if err != nil {
		return N0, opError("protocolFeeLiquidity", err, args...)
	}
	if rootK.LessThanOrEqual(rootKLast) {
		return N0, nil
	}

	numerator := totalSupply.Mul(rootK.Sub(rootKLast)).Mul(PROTOCOL_FEE_NUMERATOR)
	denominator := rootKLast.Mul(PROTOCOL_FEE_ROOT_K_LAST).Add(rootK.Mul(PROTOCOL_FEE_ROOT_K_SHARE))

	liquidity, err := dmath.Quo(numerator, denominator)
	if err != nil {
		return N0, opError("protocolFeeLiquidity", err, args...)
	}
	return liquidity, nil
}

// sides groups the per-coin arguments of a liquidity formula.
type sides struct {
	reserve decimal.Decimal
	amount  decimal.Decimal
}

// GetLiquidity is MintAmount for a coin pair given in the caller's order.
func GetLiquidity(coinX, coinY string, reserveX, reserveY, amountX, amountY, totalSupply decimal.Decimal) (decimal.Decimal, error) {
	return OrientedValue(coinX, coinY,
		sides{reserve: reserveX, amount: amountX},
		sides{reserve: reserveY, amount: amountY},
		func(x, y sides) (decimal.Decimal, error) {
			return MintAmount(x.reserve, y.reserve, x.amount, y.amount, totalSupply)
		},
	)
}

// GetMintXY is OptimalMint for a coin pair given in the caller's order.
func GetMintXY(coinX, coinY string, reserveX, reserveY, amountX, amountY decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	return OrientedCall(coinX, coinY,
		sides{reserve: reserveX, amount: amountX},
		sides{reserve: reserveY, amount: amountY},
		func(x, y sides) (decimal.Decimal, decimal.Decimal, error) {
			return OptimalMint(x.reserve, y.reserve, x.amount, y.amount)
		},
	)
}

// GetBurnXY is BurnAmounts for a coin pair given in the caller's order.
func GetBurnXY(coinX, coinY string, balanceX, balanceY, totalSupply, liquidity decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	return OrientedCall(coinX, coinY, balanceX, balanceY,
		func(x, y decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
			return BurnAmounts(x, y, totalSupply, liquidity)
		},
	)
}

// GetFee is ProtocolFeeLiquidity for a coin pair given in the caller's order.
func GetFee(coinX, coinY string, reserveX, reserveY, kLast, totalSupply decimal.Decimal) (decimal.Decimal, error) {
	return OrientedValue(coinX, coinY, reserveX, reserveY,
		func(x, y decimal.Decimal) (decimal.Decimal, error) {
			return ProtocolFeeLiquidity(x, y, kLast, totalSupply)
		},
	)
}

func anyNegative(values ...decimal.Decimal) bool {
	for _, v := range values {
		if v.Sign() < 0 {
			return true
		}
	}
	return false
}
