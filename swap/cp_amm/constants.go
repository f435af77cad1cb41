package cp_amm

import (
	dmath "github.com/krazyTry/hwswap-go/decimal_math"
	"github.com/shopspring/decimal"
)

// Resource names published by the swap module
var (
	// ResourceTokenPairReserve holds reserve_x, reserve_y and block_timestamp_last
	ResourceTokenPairReserve = "TokenPairReserve"
	// ResourceTokenPairMetadata holds balances, fee_amount and k_last
	ResourceTokenPairMetadata = "TokenPairMetadata"
	// ResourceLPToken is the LP coin struct name
	ResourceLPToken = "LPToken"
	// ModuleSwap is the name of the module that owns the pair resources
	ModuleSwap = "swap"
)

// Constants mirrored from the swap contract
var (
	// MINIMUM_LIQUIDITY is locked forever on the first deposit
	MINIMUM_LIQUIDITY = decimal.NewFromInt(1000)

	// FEE_NUMERATOR / FEE_DENOMINATOR is the input multiplier after the 25 bps swap fee
	FEE_NUMERATOR   = decimal.NewFromInt(9975)
	FEE_DENOMINATOR = decimal.NewFromInt(10000)

	// protocol fee weights used by the k_last fee mint
	PROTOCOL_FEE_NUMERATOR    = decimal.NewFromInt(8)
	PROTOCOL_FEE_ROOT_K_LAST  = decimal.NewFromInt(17)
	PROTOCOL_FEE_ROOT_K_SHARE = decimal.NewFromInt(8)

	// BASIS_POINT_MAX represents 100% in basis points
	BASIS_POINT_MAX = decimal.NewFromInt(10_000)

	N0   = decimal.Zero
	N1   = decimal.NewFromInt(1)
	N2   = decimal.NewFromInt(2)
	N64  = decimal.NewFromInt(64)
	N128 = decimal.NewFromInt(128)

	// MAX_U64 is the largest Move u64 (coin amounts, reserves)
	MAX_U64 = dmath.Exp(N2, N64, decimal.NullDecimal{}).Sub(N1)
	// MAX_U128 is the largest Move u128 (coin supply, k_last)
	MAX_U128 = dmath.Exp(N2, N128, decimal.NullDecimal{}).Sub(N1)
)
