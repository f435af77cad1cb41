package swap

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/krazyTry/hwswap-go/swap/cp_amm"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AddLiquidityQuote predicts add_liquidity for desired amounts.
type AddLiquidityQuote struct {
	// X and Y the router will pull
	AmountX *big.Int `json:"amount_x"`
	AmountY *big.Int `json:"amount_y"`
	// amount_x_min / amount_y_min arguments
	MinAmountX *big.Int `json:"min_amount_x"`
	MinAmountY *big.Int `json:"min_amount_y"`
	// LP minted to the fee recipient before the deposit
	ProtocolFee *big.Int `json:"protocol_fee"`
	// LP minted to the depositor
	Liquidity *big.Int `json:"liquidity"`
	// LP supply after the deposit, locked minimum included
	TotalSupply *big.Int `json:"total_supply"`
}

// RemoveLiquidityQuote predicts remove_liquidity for an LP amount.
type RemoveLiquidityQuote struct {
	Liquidity   *big.Int `json:"liquidity"`
	ProtocolFee *big.Int `json:"protocol_fee"`
	AmountX     *big.Int `json:"amount_x"`
	AmountY     *big.Int `json:"amount_y"`
	MinAmountX  *big.Int `json:"min_amount_x"`
	MinAmountY  *big.Int `json:"min_amount_y"`
}

func (m *Swap) GetAddLiquidityQuote(
	ctx context.Context,
	coinX, coinY string,
	amountX, amountY *big.Int,
	slippageBps uint64,
) (*AddLiquidityQuote, *Pool, error) {
	pool, err := m.QueryPool(ctx, coinX, coinY)
	if err != nil {
		return nil, nil, err
	}
	quote, err := GetAddLiquidityQuote(pool, amountX, amountY, slippageBps)
	if err != nil {
		return nil, pool, err
	}
	m.logger.Debug("add liquidity quote",
		zap.Stringer("amount_x", quote.AmountX),
		zap.Stringer("amount_y", quote.AmountY),
		zap.Stringer("liquidity", quote.Liquidity),
	)
	return quote, pool, nil
}

// GetAddLiquidityQuote mirrors add_liquidity: the optimal amounts are taken
// from the desired ones, the protocol fee is minted, then the deposit mints
// against the grown supply.
func GetAddLiquidityQuote(
	pool *Pool,
	amountX, amountY *big.Int,
	slippageBps uint64,
) (*AddLiquidityQuote, error) {
	if amountX == nil || amountY == nil {
		return nil, errors.New("amountX and amountY are required")
	}
	desiredX := decimal.NewFromBigInt(amountX, 0)
	desiredY := decimal.NewFromBigInt(amountY, 0)

	x, y, err := cp_amm.GetMintXY(pool.CoinX, pool.CoinY, pool.ReserveX, pool.ReserveY, desiredX, desiredY)
	if err != nil {
		return nil, err
	}

	fee, supply, err := mintProtocolFee(pool)
	if err != nil {
		return nil, err
	}

	liquidity, err := cp_amm.GetLiquidity(pool.CoinX, pool.CoinY, pool.ReserveX, pool.ReserveY, x, y, supply)
	if err != nil {
		return nil, err
	}

	total := supply.Add(liquidity)
	if supply.IsZero() {
		total = total.Add(cp_amm.MINIMUM_LIQUIDITY)
	}

	return &AddLiquidityQuote{
		AmountX:     x.BigInt(),
		AmountY:     y.BigInt(),
		MinAmountX:  cp_amm.GetMinAmountWithSlippage(x.BigInt(), slippageBps),
		MinAmountY:  cp_amm.GetMinAmountWithSlippage(y.BigInt(), slippageBps),
		ProtocolFee: fee.BigInt(),
		Liquidity:   liquidity.BigInt(),
		TotalSupply: total.BigInt(),
	}, nil
}

func (m *Swap) GetRemoveLiquidityQuote(
	ctx context.Context,
	coinX, coinY string,
	liquidity *big.Int,
	slippageBps uint64,
) (*RemoveLiquidityQuote, *Pool, error) {
	pool, err := m.QueryPool(ctx, coinX, coinY)
	if err != nil {
		return nil, nil, err
	}
	quote, err := GetRemoveLiquidityQuote(pool, liquidity, slippageBps)
	if err != nil {
		return nil, pool, err
	}
	m.logger.Debug("remove liquidity quote",
		zap.Stringer("liquidity", quote.Liquidity),
		zap.Stringer("amount_x", quote.AmountX),
		zap.Stringer("amount_y", quote.AmountY),
	)
	return quote, pool, nil
}

// GetRemoveLiquidityQuote mirrors remove_liquidity: the protocol fee is
// minted, then liquidity is burned against the held balances.
func GetRemoveLiquidityQuote(
	pool *Pool,
	liquidity *big.Int,
	slippageBps uint64,
) (*RemoveLiquidityQuote, error) {
	if liquidity == nil || liquidity.Sign() <= 0 {
		return nil, fmt.Errorf("liquidity %v: %w", liquidity, cp_amm.ErrInsufficientAmount)
	}
	lp := decimal.NewFromBigInt(liquidity, 0)
	if lp.GreaterThan(pool.LpTotalSupply) {
		return nil, fmt.Errorf("liquidity %s exceeds supply %s: %w", lp, pool.LpTotalSupply, cp_amm.ErrInsufficientLiquidity)
	}

	fee, supply, err := mintProtocolFee(pool)
	if err != nil {
		return nil, err
	}

	x, y, err := cp_amm.GetBurnXY(pool.CoinX, pool.CoinY, pool.BalanceX, pool.BalanceY, supply, lp)
	if err != nil {
		return nil, err
	}
	if x.IsZero() && y.IsZero() {
		return nil, fmt.Errorf("liquidity %s burns nothing: %w", lp, cp_amm.ErrInsufficientLiquidityBurned)
	}

	return &RemoveLiquidityQuote{
		Liquidity:   liquidity,
		ProtocolFee: fee.BigInt(),
		AmountX:     x.BigInt(),
		AmountY:     y.BigInt(),
		MinAmountX:  cp_amm.GetMinAmountWithSlippage(x.BigInt(), slippageBps),
		MinAmountY:  cp_amm.GetMinAmountWithSlippage(y.BigInt(), slippageBps),
	}, nil
}

// mintProtocolFee returns the fee LP minted before a liquidity event and the
// supply that results.
func mintProtocolFee(pool *Pool) (decimal.Decimal, decimal.Decimal, error) {
	if pool.IsEmpty() {
		return cp_amm.N0, pool.LpTotalSupply, nil
	}
	fee, err := cp_amm.GetFee(pool.CoinX, pool.CoinY, pool.ReserveX, pool.ReserveY, pool.KLast, pool.LpTotalSupply)
	if err != nil {
		return cp_amm.N0, cp_amm.N0, err
	}
	return fee, pool.LpTotalSupply.Add(fee), nil
}
