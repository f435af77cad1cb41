package swap

import (
	"context"
	"fmt"
	"math/big"

	"github.com/krazyTry/hwswap-go/swap/cp_amm"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SwapQuoteResult predicts a swap of CoinX into CoinY of the quoted pool.
type SwapQuoteResult struct {
	AmountIn  *big.Int `json:"amount_in"`
	AmountOut *big.Int `json:"amount_out"`
	// MinAmountOut is set for exact-input swaps
	MinAmountOut *big.Int `json:"min_amount_out,omitempty"`
	// MaxAmountIn is set for exact-output swaps
	MaxAmountIn *big.Int `json:"max_amount_in,omitempty"`
	// PriceImpact is the relative move of the X/Y spot price
	PriceImpact *big.Float `json:"price_impact"`
}

func (m *Swap) SwapExactInputQuote(
	ctx context.Context,
	coinIn, coinOut string,
	amountIn *big.Int,
	slippageBps uint64,
) (*SwapQuoteResult, *Pool, error) {
	pool, err := m.QueryPool(ctx, coinIn, coinOut)
	if err != nil {
		return nil, nil, err
	}
	quote, err := SwapExactInputQuote(pool, amountIn, slippageBps)
	if err != nil {
		return nil, pool, err
	}
	m.logger.Debug("swap exact input quote",
		zap.String("coin_in", coinIn),
		zap.String("coin_out", coinOut),
		zap.Stringer("amount_in", quote.AmountIn),
		zap.Stringer("amount_out", quote.AmountOut),
	)
	return quote, pool, nil
}

// SwapExactInputQuote quotes swap_exact_x_to_y of amountIn CoinX.
func SwapExactInputQuote(
	pool *Pool,
	amountIn *big.Int,
	slippageBps uint64,
) (*SwapQuoteResult, error) {
	if amountIn == nil {
		return nil, fmt.Errorf("amountIn: %w", cp_amm.ErrInsufficientAmount)
	}
	in := decimal.NewFromBigInt(amountIn, 0)

	out, err := cp_amm.GetAmountOut(in, pool.ReserveX, pool.ReserveY)
	if err != nil {
		return nil, err
	}

	return &SwapQuoteResult{
		AmountIn:     amountIn,
		AmountOut:    out.BigInt(),
		MinAmountOut: cp_amm.GetMinAmountWithSlippage(out.BigInt(), slippageBps),
		PriceImpact:  priceImpact(pool, in, out),
	}, nil
}

func (m *Swap) SwapExactOutputQuote(
	ctx context.Context,
	coinIn, coinOut string,
	amountOut *big.Int,
	slippageBps uint64,
) (*SwapQuoteResult, *Pool, error) {
	pool, err := m.QueryPool(ctx, coinIn, coinOut)
	if err != nil {
		return nil, nil, err
	}
	quote, err := SwapExactOutputQuote(pool, amountOut, slippageBps)
	if err != nil {
		return nil, pool, err
	}
	m.logger.Debug("swap exact output quote",
		zap.String("coin_in", coinIn),
		zap.String("coin_out", coinOut),
		zap.Stringer("amount_in", quote.AmountIn),
		zap.Stringer("amount_out", quote.AmountOut),
	)
	return quote, pool, nil
}

// SwapExactOutputQuote quotes swap_x_to_exact_y for amountOut CoinY.
func SwapExactOutputQuote(
	pool *Pool,
	amountOut *big.Int,
	slippageBps uint64,
) (*SwapQuoteResult, error) {
	if amountOut == nil {
		return nil, fmt.Errorf("amountOut: %w", cp_amm.ErrInsufficientAmount)
	}
	out := decimal.NewFromBigInt(amountOut, 0)

	in, err := cp_amm.GetAmountIn(out, pool.ReserveX, pool.ReserveY)
	if err != nil {
		return nil, err
	}

	return &SwapQuoteResult{
		AmountIn:    in.BigInt(),
		AmountOut:   amountOut,
		MaxAmountIn: cp_amm.GetMaxAmountWithSlippage(in.BigInt(), slippageBps),
		PriceImpact: priceImpact(pool, in, out),
	}, nil
}

// priceImpact = 1 - (reserveY' * reserveX) / (reserveY * reserveX')
func priceImpact(pool *Pool, in, out decimal.Decimal) *big.Float {
	after := pool.ReserveY.Sub(out).Mul(pool.ReserveX)
	before := pool.ReserveY.Mul(pool.ReserveX.Add(in))
	return cp_amm.N1.Sub(after.Div(before)).BigFloat()
}
