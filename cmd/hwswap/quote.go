package main

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	dmath "github.com/krazyTry/hwswap-go/decimal_math"
	"github.com/krazyTry/hwswap-go/swap"
)

type quoteOutput struct {
	Pool  *swap.Pool `json:"pool"`
	Quote any        `json:"quote"`
}

func newQuoteCmd() *cobra.Command {
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Predict the outcome of a pool operation",
	}

	addCmd := &cobra.Command{
		Use:   "add-liquidity",
		Short: "Amounts pulled and LP minted for a deposit",
		RunE:  runAddLiquidity,
	}
	addCmd.Flags().String("amount-x", "", "desired amount of coin-x")
	addCmd.Flags().String("amount-y", "", "desired amount of coin-y")
	_ = addCmd.MarkFlagRequired("amount-x")
	_ = addCmd.MarkFlagRequired("amount-y")

	removeCmd := &cobra.Command{
		Use:   "remove-liquidity",
		Short: "Coins paid out for burning LP",
		RunE:  runRemoveLiquidity,
	}
	removeCmd.Flags().String("liquidity", "", "LP amount to burn (always base units)")
	_ = removeCmd.MarkFlagRequired("liquidity")

	exactInCmd := &cobra.Command{
		Use:   "swap-exact-input",
		Short: "coin-y received for an exact coin-x input",
		RunE:  runSwapExactInput,
	}
	exactInCmd.Flags().String("amount-in", "", "exact amount of coin-x to sell")
	_ = exactInCmd.MarkFlagRequired("amount-in")

	exactOutCmd := &cobra.Command{
		Use:   "swap-exact-output",
		Short: "coin-x required for an exact coin-y output",
		RunE:  runSwapExactOutput,
	}
	exactOutCmd.Flags().String("amount-out", "", "exact amount of coin-y to buy")
	_ = exactOutCmd.MarkFlagRequired("amount-out")

	quoteCmd.AddCommand(addCmd, removeCmd, exactInCmd, exactOutCmd)
	return quoteCmd
}

// parseAmount reads an integer in base units, or with units set a decimal
// amount of whole coins truncated to base units.
func parseAmount(raw string, units bool, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", raw, err)
	}
	if units {
		return dmath.ToBaseUnits(d, decimals).BigInt(), nil
	}
	if !d.IsInteger() {
		return nil, fmt.Errorf("amount %q is not an integer, use --units for whole coins", raw)
	}
	return d.BigInt(), nil
}

func (e *env) amountFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	raw, _ := cmd.Flags().GetString(name)
	return parseAmount(raw, e.cfg.Units, e.cfg.Decimals)
}

func runAddLiquidity(cmd *cobra.Command, _ []string) error {
	return runQuote(cmd, func(e *env, pool *swap.Pool) (any, error) {
		amountX, err := e.amountFlag(cmd, "amount-x")
		if err != nil {
			return nil, err
		}
		amountY, err := e.amountFlag(cmd, "amount-y")
		if err != nil {
			return nil, err
		}
		return swap.GetAddLiquidityQuote(pool, amountX, amountY, e.cfg.SlippageBps)
	})
}

func runRemoveLiquidity(cmd *cobra.Command, _ []string) error {
	return runQuote(cmd, func(e *env, pool *swap.Pool) (any, error) {
		raw, _ := cmd.Flags().GetString("liquidity")
		liquidity, err := parseAmount(raw, false, 0)
		if err != nil {
			return nil, err
		}
		return swap.GetRemoveLiquidityQuote(pool, liquidity, e.cfg.SlippageBps)
	})
}

func runSwapExactInput(cmd *cobra.Command, _ []string) error {
	return runQuote(cmd, func(e *env, pool *swap.Pool) (any, error) {
		amountIn, err := e.amountFlag(cmd, "amount-in")
		if err != nil {
			return nil, err
		}
		return swap.SwapExactInputQuote(pool, amountIn, e.cfg.SlippageBps)
	})
}

func runSwapExactOutput(cmd *cobra.Command, _ []string) error {
	return runQuote(cmd, func(e *env, pool *swap.Pool) (any, error) {
		amountOut, err := e.amountFlag(cmd, "amount-out")
		if err != nil {
			return nil, err
		}
		return swap.SwapExactOutputQuote(pool, amountOut, e.cfg.SlippageBps)
	})
}

func runQuote(cmd *cobra.Command, quote func(e *env, pool *swap.Pool) (any, error)) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	ctx, stop := signalContext()
	defer stop()

	pool, err := e.loadPool(ctx)
	if err != nil {
		return err
	}

	q, err := quote(e, pool)
	if err != nil {
		return err
	}
	return e.print(quoteOutput{Pool: pool, Quote: q})
}
