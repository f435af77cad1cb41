package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dmath "github.com/krazyTry/hwswap-go/decimal_math"
	"github.com/krazyTry/hwswap-go/swap"
)

// loadPool reads the pool oriented to (coin-x, coin-y), from --snapshot when
// given and from the node otherwise.
func (e *env) loadPool(ctx context.Context) (*swap.Pool, error) {
	if e.cfg.Snapshot != "" {
		return readSnapshot(e.cfg.Snapshot, e.cfg.CoinX, e.cfg.CoinY)
	}
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.swap.QueryPool(ctx, e.cfg.CoinX, e.cfg.CoinY)
}

// withTimeout bounds node calls by --timeout; zero means no bound.
func (e *env) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.cfg.Timeout)
}

// readSnapshot decodes a pool file. A file written for the reversed pair is
// flipped; a file without coin fields is taken in flag order.
func readSnapshot(path, coinX, coinY string) (*swap.Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	pool := &swap.Pool{}
	if err := json.Unmarshal(data, pool); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	switch {
	case pool.CoinX == "" && pool.CoinY == "":
	case pool.CoinX == coinX && pool.CoinY == coinY:
	case pool.CoinX == coinY && pool.CoinY == coinX:
		pool.PoolSnapshot = pool.Flip()
	default:
		return nil, fmt.Errorf("snapshot %s is for %s/%s, not %s/%s", path, pool.CoinX, pool.CoinY, coinX, coinY)
	}
	pool.CoinX, pool.CoinY = coinX, coinY

	if err := pool.Validate(); err != nil {
		return nil, err
	}
	return pool, nil
}

type pairOutput struct {
	Pool      *swap.Pool   `json:"pool"`
	Units     *unitsOutput `json:"units,omitempty"`
	Lp        *swap.LpInfo `json:"lp,omitempty"`
	LpBalance string       `json:"lp_balance,omitempty"`
}

// unitsOutput renders reserves in whole coins for --units.
type unitsOutput struct {
	ReserveX string `json:"reserve_x"`
	ReserveY string `json:"reserve_y"`
}

func newPairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Print the pool snapshot in --coin-x/--coin-y order",
		RunE:  runPair,
	}
	cmd.Flags().String("owner", "", "also print the LP balance of this account")
	return cmd
}

func runPair(cmd *cobra.Command, _ []string) error {
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
	out := pairOutput{Pool: pool}
	if e.cfg.Units {
		out.Units = &unitsOutput{
			ReserveX: dmath.FromBaseUnits(pool.ReserveX, e.cfg.Decimals).String(),
			ReserveY: dmath.FromBaseUnits(pool.ReserveY, e.cfg.Decimals).String(),
		}
	}

	if e.swap != nil {
		ctx, cancel := e.withTimeout(ctx)
		defer cancel()

		if out.Lp, err = e.swap.QueryLpInfo(ctx, e.cfg.CoinX, e.cfg.CoinY); err != nil {
			e.logger.Warn("lp info unavailable", zap.Error(err))
		}
		if owner, _ := cmd.Flags().GetString("owner"); owner != "" {
			balance, err := e.swap.QueryLpBalance(ctx, owner, e.cfg.CoinX, e.cfg.CoinY)
			if err != nil {
				return err
			}
			out.LpBalance = balance.String()
		}
	}

	return e.print(out)
}
