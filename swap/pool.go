package swap

import (
	"context"
	"errors"
	"fmt"

	"github.com/krazyTry/hwswap-go/aptos"
	"github.com/krazyTry/hwswap-go/swap/cp_amm"
	"github.com/krazyTry/hwswap-go/u128"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// TokenPairLayout decodes the TokenPairReserve and TokenPairMetadata resources
// of one pair into a snapshot in the contract's canonical order.
type TokenPairLayout struct {
}

func (l *TokenPairLayout) Decode(reserve, metadata gjson.Result) (cp_amm.PoolSnapshot, error) {
	var (
		s   cp_amm.PoolSnapshot
		err error
	)
	fields := []struct {
		dst  *decimal.Decimal
		src  gjson.Result
		path string
	}{
		{&s.ReserveX, reserve, "data.reserve_x"},
		{&s.ReserveY, reserve, "data.reserve_y"},
		{&s.BalanceX, metadata, "data.balance_x.value"},
		{&s.BalanceY, metadata, "data.balance_y.value"},
		{&s.FeeAmount, metadata, "data.fee_amount.value"},
		{&s.KLast, metadata, "data.k_last"},
	}
	for _, f := range fields {
		if *f.dst, err = u128.ParseDecimal(f.src.Get(f.path).String()); err != nil {
			return cp_amm.PoolSnapshot{}, fmt.Errorf("%s: %w", f.path, err)
		}
	}
	if ts := reserve.Get("data.block_timestamp_last").String(); ts != "" {
		if s.BlockTimestampLast, err = u128.ParseU64(ts); err != nil {
			return cp_amm.PoolSnapshot{}, fmt.Errorf("data.block_timestamp_last: %w", err)
		}
	}
	return s, nil
}

func (m *Swap) QueryTokenPair(ctx context.Context, coinX, coinY string) (*Pool, error) {
	return QueryTokenPair(ctx, m.client, m.moduleAddress, coinX, coinY)
}

// QueryTokenPair reads reserves and metadata of the pair, oriented to
// (coinX, coinY). A pair that was never created reads as an all-zero pool.
func QueryTokenPair(
	ctx context.Context,
	client *aptos.Client,
	moduleAddress string,
	coinX, coinY string,
) (*Pool, error) {
	if coinX == coinY {
		return nil, fmt.Errorf("identical coins %s", coinX)
	}

	pool := &Pool{CoinX: coinX, CoinY: coinY}

	reserve, err := client.GetAccountResource(ctx, moduleAddress,
		cp_amm.ResourceType(moduleAddress, cp_amm.ResourceTokenPairReserve, coinX, coinY))
	if err != nil {
		if errors.Is(err, aptos.ErrResourceNotFound) {
			return pool, nil
		}
		return nil, err
	}

	metadata, err := client.GetAccountResource(ctx, moduleAddress,
		cp_amm.ResourceType(moduleAddress, cp_amm.ResourceTokenPairMetadata, coinX, coinY))
	if err != nil && !errors.Is(err, aptos.ErrResourceNotFound) {
		return nil, err
	}

	snapshot, err := (&TokenPairLayout{}).Decode(reserve, metadata)
	if err != nil {
		return nil, fmt.Errorf("token pair %s: %w", cp_amm.TypeArgs(coinX, coinY), err)
	}
	if !cp_amm.IsSorted(coinX, coinY) {
		snapshot = snapshot.Flip()
	}
	pool.PoolSnapshot = snapshot
	return pool, nil
}

func (m *Swap) QueryLpInfo(ctx context.Context, coinX, coinY string) (*LpInfo, error) {
	return QueryLpInfo(ctx, m.client, m.moduleAddress, coinX, coinY)
}

// QueryLpInfo reads the CoinInfo of the pair's LP coin.
func QueryLpInfo(
	ctx context.Context,
	client *aptos.Client,
	moduleAddress string,
	coinX, coinY string,
) (*LpInfo, error) {
	lpType := cp_amm.LpType(moduleAddress, coinX, coinY)
	info, err := client.GetCoinInfo(ctx, lpType)
	if err != nil {
		return nil, err
	}
	return &LpInfo{Type: lpType, CoinInfo: info}, nil
}

func (m *Swap) QueryLpBalance(ctx context.Context, owner, coinX, coinY string) (decimal.Decimal, error) {
	return QueryLpBalance(ctx, m.client, m.moduleAddress, owner, coinX, coinY)
}

// QueryLpBalance returns the LP shares owner holds in the pair.
func QueryLpBalance(
	ctx context.Context,
	client *aptos.Client,
	moduleAddress string,
	owner, coinX, coinY string,
) (decimal.Decimal, error) {
	return client.GetCoinBalance(ctx, owner, cp_amm.LpType(moduleAddress, coinX, coinY))
}

func (m *Swap) QueryPool(ctx context.Context, coinX, coinY string) (*Pool, error) {
	pool, err := QueryPool(ctx, m.client, m.moduleAddress, coinX, coinY)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("pool snapshot",
		zap.String("coin_x", coinX),
		zap.String("coin_y", coinY),
		zap.Stringer("reserve_x", pool.ReserveX),
		zap.Stringer("reserve_y", pool.ReserveY),
		zap.Stringer("lp_total_supply", pool.LpTotalSupply),
		zap.Stringer("k_last", pool.KLast),
	)
	return pool, nil
}

// QueryPool is QueryTokenPair plus the LP coin supply, the full state every
// quote needs.
func QueryPool(
	ctx context.Context,
	client *aptos.Client,
	moduleAddress string,
	coinX, coinY string,
) (*Pool, error) {
	pool, err := QueryTokenPair(ctx, client, moduleAddress, coinX, coinY)
	if err != nil {
		return nil, err
	}

	lp, err := QueryLpInfo(ctx, client, moduleAddress, coinX, coinY)
	switch {
	case errors.Is(err, aptos.ErrResourceNotFound):
		pool.LpTotalSupply = decimal.Zero
	case err != nil:
		return nil, err
	default:
		pool.LpTotalSupply = lp.Supply
	}

	if err := pool.Validate(); err != nil {
		return nil, err
	}
	return pool, nil
}
