package cp_amm

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() PoolSnapshot {
	return PoolSnapshot{
		ReserveX:           d(1000),
		ReserveY:           d(4000),
		BalanceX:           d(1001),
		BalanceY:           d(4002),
		LpTotalSupply:      d(2000),
		KLast:              d(4_000_000),
		FeeAmount:          d(3),
		BlockTimestampLast: 1700000000,
	}
}

func TestPoolSnapshotValidate(t *testing.T) {
	require.NoError(t, testSnapshot().Validate())
	require.NoError(t, PoolSnapshot{}.Validate())

	s := testSnapshot()
	s.ReserveY = d(-1)
	require.ErrorIs(t, s.Validate(), ErrNegativeValue)

	s = testSnapshot()
	s.BalanceX = decimal.RequireFromString("10.5")
	assert.ErrorContains(t, s.Validate(), "balance_x=10.5: not an integer")

	s = testSnapshot()
	s.ReserveX = MAX_U64.Add(N1)
	assert.ErrorContains(t, s.Validate(), "reserve_x")

	s = testSnapshot()
	s.LpTotalSupply = MAX_U64.Add(N1)
	require.NoError(t, s.Validate())
	s.LpTotalSupply = MAX_U128.Add(N1)
	assert.ErrorContains(t, s.Validate(), "lp_total_supply")
}

func TestPoolSnapshotFlip(t *testing.T) {
	s := testSnapshot()
	f := s.Flip()

	assert.Equal(t, "4000", f.ReserveX.String())
	assert.Equal(t, "1000", f.ReserveY.String())
	assert.Equal(t, "4002", f.BalanceX.String())
	assert.Equal(t, "1001", f.BalanceY.String())
	assert.Equal(t, s.LpTotalSupply, f.LpTotalSupply)
	assert.Equal(t, s.KLast, f.KLast)
	assert.Equal(t, s, f.Flip())
	assert.Equal(t, "1000", s.ReserveX.String())
}

func TestPoolSnapshotIsEmpty(t *testing.T) {
	assert.True(t, PoolSnapshot{}.IsEmpty())
	assert.False(t, testSnapshot().IsEmpty())
}

func TestMaxWidths(t *testing.T) {
	u64 := new(big.Int).SetUint64(^uint64(0))
	assert.Equal(t, u64.String(), MAX_U64.String())

	u128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	assert.Equal(t, u128.String(), MAX_U128.String())
}

func TestSlippage(t *testing.T) {
	tests := []struct {
		amount int64
		bps    uint64
		min    int64
		max    int64
	}{
		{1000, 200, 980, 1020},
		{999, 50, 995, 1003},
		{1000, 0, 1000, 1000},
		{1, 100, 1, 1},
		{1000, 10000, 0, 2000},
	}
	for _, tt := range tests {
		amount := big.NewInt(tt.amount)
		assert.Equal(t, big.NewInt(tt.min).String(), GetMinAmountWithSlippage(amount, tt.bps).String(), "min %d @ %d", tt.amount, tt.bps)
		assert.Equal(t, big.NewInt(tt.max).String(), GetMaxAmountWithSlippage(amount, tt.bps).String(), "max %d @ %d", tt.amount, tt.bps)
	}
	assert.Nil(t, GetMinAmountWithSlippage(nil, 100))
}

func TestSortPair(t *testing.T) {
	x, y := SortPair(coinUsdt, coinApt)
	assert.Equal(t, coinApt, x)
	assert.Equal(t, coinUsdt, y)
	assert.True(t, IsSorted(coinApt, coinUsdt))
	assert.False(t, IsSorted(coinUsdt, coinApt))
}

func TestResourceTypes(t *testing.T) {
	assert.Equal(t, "<0x1::aptos_coin::AptosCoin, 0xabc::coins::USDT>", TypeArgs(coinUsdt, coinApt))
	assert.Equal(t,
		"0xdead::swap::LPToken<0x1::aptos_coin::AptosCoin, 0xabc::coins::USDT>",
		LpType("0xdead", coinUsdt, coinApt))
	assert.Equal(t,
		"0xdead::swap::TokenPairReserve<0x1::aptos_coin::AptosCoin, 0xabc::coins::USDT>",
		ResourceType("0xdead", ResourceTokenPairReserve, coinApt, coinUsdt))
}
