package cp_amm

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PoolSnapshot is the pool state a quote is computed against, in the
// caller's coin order. All fields hold integers.
type PoolSnapshot struct {
	ReserveX           decimal.Decimal `json:"reserve_x"`
	ReserveY           decimal.Decimal `json:"reserve_y"`
	BalanceX           decimal.Decimal `json:"balance_x"`
	BalanceY           decimal.Decimal `json:"balance_y"`
	LpTotalSupply      decimal.Decimal `json:"lp_total_supply"`
	KLast              decimal.Decimal `json:"k_last"`
	FeeAmount          decimal.Decimal `json:"fee_amount"`
	BlockTimestampLast uint64          `json:"block_timestamp_last"`
}

// IsEmpty reports whether no LP shares exist yet.
func (s PoolSnapshot) IsEmpty() bool {
	return s.LpTotalSupply.IsZero()
}

// Flip returns the snapshot with the X and Y sides exchanged.
func (s PoolSnapshot) Flip() PoolSnapshot {
	s.ReserveX, s.ReserveY = s.ReserveY, s.ReserveX
	s.BalanceX, s.BalanceY = s.BalanceY, s.BalanceX
	return s
}

// Validate checks every field is a non-negative integer within its Move width.
func (s PoolSnapshot) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
		max   decimal.Decimal
	}{
		{"reserve_x", s.ReserveX, MAX_U64},
		{"reserve_y", s.ReserveY, MAX_U64},
		{"balance_x", s.BalanceX, MAX_U64},
		{"balance_y", s.BalanceY, MAX_U64},
		{"lp_total_supply", s.LpTotalSupply, MAX_U128},
		{"k_last", s.KLast, MAX_U128},
		{"fee_amount", s.FeeAmount, MAX_U64},
	}
	for _, f := range fields {
		if f.value.Sign() < 0 {
			return fmt.Errorf("snapshot %s=%s: %w", f.name, f.value, ErrNegativeValue)
		}
		if !f.value.IsInteger() {
			return fmt.Errorf("snapshot %s=%s: not an integer", f.name, f.value)
		}
		if f.value.GreaterThan(f.max) {
			return fmt.Errorf("snapshot %s=%s: exceeds %s", f.name, f.value, f.max)
		}
	}
	return nil
}
