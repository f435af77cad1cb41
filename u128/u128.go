package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
	"github.com/shopspring/decimal"
)

// Uint128 scans a base-10 Move u128 into a binary.Uint128.
type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	} else if i.Sign() < 0 {
		return errors.New("value cannot be negative")
	} else if i.BitLen() > 128 {
		return errors.New("value overflows Uint128")
	}
	u.Lo = i.Uint64()
	u.Hi = i.Rsh(i, 64).Uint64()
	return nil
}

// Parse reads a Move u128 rendered as a JSON string, e.g. "1000000000000".
func Parse(num string) (binary.Uint128, error) {
	u := binary.NewUint128LittleEndian()
	if _, err := fmt.Sscan(num, (*Uint128)(u)); err != nil {
		return binary.Uint128{}, fmt.Errorf("parse u128 %q: %w", num, err)
	}
	return *u, nil
}

// ParseU64 reads a Move u64 rendered as a JSON string.
func ParseU64(num string) (uint64, error) {
	u, err := Parse(num)
	if err != nil {
		return 0, err
	}
	if u.Hi != 0 {
		return 0, fmt.Errorf("parse u64 %q: value overflows uint64", num)
	}
	return u.Lo, nil
}

// ParseDecimal reads a Move u128 string straight into an integer decimal.
// An empty string reads as zero, matching an absent optional field.
func ParseDecimal(num string) (decimal.Decimal, error) {
	if num == "" {
		return decimal.Zero, nil
	}
	u, err := Parse(num)
	if err != nil {
		return decimal.Zero, err
	}
	return ToDecimal(u), nil
}

// ToDecimal widens u into an integer decimal.
func ToDecimal(u binary.Uint128) decimal.Decimal {
	return decimal.NewFromBigInt(u.BigInt(), 0)
}
