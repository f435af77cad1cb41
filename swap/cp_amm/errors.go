package cp_amm

import (
	"errors"
	"strings"

	dmath "github.com/krazyTry/hwswap-go/decimal_math"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientAmount: a required amount is zero or negative
	ErrInsufficientAmount = errors.New("insufficient amount")
	// ErrInsufficientLiquidity: a reserve cannot back the requested quote
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	// ErrInsufficientLiquidityMinted: the deposit would mint too few LP shares
	ErrInsufficientLiquidityMinted = errors.New("insufficient liquidity minted")
	// ErrInsufficientLiquidityBurned: a withdrawal would pay out nothing
	ErrInsufficientLiquidityBurned = errors.New("insufficient liquidity burned")
	// ErrInvalidAmount: neither side of an optimal deposit fits the desired amounts
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrDivisionByZero: a formula hit a zero divisor
	ErrDivisionByZero = dmath.ErrDivisionByZero
	// ErrNegativeValue: a value that must be non-negative was negative
	ErrNegativeValue = errors.New("negative value")
)

// Input names one argument of a failed operation.
type Input struct {
	Name  string
	Value decimal.Decimal
}

// OpError reports which formula failed and with which inputs.
type OpError struct {
	Op     string
	Inputs []Input
	Err    error
}

func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString("cp_amm: ")
	b.WriteString(e.Op)
	b.WriteByte('(')
	for i, in := range e.Inputs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(in.Name)
		b.WriteByte('=')
		b.WriteString(in.Value.String())
	}
	b.WriteString("): ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// opError builds an OpError from alternating name/value pairs.
func opError(op string, err error, kv ...any) error {
	inputs := make([]Input, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		name, _ := kv[i].(string)
		value, _ := kv[i+1].(decimal.Decimal)
		inputs = append(inputs, Input{Name: name, Value: value})
	}
	return &OpError{Op: op, Inputs: inputs, Err: err}
}
