package decimal_math

import "errors"

var (
	// ErrDivisionByZero is returned by every division helper when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeSqrt is returned by Sqrt for negative inputs.
	ErrNegativeSqrt = errors.New("sqrt of negative value")
)
