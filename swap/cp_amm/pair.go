package cp_amm

import "fmt"

// IsSorted reports whether coinX already precedes coinY in the contract's order.
func IsSorted(coinX, coinY string) bool {
	return coinX < coinY
}

// SortPair returns the two coin types in canonical order.
func SortPair(coinX, coinY string) (string, string) {
	if IsSorted(coinX, coinY) {
		return coinX, coinY
	}
	return coinY, coinX
}

// OrientedCall evaluates formula in canonical order and hands the results back
// in the caller's order, so (X, Y) and (Y, X) callers see the same numbers.
func OrientedCall[V, R any](coinX, coinY string, xValue, yValue V, formula func(x, y V) (R, R, error)) (R, R, error) {
	if IsSorted(coinX, coinY) {
		return formula(xValue, yValue)
	}
	ry, rx, err := formula(yValue, xValue)
	return rx, ry, err
}

// OrientedValue is OrientedCall for formulas with a single, side-less result.
func OrientedValue[V, R any](coinX, coinY string, xValue, yValue V, formula func(x, y V) (R, error)) (R, error) {
	if IsSorted(coinX, coinY) {
		return formula(xValue, yValue)
	}
	return formula(yValue, xValue)
}

// TypeArgs renders the canonical "<X, Y>" generic suffix for pair resources.
func TypeArgs(coinX, coinY string) string {
	x, y := SortPair(coinX, coinY)
	return fmt.Sprintf("<%s, %s>", x, y)
}

// LpType is the LP coin type of a pair published by the module at moduleAddress.
func LpType(moduleAddress, coinX, coinY string) string {
	return fmt.Sprintf("%s::%s::%s%s", moduleAddress, ModuleSwap, ResourceLPToken, TypeArgs(coinX, coinY))
}

// ResourceType is the full type of a pair resource such as TokenPairReserve<X, Y>.
func ResourceType(moduleAddress, name, coinX, coinY string) string {
	return fmt.Sprintf("%s::%s::%s%s", moduleAddress, ModuleSwap, name, TypeArgs(coinX, coinY))
}
