package swap

import (
	"github.com/krazyTry/hwswap-go/aptos"
	"github.com/krazyTry/hwswap-go/swap/cp_amm"
)

// Pool is a pair snapshot oriented to the caller: ReserveX/BalanceX belong to
// CoinX whichever way the contract stores the pair.
type Pool struct {
	CoinX string `json:"coin_x"`
	CoinY string `json:"coin_y"`
	cp_amm.PoolSnapshot
}

// LpInfo describes the LP coin of a pair.
type LpInfo struct {
	Type string `json:"type"`
	*aptos.CoinInfo
}
