package hwswap

import (
	"github.com/krazyTry/hwswap-go/aptos"
	"github.com/krazyTry/hwswap-go/swap"
)

// NewAptosClient creates a client for an Aptos fullnode REST endpoint.
//
// Example:
//
// client := NewAptosClient(aptos.NodeURL("devnet"))
var NewAptosClient = aptos.NewClient

// NewSwapClient creates a quote client for the pools of one swap module.
//
// Example:
//
// swapClient := NewSwapClient(client, "0x...")
//
// swapClient.SwapExactInputQuote(ctx, "0x1::aptos_coin::AptosCoin", usdt, big.NewInt(1_0000_0000), 50)
//
// swapClient.GetAddLiquidityQuote(ctx, apt, usdt, amountApt, amountUsdt, 50)
var NewSwapClient = swap.NewSwap
