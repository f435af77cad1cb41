package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const (
	coinApt  = "0x1::aptos_coin::AptosCoin"
	coinUsdt = "0xabc::coins::USDT"
)

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pool.json")
	body := `{
		"coin_x": "0x1::aptos_coin::AptosCoin",
		"coin_y": "0xabc::coins::USDT",
		"reserve_x": "100000",
		"reserve_y": "400000",
		"balance_x": "100010",
		"balance_y": "400040",
		"lp_total_supply": "200000",
		"k_last": "36000000000",
		"fee_amount": "0",
		"block_timestamp_last": 1700000000
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (gjson.Result, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return gjson.ParseBytes(out.Bytes()), err
}

func TestPairOffline(t *testing.T) {
	snapshot := writeSnapshot(t)

	res, err := run(t, "pair", "--snapshot", snapshot, "--coin-x", coinUsdt, "--coin-y", coinApt, "--units", "--decimals", "2")
	require.NoError(t, err)
	assert.Equal(t, coinUsdt, res.Get("pool.coin_x").String())
	assert.Equal(t, "400000", res.Get("pool.reserve_x").String())
	assert.Equal(t, "100000", res.Get("pool.reserve_y").String())
	assert.Equal(t, "4000", res.Get("units.reserve_x").String())
	assert.Equal(t, "1000", res.Get("units.reserve_y").String())
}

func TestQuoteSwapExactInputOffline(t *testing.T) {
	snapshot := writeSnapshot(t)

	res, err := run(t, "quote", "swap-exact-input", "--snapshot", snapshot,
		"--coin-x", coinApt, "--coin-y", coinUsdt, "--amount-in", "1000")
	require.NoError(t, err)
	assert.Equal(t, "3950", res.Get("quote.amount_out").String())
	assert.Equal(t, "3871", res.Get("quote.min_amount_out").String())
}

func TestQuoteSwapExactOutputOffline(t *testing.T) {
	snapshot := writeSnapshot(t)

	res, err := run(t, "quote", "swap-exact-output", "--snapshot", snapshot,
		"--coin-x", coinApt, "--coin-y", coinUsdt, "--amount-out", "4000", "--slippage-bps", "200")
	require.NoError(t, err)
	assert.Equal(t, "1013", res.Get("quote.amount_in").String())
	assert.Equal(t, "1033", res.Get("quote.max_amount_in").String())
}

func TestQuoteLiquidityOffline(t *testing.T) {
	snapshot := writeSnapshot(t)

	res, err := run(t, "quote", "add-liquidity", "--snapshot", snapshot,
		"--coin-x", coinApt, "--coin-y", coinUsdt, "--amount-x", "1000", "--amount-y", "5000")
	require.NoError(t, err)
	assert.Equal(t, "4000", res.Get("quote.amount_y").String())
	assert.Equal(t, "2034", res.Get("quote.liquidity").String())

	res, err = run(t, "quote", "remove-liquidity", "--snapshot", snapshot,
		"--coin-x", coinUsdt, "--coin-y", coinApt, "--liquidity", "20000")
	require.NoError(t, err)
	assert.Equal(t, "39334", res.Get("quote.amount_x").String())
	assert.Equal(t, "9833", res.Get("quote.amount_y").String())
}

func TestQuoteRequiresModuleAddress(t *testing.T) {
	_, err := run(t, "quote", "swap-exact-input", "--coin-x", coinApt, "--coin-y", coinUsdt, "--amount-in", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module-address")
}

func TestParseAmount(t *testing.T) {
	v, err := parseAmount("0.4", true, 8)
	require.NoError(t, err)
	assert.Equal(t, "40000000", v.String())

	v, err = parseAmount("1.000000009", true, 8)
	require.NoError(t, err)
	assert.Equal(t, "100000000", v.String())

	_, err = parseAmount("1.5", false, 8)
	require.Error(t, err)

	_, err = parseAmount("abc", false, 8)
	require.Error(t, err)
}
