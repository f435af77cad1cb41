package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "devnet", cfg.Network)
	assert.Equal(t, "https://fullnode.devnet.aptoslabs.com", cfg.NodeURL)
	assert.Equal(t, uint64(200), cfg.SlippageBps)
	assert.Equal(t, int32(8), cfg.Decimals)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("network: testnet\nmodule-address: \"0xfile\"\nslippage-bps: 50\n"), 0o644))

	t.Setenv("HWSWAP_MODULE_ADDRESS", "0xenv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint64("slippage-bps", 200, "")
	flags.String("coin-x", "", "")
	require.NoError(t, flags.Parse([]string{"--coin-x", "0x1::aptos_coin::AptosCoin"}))

	cfg, err := Load(file, flags)
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Network)
	assert.Equal(t, "https://fullnode.testnet.aptoslabs.com", cfg.NodeURL)
	// env beats file
	assert.Equal(t, "0xenv", cfg.ModuleAddress)
	// file beats an unchanged flag default
	assert.Equal(t, uint64(50), cfg.SlippageBps)
	assert.Equal(t, "0x1::aptos_coin::AptosCoin", cfg.CoinX)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		CoinX:         "0x1::aptos_coin::AptosCoin",
		CoinY:         "0xabc::coins::USDT",
		ModuleAddress: "0xdead",
		SlippageBps:   200,
		Decimals:      8,
	}
	require.NoError(t, valid.Validate())

	offline := valid
	offline.ModuleAddress = ""
	offline.Snapshot = "pool.json"
	require.NoError(t, offline.Validate())

	tests := map[string]func(c *Config){
		"missing coin":   func(c *Config) { c.CoinY = "" },
		"same coin":      func(c *Config) { c.CoinY = c.CoinX },
		"no module":      func(c *Config) { c.ModuleAddress = "" },
		"slippage":       func(c *Config) { c.SlippageBps = 10001 },
		"decimals range": func(c *Config) { c.Decimals = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
