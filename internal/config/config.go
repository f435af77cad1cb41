package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/krazyTry/hwswap-go/aptos"
	"github.com/krazyTry/hwswap-go/swap/cp_amm"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Network       string
	NodeURL       string
	ModuleAddress string
	CoinX         string
	CoinY         string
	Snapshot      string
	SlippageBps   uint64
	Decimals      int32
	Units         bool
	Timeout       time.Duration
	LogLevel      string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HWSWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("network", "devnet")
	v.SetDefault("slippage-bps", uint64(200))
	v.SetDefault("decimals", 8)
	v.SetDefault("timeout", 15*time.Second)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("hwswap")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Network:       v.GetString("network"),
		NodeURL:       v.GetString("node-url"),
		ModuleAddress: v.GetString("module-address"),
		CoinX:         v.GetString("coin-x"),
		CoinY:         v.GetString("coin-y"),
		Snapshot:      v.GetString("snapshot"),
		SlippageBps:   v.GetUint64("slippage-bps"),
		Decimals:      v.GetInt32("decimals"),
		Units:         v.GetBool("units"),
		Timeout:       v.GetDuration("timeout"),
		LogLevel:      v.GetString("log-level"),
	}
	if cfg.NodeURL == "" {
		cfg.NodeURL = aptos.NodeURL(cfg.Network)
	}

	return cfg, nil
}

// Validate reports the first setting a quote cannot run without.
func (c Config) Validate() error {
	if c.CoinX == "" || c.CoinY == "" {
		return fmt.Errorf("coin-x and coin-y are required")
	}
	if c.CoinX == c.CoinY {
		return fmt.Errorf("coin-x and coin-y must differ")
	}
	if c.Snapshot == "" && c.ModuleAddress == "" {
		return fmt.Errorf("module-address is required unless --snapshot is given")
	}
	if c.SlippageBps > cp_amm.BASIS_POINT_MAX.BigInt().Uint64() {
		return fmt.Errorf("slippage-bps %d exceeds %s", c.SlippageBps, cp_amm.BASIS_POINT_MAX)
	}
	if c.Decimals < 0 || c.Decimals > 32 {
		return fmt.Errorf("decimals %d out of range", c.Decimals)
	}
	return nil
}
