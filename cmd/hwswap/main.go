package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/krazyTry/hwswap-go/aptos"
	"github.com/krazyTry/hwswap-go/internal/config"
	"github.com/krazyTry/hwswap-go/swap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hwswap",
		Short:        "Off-chain quotes for HwSwap pools",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("network", "devnet", "aptos network (devnet, testnet, mainnet)")
	root.PersistentFlags().String("node-url", "", "fullnode REST url, overrides --network")
	root.PersistentFlags().String("module-address", "", "account that published the swap module")
	root.PersistentFlags().String("coin-x", "", "first coin type, e.g. 0x1::aptos_coin::AptosCoin")
	root.PersistentFlags().String("coin-y", "", "second coin type")
	root.PersistentFlags().String("snapshot", "", "read the pool from a JSON file instead of the node")
	root.PersistentFlags().Uint64("slippage-bps", 200, "slippage tolerance in basis points")
	root.PersistentFlags().Int32("decimals", 8, "decimals used by --units")
	root.PersistentFlags().Bool("units", false, "amounts are given in whole coins, scaled by --decimals")
	root.PersistentFlags().Duration("timeout", 15*time.Second, "node request timeout")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newPairCmd(), newQuoteCmd())
	return root
}

// env bundles what every sub-command needs after flags are resolved.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	swap   *swap.Swap
	out    io.Writer
}

func setup(cmd *cobra.Command) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var s *swap.Swap
	if cfg.Snapshot == "" {
		client := aptos.NewClient(cfg.NodeURL,
			aptos.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			aptos.WithLogger(logger),
		)
		s = swap.NewSwap(client, cfg.ModuleAddress, swap.WithLogger(logger))
	}

	return &env{cfg: cfg, logger: logger, swap: s, out: cmd.OutOrStdout()}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func (e *env) print(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
