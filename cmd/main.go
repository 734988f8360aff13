package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"estatehub/internal/broker"
	"estatehub/internal/config"
)

var (
	verbose bool

	logger *zap.Logger
	cfg    config.Config
	store  *broker.Store
)

// rootCmd runs the interactive hub when no subcommand is given. Subcommands
// expose the same tools for one-shot scripted use.
var rootCmd = &cobra.Command{
	Use:   "estatehub",
	Short: "Real-estate office toolkit: land valuation, property tax, agreements, brokers",
	Long: `estatehub bundles the day-to-day tools of a small real-estate office:

  value      compute total land value from area and price per unit
  tax        compute net annual property tax after rebate
  agreement  generate rental-agreement text
  brokers    manage the saved broker contact registry

Run without arguments for the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		cfg = config.Load()
		store, err = broker.Open(cfg.BrokersFile, broker.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("open broker registry: %w", err)
		}
		logger.Debug("startup complete", zap.String("brokers_file", cfg.BrokersFile), zap.Int("brokers", store.Len()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		runHub()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(valueCmd, taxCmd, agreementCmd, brokersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
