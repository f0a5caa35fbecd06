package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/gaze-network/brc20-export/internal/config"
	"github.com/gaze-network/brc20-export/pkg/logger"
	"github.com/gaze-network/brc20-export/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "brc20-export",
	Long:          `Export a wallet's BRC20 inscription history from the OKLink explorer to a CryptoTaxCalculator CSV`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	var configFile string

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.Bool("debug", false, "enable debug logging")

	// Bind flags to configuration
	config.BindPFlag("logger.debug", flags.Lookup("debug"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		conf := config.Parse(configFile)

		if err := logger.Init(conf.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", conf.Logger))
		}
	})
}

func Execute(ctx context.Context) {
	// Register sub-commands
	rootCmd.AddCommand(
		NewExportCommand(),
		NewVersionCommand(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", slogx.Error(err))
		os.Exit(1)
	}
}
