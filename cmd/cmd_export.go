package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/internal/config"
	"github.com/gaze-network/brc20-export/internal/exporter"
	"github.com/gaze-network/brc20-export/internal/oklink"
	"github.com/gaze-network/brc20-export/pkg/logger"
	"github.com/gaze-network/brc20-export/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

func NewExportCommand() *cobra.Command {
	// Create command
	exportCmd := &cobra.Command{
		Use:   "export <wallet-address>",
		Short: "Export a wallet's BRC20 inscription history to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportHandler,
	}

	// Add local flags
	flags := exportCmd.Flags()
	flags.String("api-key", "", "OKLink API access key")
	flags.String("output-dir", "csv", "directory to write the CSV file into")

	// Bind flags to configuration
	config.BindPFlag("oklink.api_key", flags.Lookup("api-key"))
	config.BindPFlag("exporter.output_dir", flags.Lookup("output-dir"))

	return exportCmd
}

func exportHandler(cmd *cobra.Command, args []string) error {
	conf := config.Load()
	wallet := args[0]

	// Add logger context
	ctx := logger.WithContext(cmd.Context(), slogx.String("wallet", wallet))

	client, err := oklink.NewClient(conf.OKLink)
	if err != nil {
		return errors.Wrap(err, "can't create oklink client")
	}

	logger.InfoContext(ctx, "Fetching inscriptions")
	path, err := exporter.New(client, conf.Exporter.OutputDir).Export(ctx, wallet)
	if err != nil {
		return errors.WithStack(err)
	}
	logger.InfoContext(ctx, "Successfully wrote export", slogx.String("path", path))
	return nil
}
