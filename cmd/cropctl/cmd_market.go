package main

import (
	"fmt"
	"os"

	"github.com/futig/crop-advisory/internal/builder"
	"github.com/futig/crop-advisory/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	marketFormat string
	marketOut    string
)

var marketCmd = &cobra.Command{
	Use:   "market <crop>",
	Short: "Generate a market intelligence report for a crop",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarket,
}

func init() {
	marketCmd.Flags().StringVar(&marketFormat, "format", "markdown", "Report format (markdown, pdf)")
	marketCmd.Flags().StringVarP(&marketOut, "out", "o", "", "Write the report to this path instead of stdout")
}

func runMarket(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	services, zl, err := builder.BuildCLI(ctx, envName)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	ctx = logger.ToContext(ctx, zl)

	file, err := services.Market.Report(ctx, args[0], marketFormat)
	if err != nil {
		return err
	}

	if marketOut == "" {
		_, err = cmd.OutOrStdout().Write(file.Content)
		return err
	}

	if err := os.WriteFile(marketOut, file.Content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "report written to %s (%d bytes)\n", marketOut, len(file.Content))
	return nil
}
