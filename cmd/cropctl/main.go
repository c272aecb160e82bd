// Command cropctl runs the crop advisory pipelines from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	envName string

	rootCmd = &cobra.Command{
		Use:           "cropctl",
		Short:         "Crop advisory command line tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "local", "Environment whose .env file is loaded (local, prod, or custom)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(weatherCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
