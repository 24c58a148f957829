// Package main provides the CLI entry point for trialplot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// TRIALPLOT_* settings may come from a .env file in the working directory.
	_ = godotenv.Load()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trialplot",
		Short: "Consolidate trial workbooks into CSV exports and charts",
		Long: `trialplot reads the averaged worksheet of every frequency workbook in each
trial folder, derives force from pressure, writes per-frequency and
consolidated CSV files and renders the comparison charts.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String(keyLogLevel, "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String(keyLogFormat, "console", "Log format: console or json")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newInspectCommand())
	return rootCmd
}
