package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	useTUI  bool
	logger  = zap.NewNop()
)

// main registers the commands and runs the interactive prompt flow when no
// subcommand is given. It exits with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "springsim",
		Short:        "spring-mass oscillator simulator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = l
			return nil
		},
		RunE: runInteractive,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "development logging")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "edit parameters in a terminal form")

	rootCmd.AddCommand(
		newRunCmd(),
		newPresetsCmd(),
		newAnalyzeCmd(),
		newPhaseCmd(),
		newScenarioCmd(),
		newSweepCmd(),
		newTuneCmd(),
	)
	return rootCmd
}

// newLogger logs warnings and above as JSON, or everything in the
// development console format when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
