// Command adt runs the container and compression labs from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chronos-tachyon/adt/internal/config"
	"github.com/chronos-tachyon/adt/internal/logging"
)

// app holds the state shared by every subcommand.
type app struct {
	cfgPath string
	verbose bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "adt",
		Short: "Abstract data type labs and a Huffman file compressor",
		Long: `adt exercises a family of SET and LIST containers and packs files
with a canonical Huffman code built on top of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg = cfg
			a.log = logger
			a.log.Debug("loaded configuration",
				zap.String("path", a.cfgPath),
				zap.String("set_impl", cfg.Sets.Impl),
				zap.Int("workers", cfg.Huffman.Workers))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		a.compressCmd(),
		a.decompressCmd(),
		a.codesCmd(),
		a.uniqueCmd(),
		a.parityCmd(),
		a.radixCmd(),
	)
	return rootCmd, a
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd, a := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if a.log.Core().Enabled(zap.ErrorLevel) {
			a.log.Error("command failed", zap.Error(err))
			_ = a.log.Sync()
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
