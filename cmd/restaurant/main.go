// Package main implements the restaurant simulator binary: a fixed
// population of dining groups coordinating with a receptionist, a waiter
// and a chef purely through shared state and semaphores.
//
// The binary wires the simulation from a TOML config file and/or flags,
// runs every actor to completion, and optionally journals a snapshot of
// the shared state at every transition into a bbolt database for later
// inspection.
//
// Example usage:
//
//	# five groups, two tables, defaults for everything else
//	restaurant
//
//	# explicit topology with a durable journal
//	restaurant --groups 8 --tables 3 --journal run.db
//
//	# full configuration from file
//	restaurant --config restaurant.toml --log-level debug
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dreamware/brigade/internal/journal"
	"github.com/dreamware/brigade/internal/restaurant"
	"github.com/dreamware/brigade/internal/sim"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		groups      int
		tables      int
		journalPath string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:           "restaurant",
		Short:         "run the restaurant coordination simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := sim.Default()
			if cfgPath != "" {
				var err error
				if cfg, err = sim.Load(cfgPath); err != nil {
					return err
				}
			}
			// Flags win over the config file, but only when set.
			if cmd.Flags().Changed("groups") {
				cfg.Groups = groups
			}
			if cmd.Flags().Changed("tables") {
				cfg.Tables = tables
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

			var sink restaurant.Journal
			var bolt *journal.BoltSink
			if journalPath != "" {
				if bolt, err = journal.OpenBolt(journalPath); err != nil {
					return err
				}
				defer bolt.Close()
				sink = bolt
				log.Info("journal open",
					zap.String("path", journalPath),
					zap.String("run", bolt.RunID()))
			}

			s, err := sim.New(cfg, sim.WithJournal(sink), sim.WithLogger(log))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("simulation starting",
				zap.Int("groups", cfg.Groups),
				zap.Int("tables", cfg.Tables))
			if err := s.Run(ctx); err != nil {
				return err
			}
			log.Info("simulation complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to TOML config file")
	cmd.Flags().IntVar(&groups, "groups", 0, "number of dining groups (overrides config)")
	cmd.Flags().IntVar(&tables, "tables", 0, "number of tables (overrides config)")
	cmd.Flags().StringVar(&journalPath, "journal", "", "bbolt file for state snapshots (disabled when empty)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

// newLogger builds a console zap logger at the requested level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
