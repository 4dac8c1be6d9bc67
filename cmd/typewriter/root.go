package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	logLevel string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "typewriter",
		Short: "Type the zaplog hero snippet onto the terminal",
		Long: `typewriter reveals three lines of zaplog example code one character at a
time, colouring each line as it grows.

Timing and colours come from flags, falling back to TYPEWRITER_* environment
variables (TYPEWRITER_TICK=30ms, TYPEWRITER_PALETTE=tailwind, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logger, err := newLogger(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newPlayCmd(a),
		newScriptCmd(a),
		newCopyCmd(a),
		newPalettesCmd(),
	)
	return root
}

// newLogger writes to stderr so log lines never land inside a frame.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	return cfg.Build()
}
