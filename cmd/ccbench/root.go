package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newRootCommand builds the ccbench command tree: the root command itself
// runs a single benchmark configuration against a positional matrix path;
// "sweep" is the parameter-sweep tool.
func newRootCommand() *cobra.Command {
	var logLevel string
	var logger *zap.Logger

	root := &cobra.Command{
		Use:           "ccbench <matrix.mtx>",
		Short:         "Benchmark connected-components kernels over a Matrix Market graph",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.ExactArgs(1),
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		l, err := newLogger(logLevel)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
		return nil
	}

	registerRunFlags(root, func() *zap.Logger { return logger })
	root.AddCommand(newSweepCommand(func() *zap.Logger { return logger }))

	return root
}

// newLogger constructs a zap logger with console-encoded production defaults
// but no rotation or context propagation, since this CLI has no service
// lifecycle to rotate logs for.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true

	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
