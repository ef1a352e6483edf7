package main

import (
	"fmt"
	"os"

	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug  = false
	layers = 3
	failAt = -1
	async  = false
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaindemo",
	Short: "Run a nested operation and print its rendered outcome",
	Long: `chaindemo runs a stack of nested tasks, one per layer. The layer selected
with --fail-at reports a failure that every enclosing layer chains as its
cause; the final record is printed with its full cause chain.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newConsoleLogger(debug)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		defer logger.Sync()

		d := demo{layers: layers, failAt: failAt, logger: zapr.NewLogger(logger)}
		out, err := d.run(async)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log every dispatch")
	rootCmd.Flags().IntVar(&layers, "layers", 3, "Number of nested layers")
	rootCmd.Flags().IntVar(&failAt, "fail-at", -1, "Layer that fails (0 is the outermost, -1 for none)")
	rootCmd.Flags().BoolVar(&async, "async", false, "Run the outermost layer with RunAsync")
}

// newConsoleLogger returns a console logger. Debug enables the task
// dispatch logs; otherwise only errors are shown.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.ErrorLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
