/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	config "github.com/tupyy/coerce/configuration"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	logLevel   string
	output     string

	logger *zap.Logger
	undo   func()
)

var rootCmd = &cobra.Command{
	Use:   "coerce",
	Short: "Evaluate operators with JavaScript implicit type coercion",
	Long: `coerce evaluates a single operator applied to two operands the way JavaScript does,
converting strings, numbers and booleans implicitly:

  coerce eval '"10" + 5'     # "105"
  coerce eval '"10" - 5'     # 5
  coerce eval '10 === "10"'  # false`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfiguration(cmd, configFile); err != nil {
			return err
		}

		logger = setupLogger(config.GetLogLevel())
		undo = zap.ReplaceGlobals(logger)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			return
		}
		logger.Sync()
		undo()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(conformCmd)
	rootCmd.AddCommand(gradesCmd)
	rootCmd.AddCommand(operateCmd)
}

// setupLogger builds a JSON logger writing to stderr so stdout only carries results.
func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(level)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}
