package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"disk-scheduling/internal/app"
	"disk-scheduling/internal/domain"
	"disk-scheduling/internal/infrastructure"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cl, err := infrastructure.ParseCommandLine("diskscheduler", args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitInvalidInput
	}

	logger := initLogger("info")

	configReader := infrastructure.NewYAMLConfigReader(logger, cl)
	config, err := configReader.ReadConfig(cl.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: read config: %v\n", err)
		return exitFailure
	}

	if config.LogFile != "" {
		logger = initLogger(config.LogLevel, config.LogFile)
	} else {
		logger = initLogger(config.LogLevel)
	}
	defer logger.Sync()

	simulator, err := app.NewDiskSimulator(logger, config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	in := stdin
	var prompts io.Writer = stdout
	if config.InputFile != "" {
		f, err := os.Open(config.InputFile)
		if err != nil {
			logger.Error("Failed to open input", zap.String("file", config.InputFile), zap.Error(err))
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
		defer f.Close()
		in = f
		prompts = nil
	}
	if !config.PromptEnabled() {
		prompts = nil
	}

	reader := infrastructure.NewConsoleWorkloadReader(logger, in, prompts, config.MaxRequests)
	workload, err := reader.ReadWorkload()
	if err == nil {
		var schedules []*domain.Schedule
		if schedules, err = simulator.Run(workload); err == nil {
			writer := infrastructure.NewConsoleReportWriter(logger, stdout, config.ShowStats)
			err = writer.WriteSchedules(schedules)
		}
	}

	switch {
	case err == nil:
		logger.Info("Disk scheduling completed successfully")
		return exitOK
	case errors.Is(err, domain.ErrInvalidInput):
		logger.Warn("Invalid input", zap.Error(err))
		fmt.Fprintf(stderr, "\nerror: %v\n", err)
		return exitInvalidInput
	default:
		logger.Error("Disk scheduling failed", zap.Error(err))
		fmt.Fprintf(stderr, "\nerror: %v\n", err)
		return exitFailure
	}
}

// initLogger builds a production logger at level writing to the given
// files. With no files the log output is discarded.
func initLogger(level string, logfileName ...string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	if len(logfileName) == 0 {
		return zap.NewNop()
	}

	config.OutputPaths = logfileName
	config.ErrorOutputPaths = logfileName
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
