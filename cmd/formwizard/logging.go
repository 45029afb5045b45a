package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/goliatone/go-formwizard/pkg/config"
)

// setupLogger logs to stderr through tint and, when a log file is configured,
// also as plain text to a rotating file. The returned func closes the file.
func setupLogger(env config.Env) (*slog.Logger, func()) {
	level := env.SlogLevel()

	if env.LogFile == "" {
		logger := newLogger(os.Stderr, nil, level)
		slog.SetDefault(logger)
		return logger, func() {}
	}

	if dir := filepath.Dir(env.LogFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger := newLogger(os.Stderr, nil, level)
			logger.Warn("log directory unavailable, logging to stderr only", "error", err)
			slog.SetDefault(logger)
			return logger, func() {}
		}
	}

	logWriter := &lumberjack.Logger{
		Filename:   env.LogFile,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     14,
		Compress:   true,
	}
	logger := newLogger(os.Stderr, logWriter, level)
	slog.SetDefault(logger)
	return logger, func() { _ = logWriter.Close() }
}

// newLogger writes colourised records to console and, when file is set, the
// same records as plain text to file. Both honour level.
func newLogger(console, file io.Writer, level slog.Level) *slog.Logger {
	consoleHandler := tint.NewHandler(console, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    console != os.Stderr,
	})
	if file == nil {
		return slog.New(consoleHandler)
	}
	fileHandler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(consoleHandler, fileHandler))
}
