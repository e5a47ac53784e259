// Package logging configures the process-wide slog default.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls log destination and verbosity.
type Options struct {
	File    string // rotating log file; empty disables file logging
	Verbose bool   // also honor the DEBUG env var, like the original tooling
}

// Setup installs the default logger. Logs go to stderr and, when a file is
// configured, to a size-rotated log file as well.
func Setup(opts Options) {
	level := slog.LevelWarn
	if opts.Verbose || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if opts.File != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     30, // days
		})
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
