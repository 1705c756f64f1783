// Package logging builds the zerolog loggers used by the ostat CLI and
// driver. The tree core itself never logs.
package logging

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment overrides.
const (
	EnvLogLevel     = "OSTAT_LOG_LEVEL"
	EnvLogFile      = "OSTAT_LOG_FILE"
	EnvLogFileMaxMB = "OSTAT_LOG_FILE_MAX_MB"
)

// Options controls logger construction.
type Options struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string

	// Console enables human-readable output on stderr.
	Console bool

	// File, when non-empty, adds a rotating JSON log file.
	File string

	// Rotation limits for the file sink.
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
}

// DefaultOptions returns console logging at info level.
func DefaultOptions() Options {
	return Options{
		Level:          "info",
		Console:        true,
		FileMaxSizeMB:  50,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// FromEnv returns DefaultOptions adjusted by OSTAT_LOG_* environment
// variables.
func FromEnv() Options {
	opts := DefaultOptions()
	if level := os.Getenv(EnvLogLevel); level != "" {
		opts.Level = level
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		opts.File = file
	}
	if maxMB := os.Getenv(EnvLogFileMaxMB); maxMB != "" {
		if v, err := strconv.Atoi(maxMB); err == nil && v > 0 {
			opts.FileMaxSizeMB = v
		}
	}
	return opts
}

// New builds a logger from the options. With neither console nor file
// sink enabled the logger discards everything.
func New(opts Options) zerolog.Logger {
	var sinks []io.Writer

	if opts.Console {
		sinks = append(sinks, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
		})
	}
	if opts.File != "" {
		sinks = append(sinks, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.FileMaxSizeMB,
			MaxBackups: opts.FileMaxBackups,
			MaxAge:     opts.FileMaxAgeDays,
		})
	}
	if len(sinks) == 0 {
		sinks = append(sinks, io.Discard)
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.MultiLevelWriter(sinks...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}
