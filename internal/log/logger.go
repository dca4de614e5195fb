// Package log wires the structured logger shared by the game binaries.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	charm "github.com/charmbracelet/log"
)

// Logger is the structured logger used throughout the module.
type Logger = charm.Logger

// Level is a logging severity.
type Level = charm.Level

const (
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
)

type LoggerConfiguration struct {
	Level  Level
	Writer io.Writer
	Prefix string
}

// NewLogger builds a structured logger for a writer sink. A nil writer logs to stderr.
func NewLogger(config *LoggerConfiguration) *Logger {
	if config.Writer == nil {
		config.Writer = os.Stderr
	}
	return charm.NewWithOptions(config.Writer, charm.Options{
		Level:           config.Level,
		Prefix:          config.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
// Anything else yields info.
func ParseLevel(level string) Level {
	l, err := charm.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return charm.InfoLevel
	}
	return l
}

// SetDefault sets the default logger
func SetDefault(logger *Logger) {
	charm.SetDefault(logger)
}

// G returns the global logger instance
func G() *Logger {
	return charm.Default()
}

// Server returns a logger scoped to the tick server
func Server() *Logger {
	return G().With("component", "server")
}

// Client returns a logger scoped to the terminal client
func Client() *Logger {
	return G().With("component", "client")
}
