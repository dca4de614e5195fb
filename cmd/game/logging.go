package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/tomz197/phaseshift/internal/log"
)

// logPath determines the log file to use. The terminal is in raw mode while
// playing, so logs go to a file: customPath if usable, else the XDG state dir.
func logPath(customPath string) (string, error) {
	if customPath != "" {
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err == nil {
			return customPath, nil
		}
		fmt.Fprintf(os.Stderr, "Warning: could not use log path %s, falling back to XDG default\n", customPath)
	}

	path, err := xdg.StateFile("phaseshift/phaseshift.log")
	if err != nil {
		return "", fmt.Errorf("could not get log path: %w", err)
	}
	return path, nil
}

// setupLogging points the default logger at the log file.
// The returned file must be closed by the caller.
func setupLogging(level log.Level, customPath string) (*os.File, error) {
	path, err := logPath(customPath)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	log.SetDefault(log.NewLogger(&log.LoggerConfiguration{
		Level:  level,
		Writer: f,
		Prefix: "phaseshift",
	}))
	log.G().Info("logging initialized", "path", path, "level", level)
	return f, nil
}
