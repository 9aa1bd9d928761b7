// Package logging writes diagnostic logs to a dated file under the app
// data directory. The TUI owns the terminal, so nothing is ever printed
// to stderr once the wizard starts.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// Init opens the log file and replaces the discard logger. Safe to skip
// entirely; L() stays usable either way.
func Init(version string) error {
	logDir := filepath.Join(xdg.StateHome, "ytdiet", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(logDir, fmt.Sprintf("ytdiet-%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
	})
	logger.Info("ytdiet started", "version", version)
	return nil
}

// L returns the active logger.
func L() *log.Logger {
	return logger
}

// Close flushes and closes the log file.
func Close() {
	if logFile != nil {
		logger.Info("ytdiet shutting down")
		logFile.Close()
		logFile = nil
	}
}
