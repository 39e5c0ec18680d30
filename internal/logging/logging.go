// Package logging builds the charmbracelet/log loggers used by the snake
// binary. The interactive game owns the terminal, so it logs to a file;
// the SSH server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Prefix is stamped on every log line.
const Prefix = "snake"

// New returns a logger writing to w at the given level.
// An unknown level falls back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	})
}

// Open returns a logger backed by the file named in cfg, creating parent
// directories as needed. The returned closer releases the file.
//
// Logging never stops the game: if cfg.File is empty or cannot be opened,
// the logger discards everything. In the failure case one warning is
// written to warn.
func Open(cfg config.Log, warn io.Writer) (*log.Logger, io.Closer) {
	if cfg.File == "" {
		return New(io.Discard, cfg.Level), nopCloser{}
	}

	f, err := openFile(config.ExpandPath(cfg.File))
	if err != nil {
		if warn != nil {
			fmt.Fprintf(warn, "Warning: logging disabled: %v\n", err)
		}
		return New(io.Discard, cfg.Level), nopCloser{}
	}
	return New(f, cfg.Level), f
}

func openFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
