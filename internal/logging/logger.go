// Package logging builds the zap logger shared by the CLI and the TUI.
// Output goes to a file under the config directory so it never mixes with
// the optimized prompt on stdout or the terminal UI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sant0-9/lyra/internal/config"
)

// FileName is the log file created inside LogDir.
const FileName = "lyra.log"

// LogDir returns <config dir>/logs.
func LogDir() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// ParseLevel maps a level name to a zap level. Unknown names mean info.
func ParseLevel(name string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// New builds a JSON file logger at the given level. verbose forces debug.
func New(level string, verbose bool) (*zap.Logger, error) {
	dir, err := LogDir()
	if err != nil {
		return nil, fmt.Errorf("logging: resolve dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("logging: create %s: %w", dir, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{filepath.Join(dir, FileName)}
	cfg.ErrorOutputPaths = []string{filepath.Join(dir, FileName)}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	return logger.Named("lyra"), nil
}

// NewOrNop is New, falling back to a no-op logger when the file sink can't
// be opened. Logging never stops the optimizer from running.
func NewOrNop(level string, verbose bool) *zap.Logger {
	logger, err := New(level, verbose)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
