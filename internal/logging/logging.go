// Package logging builds the application logger. The terminal belongs to the
// UI, so logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kanji-tui/internal/config"
)

// New returns a JSON file logger at the configured level. An empty file path
// yields a no-op logger.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.FilePath == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.FilePath}
	zc.ErrorOutputPaths = []string{cfg.FilePath}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	return zc.Build()
}
