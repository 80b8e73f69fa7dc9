// Package logging builds the application *slog.Logger on top of zap.
package logging

import (
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New returns a slog logger backed by a zap core: JSON output in production,
// colored console output in development. level is one of debug, info, warn, error.
func New(level string, development bool) (*slog.Logger, func() error, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build zap logger: %w", err)
	}

	return slog.New(zapslog.NewHandler(logger.Core())), logger.Sync, nil
}

// NewForCore wraps an existing core. Tests pass an observer core here.
func NewForCore(core zapcore.Core) *slog.Logger {
	return slog.New(zapslog.NewHandler(core))
}
