// Package obslog builds the zap.Logger used throughout the module, matching
// main.go's dev/prod initLogger split in the teacher repo.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger for the given environment name. "production" (the
// default for anything other than "development"/"dev") gets JSON output at
// Info level; "development"/"dev" gets human-readable console output at
// Debug level with stack traces on Warn+.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "development", "dev":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	default:
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg.Build()
	}
}

// Nop returns a logger that discards everything, for callers (tests, library
// consumers that don't want logging) that don't pass their own.
func Nop() *zap.Logger { return zap.NewNop() }
