// Package logging builds the zap logger used by the pathfinder CLI.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/pathgraph/internal/config"
)

// Option adjusts how New builds the logger.
type Option func(*options)

type options struct {
	sink  zapcore.WriteSyncer
	debug bool
}

// WithSink sends log output to w instead of the configured destination.
func WithSink(w zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.sink = w
	}
}

// WithDebug forces the debug level regardless of cfg.Level.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// New builds a zap logger from cfg. File output goes through a lumberjack
// rotating writer. Callers should Sync the logger before exiting.
func New(cfg config.LogConfig, opts ...Option) (*zap.Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Level
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if o.debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	// 2) Encoder
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console", "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	// 3) Destination
	sink := o.sink
	if sink == nil {
		if sink, err = destination(cfg); err != nil {
			return nil, err
		}
	}

	return zap.New(zapcore.NewCore(enc, sink, level)), nil
}

func destination(cfg config.LogConfig) (zapcore.WriteSyncer, error) {
	switch cfg.Output {
	case "stderr", "":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "file":
		if cfg.File == "" {
			return nil, fmt.Errorf("logging: file output needs a path")
		}

		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}), nil
	default:
		return nil, fmt.Errorf("logging: unknown output %q", cfg.Output)
	}
}
