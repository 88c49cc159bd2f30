// Package config loads pathfinder settings from defaults, an optional YAML
// file and PATHFINDER_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of the pathfinder configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
}

// LogConfig controls the zap logger built by internal/logging.
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // console, json
	Output     string `koanf:"output"`      // stderr, stdout, file
	File       string `koanf:"file"`        // path used when output is file
	MaxSizeMB  int    `koanf:"max_size_mb"` // rotation threshold
	MaxBackups int    `koanf:"max_backups"` // rotated files to keep
}

// OutputConfig controls report rendering and fan-out.
type OutputConfig struct {
	Color   bool `koanf:"color"`
	Workers int  `koanf:"workers"` // concurrent runs for bellman-ford --all
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
	validOutputs = map[string]bool{"stderr": true, "stdout": true, "file": true}
)

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	c.Log.Level = strings.ToLower(c.Log.Level)
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %q", c.Log.Level))
	}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: console, json, got %q", c.Log.Format))
	}
	if !validOutputs[c.Log.Output] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stderr, stdout, file, got %q", c.Log.Output))
	}
	if c.Log.Output == "file" && c.Log.File == "" {
		errs = append(errs, "log.file is required when log.output is file")
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		errs = append(errs, "log.max_size_mb and log.max_backups must be non-negative")
	}
	if c.Output.Workers < 1 {
		errs = append(errs, fmt.Sprintf("output.workers must be at least 1, got %d", c.Output.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}

	return nil
}
