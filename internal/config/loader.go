package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of every environment override.
	EnvPrefix = "PATHFINDER_"
	// ConfigEnvVar names the variable holding a config file path.
	ConfigEnvVar = EnvPrefix + "CONFIG"
)

// ErrConfigFile is returned when an explicitly requested file cannot be read.
var ErrConfigFile = errors.New("config: cannot load config file")

// Loader loads configuration from several sources.
type Loader struct {
	k           *koanf.Koanf
	explicit    string   // --config, must exist when set
	searchPaths []string // tried in order when no explicit file is given
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigFile sets a file that must exist and parse.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.explicit = path
	}
}

// WithSearchPaths replaces the optional file locations.
func WithSearchPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.searchPaths = paths
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// NewLoader creates a Loader with the default search paths.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		searchPaths: []string{"pathfinder.yaml", ".pathfinder.yaml"},
		envPrefix:   EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads configuration with priority:
//  1. Defaults (lowest)
//  2. Config file (yaml)
//  3. Environment variables (highest)
func (l *Loader) Load() (*Config, error) {
	// 1. Defaults
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2. Config file
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	// 3. Environment overrides
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// 4. Unmarshal
	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	// 5. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Defaults returns the built-in settings as a flat koanf map.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":       "warn",
		"log.format":      "console",
		"log.output":      "stderr",
		"log.file":        "",
		"log.max_size_mb": 10,
		"log.max_backups": 3,
		"output.color":    true,
		"output.workers":  runtime.GOMAXPROCS(0),
	}
}

// loadConfigFile loads the explicit file, then $PATHFINDER_CONFIG, then the
// first existing search path. Only the last step tolerates a missing file.
func (l *Loader) loadConfigFile() error {
	path := l.explicit
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path != "" {
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%w %q: %w", ErrConfigFile, path, err)
		}

		return nil
	}

	for _, p := range l.searchPaths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := l.k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return fmt.Errorf("%w %q: %w", ErrConfigFile, p, err)
		}

		return nil
	}

	return nil
}

// loadEnv maps PATHFINDER_LOG_MAX_SIZE_MB to log.max_size_mb and so on.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, any) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if mapped, ok := envKeyMappings[key]; ok {
			return mapped, value
		}

		// Unknown variables, including PATHFINDER_CONFIG itself, are ignored.
		return "", nil
	}), nil)
}

// envKeyMappings maps environment suffixes to config keys. Needed because
// several keys contain underscores.
var envKeyMappings = map[string]string{
	"log_level":       "log.level",
	"log_format":      "log.format",
	"log_output":      "log.output",
	"log_file":        "log.file",
	"log_max_size_mb": "log.max_size_mb",
	"log_max_backups": "log.max_backups",
	"output_color":    "output.color",
	"output_workers":  "output.workers",
}
