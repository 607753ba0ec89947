// Package config loads the hooklens configuration file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfigYAML []byte

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = ".hooklens.yaml"

// UnlistedPolicy decides what the classifier does with initializer shapes
// that are neither complex nor trivial (template strings, unary and new
// expressions, identifiers, member accesses...).
type UnlistedPolicy string

const (
	// UnlistedIgnore produces no finding for unlisted shapes.
	UnlistedIgnore UnlistedPolicy = "ignore"
	// UnlistedReport produces a finding with class "other".
	UnlistedReport UnlistedPolicy = "report"
)

// Config holds the tunable names and discovery rules.
type Config struct {
	// Module is the import source the hooks must come from.
	Module string `yaml:"module"`

	// StateHook and EffectHook are the tracked hook names.
	StateHook  string `yaml:"state_hook"`
	EffectHook string `yaml:"effect_hook"`

	// LogFunction is the callee used by every injected log statement.
	LogFunction string `yaml:"log_function"`

	// ProfilerComponent is the wrapper element used by the profile command.
	ProfilerComponent string `yaml:"profiler_component"`

	Extensions []string `yaml:"extensions"`
	SkipDirs   []string `yaml:"skip_dirs"`

	// TestDir is skipped in addition to SkipDirs by the rewriting commands.
	TestDir string `yaml:"test_dir"`

	Unlisted    UnlistedPolicy `yaml:"unlisted"`
	MaxFileSize int            `yaml:"max_file_size"`
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}

	return cfg
}

// Load reads the configuration at path on top of the defaults. An empty
// path tries DefaultFileName and silently falls back to the defaults when it
// does not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	slog.Debug("config loaded", slog.String("path", path), slog.String("module", cfg.Module))

	return cfg, nil
}

// Validate checks that every required name is set.
func (c Config) Validate() error {
	required := map[string]string{
		"module":             c.Module,
		"state_hook":         c.StateHook,
		"effect_hook":        c.EffectHook,
		"log_function":       c.LogFunction,
		"profiler_component": c.ProfilerComponent,
	}

	var missing []string

	for _, key := range []string{"module", "state_hook", "effect_hook", "log_function", "profiler_component"} {
		if strings.TrimSpace(required[key]) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required keys: %s", strings.Join(missing, ", "))
	}

	switch c.Unlisted {
	case UnlistedIgnore, UnlistedReport:
	default:
		return fmt.Errorf("unlisted must be %q or %q, got %q", UnlistedIgnore, UnlistedReport, c.Unlisted)
	}

	if len(c.Extensions) == 0 {
		return errors.New("extensions must not be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("max_file_size must be positive")
	}

	return nil
}
