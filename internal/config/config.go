// Package config provides configuration types, defaults, and persistence
// for the menukit CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/menukit/internal/log"
)

// Config holds all configuration options for menukit.
type Config struct {
	// ActiveClass is the class put on the wrapping element of active items.
	ActiveClass string `mapstructure:"active_class"`

	// URLPrefix is prepended to every link destination before rendering.
	URLPrefix string `mapstructure:"url_prefix"`

	// WatchDebounceMS is the quiet period in milliseconds before a changed
	// definition file triggers a re-render in watch mode.
	WatchDebounceMS int `mapstructure:"watch_debounce_ms"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		ActiveClass:     "active",
		WatchDebounceMS: 300,
		LogLevel:        "info",
	}
}

// Validate checks the configuration for values that cannot work.
func Validate(cfg Config) error {
	if cfg.ActiveClass == "" {
		return fmt.Errorf("active_class must not be empty")
	}
	// . and # are selector metacharacters and would split the class when it
	// is spliced into the item selector at render time.
	if strings.ContainsAny(cfg.ActiveClass, " \t\"'<>.#") {
		return fmt.Errorf("active_class %q contains invalid characters", cfg.ActiveClass)
	}
	if cfg.WatchDebounceMS < 0 {
		return fmt.Errorf("watch_debounce_ms must not be negative, got %d", cfg.WatchDebounceMS)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written for new installs.
func DefaultConfigTemplate() string {
	return `# menukit configuration

# Class added to the <li> wrapping an active item.
active_class: active

# Prefix prepended to every link url, e.g. "/en" for a locale mount.
url_prefix: ""

# Quiet period (ms) before a changed definition re-renders in --watch mode.
watch_debounce_ms: 300

# Log verbosity: debug, info, warn, error.
log_level: info
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
