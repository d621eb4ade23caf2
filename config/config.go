// Package config loads classgen settings from defaults, TOML files and
// CLASSGEN_* environment variables.
package config

import (
	"fmt"

	"github.com/teranos/classbuilder/classbuilder"
)

// Config represents the classgen configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" toml:"output" yaml:"output" json:"output"`
	Log     LogConfig     `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
	Builder BuilderConfig `mapstructure:"builder" toml:"builder" yaml:"builder" json:"builder"`
	Watch   WatchConfig   `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`
}

// OutputConfig controls where rendered classes are written
type OutputConfig struct {
	Path      string `mapstructure:"path" toml:"path" yaml:"path" json:"path"`                // empty = stdout only
	Overwrite bool   `mapstructure:"overwrite" toml:"overwrite" yaml:"overwrite" json:"overwrite"` // replace existing output files
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	Level string `mapstructure:"level" toml:"level" yaml:"level" json:"level"` // debug, info, warn, error
}

// BuilderConfig mirrors classbuilder.Config in file form
type BuilderConfig struct {
	ResetOnCreate bool   `mapstructure:"reset_on_create" toml:"reset_on_create" yaml:"reset_on_create" json:"reset_on_create"`
	AsyncStyle    string `mapstructure:"async_style" toml:"async_style" yaml:"async_style" json:"async_style"` // corrected or legacy
}

// WatchConfig configures render --watch
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"`
}

// BuilderConfig converts the builder section into a classbuilder.Config.
// Call Validate first; an unparseable async style falls back to the default.
func (c *Config) BuilderConfig() *classbuilder.Config {
	cfg := classbuilder.DefaultConfig()
	cfg.ResetOnCreate = c.Builder.ResetOnCreate
	if style, err := classbuilder.ParseAsyncStyle(c.Builder.AsyncStyle); err == nil {
		cfg.AsyncStyle = style
	}
	return cfg
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Output: %q, Log: {JSON: %t, Level: %s}, Builder: {ResetOnCreate: %t, AsyncStyle: %s}}",
		c.Output.Path, c.Log.JSON, c.Log.Level, c.Builder.ResetOnCreate, c.Builder.AsyncStyle)
}
