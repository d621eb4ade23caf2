package config

import (
	"strings"

	"github.com/teranos/classbuilder/classbuilder"
	"github.com/teranos/classbuilder/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.Newf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	if _, err := classbuilder.ParseAsyncStyle(c.Builder.AsyncStyle); err != nil {
		return errors.Wrap(err, "builder.async_style")
	}

	// 0 = reload immediately, negative = invalid
	if c.Watch.DebounceMs < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMs)
	}

	return nil
}
