package classbuilder

import (
	"strings"

	"github.com/teranos/classbuilder/errors"
)

// AsyncStyle selects how WithAsync rewrites a method's return type
type AsyncStyle int

const (
	// AsyncCorrected renders void methods as "async void", methods without a
	// return type as "async Task" and everything else as "async Task<T>".
	// Return types that already start with "async " are left alone.
	AsyncCorrected AsyncStyle = iota

	// AsyncLegacy always renders "Task<T>", including "Task<void>" after
	// AsVoid, and never adds the async keyword. Kept for output compatibility
	// with templates generated before the correction.
	AsyncLegacy
)

// String returns the config spelling of the style
func (s AsyncStyle) String() string {
	if s == AsyncLegacy {
		return "legacy"
	}
	return "corrected"
}

// ParseAsyncStyle resolves "corrected" or "legacy"; empty means corrected
func ParseAsyncStyle(s string) (AsyncStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "corrected":
		return AsyncCorrected, nil
	case "legacy":
		return AsyncLegacy, nil
	default:
		return AsyncCorrected, errors.Newf("unknown async style %q (want corrected or legacy)", s)
	}
}

// Config controls builder behavior. The zero value keeps member fields across
// Create* calls and uses corrected async rendering.
type Config struct {
	// ResetOnCreate makes every CreateMethod/CreateProperty start from an
	// empty descriptor instead of inheriting the previous member's fields
	ResetOnCreate bool

	// AsyncStyle selects WithAsync rendering
	AsyncStyle AsyncStyle
}

// DefaultConfig returns the zero-value configuration
func DefaultConfig() *Config {
	return &Config{}
}
