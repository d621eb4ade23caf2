package config

import "github.com/spf13/viper"

// Default file names and permissions
const (
	ProjectFileName       = "classgen.toml"
	DefaultDirPermissions = 0750
	DefaultDebounceMs     = 100
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.path", "")
	v.SetDefault("output.overwrite", true)

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")

	// Fresh descriptor per member; a definition file reads one member at a time
	v.SetDefault("builder.reset_on_create", true)
	v.SetDefault("builder.async_style", "corrected")

	v.SetDefault("watch.debounce_ms", DefaultDebounceMs)
}
