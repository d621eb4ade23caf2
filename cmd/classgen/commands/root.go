// Package commands implements the classgen CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/classbuilder/config"
	"github.com/teranos/classbuilder/errors"
	"github.com/teranos/classbuilder/logger"
)

var (
	configPath string
	jsonLog    bool
	logLevel   string

	// activeConfig is resolved once per invocation by RootCmd's pre-run hook
	activeConfig *config.Config
)

// RootCmd is the classgen entry point
var RootCmd = &cobra.Command{
	Use:   "classgen",
	Short: "Generate C# class source from definitions",
	Long: `classgen - Render C#-style class source text.

Classes are described in a TOML or YAML definition file and rendered through
the fluent class builder: imports, an optional banner, the class line, then
methods and properties in definition order.

Available commands:
  render  - Render a definition file
  sample  - Render the built-in demonstration class
  types   - Show type-name normalization and type tags
  config  - Show or initialize classgen configuration
  version - Show build information

Examples:
  classgen render main.toml            # Print rendered class
  classgen render main.yaml -o Main.cs # Write to a file
  classgen render main.toml --watch    # Re-render on every save
  classgen sample                      # Print and write test.cs`,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./classgen.toml searched upward, then ~/.classgen/config.toml)")
	RootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Emit JSON logs on stderr")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v info, -vv debug)")

	RootCmd.AddCommand(RenderCmd)
	RootCmd.AddCommand(SampleCmd)
	RootCmd.AddCommand(TypesCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}

// initialize loads configuration and sets up the global logger. Flags win
// over configuration.
func initialize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	activeConfig = cfg

	if err := logger.Initialize(jsonLog || cfg.Log.JSON); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logger.SetLevel(level)

	if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity > 0 {
		logger.SetVerbosity(verbosity)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}
