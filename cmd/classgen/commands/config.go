package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/classbuilder/config"
	"github.com/teranos/classbuilder/errors"
)

// ConfigCmd groups configuration subcommands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize classgen configuration",
	Long: `Display and manage classgen configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (CLASSGEN_* prefix, e.g. CLASSGEN_LOG_LEVEL)
3. Project config (classgen.toml, searched upward from the working directory)
4. User config (~/.classgen/config.toml)
5. Default values

Examples:
  classgen config show                 # Show effective configuration
  classgen config show --format yaml   # Show it as YAML
  classgen config init                 # Write defaults to ./classgen.toml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective classgen configuration from all sources",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with default values",
	Long: `Write the default configuration as TOML to path (default: ./classgen.toml).
An existing file is kept as <path>.back1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(activeConfig, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(activeConfig)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# classgen configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(activeConfig)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# classgen configuration\n%s", string(data))

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectFileName
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Fprintln(cmd.ErrOrStderr(), pterm.Success.Sprintf("Wrote default configuration to %s", abs))
	return nil
}
