package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/classbuilder/classdef"
	"github.com/teranos/classbuilder/errors"
	"github.com/teranos/classbuilder/logger"
)

var (
	renderOutput string
	renderWatch  bool
	renderFormat string
)

// RenderCmd renders a class definition file
var RenderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a class definition file",
	Long: `Render a TOML or YAML class definition to C# source.

The format is taken from the file extension (.toml, .yaml, .yml) unless
--format is given. Output goes to stdout, or to the file named by -o or
output.path in the configuration.

With --watch the definition is re-rendered each time it is saved. Invalid
definitions are reported and the previous output is left in place.

Examples:
  classgen render main.toml
  classgen render main.yaml -o Main.cs
  classgen render main.def --format toml
  classgen render main.toml -o Main.cs --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	RenderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write rendered class to this file")
	RenderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render when the definition changes")
	RenderCmd.Flags().StringVar(&renderFormat, "format", "", "Definition format: toml, yaml (default: from extension)")
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]
	if renderWatch && renderFormat != "" {
		return errors.WithHint(
			errors.New("--watch cannot be combined with --format"),
			"rename the definition to .toml, .yaml or .yml")
	}

	output := renderOutput
	if output == "" {
		output = activeConfig.Output.Path
	}

	def, err := loadDefinition(path)
	if err != nil {
		return err
	}
	if err := renderDefinition(cmd, def, output, activeConfig.Output.Overwrite); err != nil {
		return err
	}

	if !renderWatch {
		return nil
	}
	// Later renders replace the file written above
	return watchDefinition(cmd, path, output)
}

func loadDefinition(path string) (*classdef.Definition, error) {
	if renderFormat == "" {
		return classdef.Load(path)
	}
	format, err := classdef.ParseFormat(renderFormat)
	if err != nil {
		return nil, err
	}
	return classdef.LoadAs(path, format)
}

func renderDefinition(cmd *cobra.Command, def *classdef.Definition, output string, overwrite bool) error {
	log := logger.ComponentLogger("render")

	text, err := classdef.Render(def, log, activeConfig.BuilderConfig())
	if err != nil {
		return err
	}
	log.Debugw("Class rendered",
		logger.FieldClass, def.Name,
		logger.FieldCount, len(def.Methods)+len(def.Properties),
		logger.FieldSize, len(text))

	return emit(cmd.OutOrStdout(), cmd.ErrOrStderr(), output, text, overwrite)
}

func watchDefinition(cmd *cobra.Command, path, output string) error {
	debounce := time.Duration(activeConfig.Watch.DebounceMs) * time.Millisecond
	w, err := classdef.NewWatcher(path, debounce, logger.ComponentLogger("watch"))
	if err != nil {
		return err
	}

	w.OnChange(func(def *classdef.Definition) error {
		if err := renderDefinition(cmd, def, output, true); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), pterm.Error.Sprintf("%v", err))
			return err
		}
		return nil
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Start()
	fmt.Fprintln(cmd.ErrOrStderr(), pterm.Info.Sprintf("Watching %s (Ctrl+C to stop)", path))

	select {
	case <-ctx.Done():
	case <-w.Done():
	}
	return w.Stop()
}
