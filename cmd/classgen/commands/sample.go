package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/classbuilder/classdef"
	"github.com/teranos/classbuilder/logger"
)

var sampleOutput string

// SampleCmd renders the built-in demonstration class
var SampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Render the built-in demonstration class",
	Long: `Render a sealed Main class with one method and two properties, print it,
and write it to test.cs (or the file given with -o). Pass -o "" to print only.`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	SampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "test.cs", "File to write the sample class to")
}

func runSample(cmd *cobra.Command, args []string) error {
	log := logger.ComponentLogger("sample")

	text, err := classdef.Render(classdef.Sample(), log, activeConfig.BuilderConfig())
	if err != nil {
		return err
	}

	if err := emit(cmd.OutOrStdout(), cmd.ErrOrStderr(), "", text, false); err != nil {
		return err
	}
	if sampleOutput == "" {
		return nil
	}
	return emit(cmd.OutOrStdout(), cmd.ErrOrStderr(), sampleOutput, text, activeConfig.Output.Overwrite)
}
