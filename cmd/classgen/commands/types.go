package commands

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/classbuilder/typemap"
)

// TypesCmd shows the type-name normalizer and the type tags
var TypesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show type-name normalization and type tags",
	Long: `Show how return type names are normalized (AsReturnWith, definition
"returns") and which tags are accepted for typed returns (AsReturnWithType,
definition "returns_tag"). Names missing from the mapping pass through
unchanged; matching is case-sensitive.`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func runTypes(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(typemap.TypeMapping))
	for name := range typemap.TypeMapping {
		names = append(names, name)
	}
	sort.Strings(names)

	mapping := pterm.TableData{{"Name", "Renders as"}}
	for _, name := range names {
		mapping = append(mapping, []string{name, typemap.TypeMapping[name]})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(mapping).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)

	tags := pterm.TableData{{"Tag"}}
	for _, tag := range typemap.Tags() {
		tags = append(tags, []string{tag.Name()})
	}
	table, err = pterm.DefaultTable.WithHasHeader().WithData(tags).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}
