package cmd

import (
	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable"
	"github.com/phanipv-web/Whole-genome-analysis/internal/palette"
	"github.com/spf13/cobra"
)

// colorsCmd represents the colors command
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Prints the color assigned to each family as YAML.",
	Long: `The colors command loads the family table and prints the family to color mapping used by
render. Colors only depend on the set of family names, so the output can be used to color
other figures of the same families consistently.`,
	RunE: cliCmdColors,
}

func init() {
	rootCmd.AddCommand(colorsCmd)
	colorsCmd.Flags().StringP("input", "i", defaultInput, "Path to the family table (.tsv or .xlsx)")
	colorsCmd.Flags().IntP("header-row", "r", 0, "Number of rows to skip before the header row")
	colorsCmd.Flags().StringP("palette", "p", "tab20", "Palette name or comma separated list of #rrggbb colors")
	colorsCmd.Flags().StringP("output", "o", "", "Write the YAML to this path instead of stdout")
}

func cliCmdColors(cmd *cobra.Command, args []string) error {
	p, err := palette.ByName(stringOption(cmd, "palette"))
	if err != nil {
		return err
	}

	table, err := familytable.LoadFile(stringOption(cmd, "input"), intOption(cmd, "header-row"))
	if err != nil {
		return err
	}

	assignment := p.Assign(table.Families())

	if output := stringOption(cmd, "output"); output != "" {
		return writeColors(assignment, output)
	}

	return assignment.WriteYAML(cmd.OutOrStdout())
}
