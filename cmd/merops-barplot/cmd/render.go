package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable"
	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/processor"
	"github.com/phanipv-web/Whole-genome-analysis/internal/palette"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultInput = "results/tables/merops_family_top25.tsv"
	defaultPNG   = "results/figures/MEROPS_family_barplot_top25_familyColors_ArialBlack_1000dpi.png"
	defaultPDF   = "results/figures/MEROPS_family_barplot_top25_familyColors_ArialBlack.pdf"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draws the family table as a bar chart and saves it as PNG and PDF.",
	Long: `The render command loads the family table, sorts it by count, colors each family and
writes the chart to every output given (--png, --pdf and --svg). An output set to an
empty string is skipped. Existing files are overwritten.`,
	RunE: cliCmdRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("input", "i", defaultInput, "Path to the family table (.tsv or .xlsx)")
	renderCmd.Flags().IntP("header-row", "r", 0, "Number of rows to skip before the header row")
	renderCmd.Flags().String("png", defaultPNG, "Path of the PNG to write")
	renderCmd.Flags().String("pdf", defaultPDF, "Path of the PDF to write")
	renderCmd.Flags().String("svg", "", "Path of the SVG to write")
	renderCmd.Flags().Int("dpi", 0, "Resolution of the PNG (default is style.dpi, 1000)")
	renderCmd.Flags().StringP("palette", "p", "tab20", "Palette name or comma separated list of #rrggbb colors")
	renderCmd.Flags().String("colors-out", "", "Also write the family colors as YAML to this path")
	renderCmd.Flags().Bool("dry-run", false, "Print the sorted table and colors instead of drawing")
}

// renderOptions collects everything a render needs so it can run without
// cobra or viper.
type renderOptions struct {
	input     string
	headerRow int
	outputs   []string
	palette   string
	colorsOut string
	dryRun    bool
	style     processor.Style
}

func cliCmdRender(cmd *cobra.Command, args []string) error {
	opts, err := renderOptionsFromCmd(cmd)
	if err != nil {
		return err
	}

	return runRender(opts, cmd.OutOrStdout(), logger)
}

func renderOptionsFromCmd(cmd *cobra.Command) (*renderOptions, error) {
	style, err := loadStyle(viper.GetViper())
	if err != nil {
		return nil, err
	}

	if dpi := intOption(cmd, "dpi"); dpi > 0 {
		style.DPI = dpi
	}

	opts := &renderOptions{
		input:     stringOption(cmd, "input"),
		headerRow: intOption(cmd, "header-row"),
		palette:   stringOption(cmd, "palette"),
		colorsOut: stringOption(cmd, "colors-out"),
		dryRun:    boolOption(cmd, "dry-run"),
		style:     style,
	}

	for _, name := range []string{"png", "pdf", "svg"} {
		if path := stringOption(cmd, name); path != "" {
			opts.outputs = append(opts.outputs, path)
		}
	}

	return opts, nil
}

// loadStyle returns the default chart style overlaid with the style section
// of the config file, if any.
func loadStyle(v *viper.Viper) (processor.Style, error) {
	style := processor.DefaultStyle()
	if err := v.UnmarshalKey("style", &style); err != nil {
		return style, errors.Wrap(err, "invalid style configuration")
	}

	return style, nil
}

func runRender(opts *renderOptions, out io.Writer, log *zap.Logger) error {
	p, err := palette.ByName(opts.palette)
	if err != nil {
		return err
	}

	var processors []familytable.Processor
	if opts.dryRun {
		processors = append(processors, familytable.Display(p, out))
	} else {
		processors = append(processors, familytable.Plot(opts.style, p, opts.outputs, out, log))
	}

	log.Debug("rendering family table",
		zap.String("input", opts.input),
		zap.Strings("outputs", opts.outputs),
		zap.Int("dpi", opts.style.DPI),
		zap.Bool("dry_run", opts.dryRun))

	table, err := familytable.Run(opts.input, opts.headerRow, processors...)
	if err != nil {
		return err
	}

	if opts.colorsOut != "" && !opts.dryRun {
		if err := writeColors(p.Assign(table.Families()), opts.colorsOut); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote: %s\n", opts.colorsOut)
	}

	return nil
}

func writeColors(assignment *palette.Assignment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}

	if err := assignment.WriteYAML(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "unable to write %s", path)
	}

	return f.Close()
}
