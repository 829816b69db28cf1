package cmd

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Checks the given family table(s) for errors and reports the errors. No chart is drawn.",
	Long: `The check command loads the given family tables and reports any errors, such as missing
Family, Catalytic_type or Count columns or counts that aren't integers. Every table is
checked, a bad table doesn't stop the others from being checked.`,
	RunE: cliCmdCheck,
}

var errCheckFailed = errors.New("check failed")

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("files", "f", "", "Comma separated list of family tables")
	checkCmd.Flags().IntP("header-row", "r", 0, "Number of rows to skip before the header row")
}

func cliCmdCheck(cmd *cobra.Command, args []string) error {
	files := listOption(cmd, "files", args)
	if len(files) == 0 {
		return errors.New("no family tables given, use --files or pass them as arguments")
	}

	out := cmd.OutOrStdout()
	loader := familytable.NewLoader(intOption(cmd, "header-row"), files)

	tables, err := loader.Load()
	for _, table := range tables {
		fmt.Fprintf(out, "%s: %d rows, %d families\n", table.Name, len(table.Rows), len(table.Families()))
	}

	if err != nil {
		fmt.Fprintln(out, "Loading family tables failed")
		if merr, ok := err.(*multierror.Error); ok {
			for _, e := range merr.Errors {
				fmt.Fprintln(out, " ", e)
			}
		} else {
			fmt.Fprintln(out, " ", err)
		}
		return errCheckFailed
	}

	return nil
}
