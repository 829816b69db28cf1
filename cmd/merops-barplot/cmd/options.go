package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// The options below are looked up in order: the command line flag when it was
// given, then the environment (MEROPS_<NAME>) or config file, then the flag's
// default. Flags are not bound to viper because several commands share flag
// names.

func stringOption(cmd *cobra.Command, name string) string {
	if cmd.Flags().Changed(name) || !viper.IsSet(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}

	return viper.GetString(name)
}

func intOption(cmd *cobra.Command, name string) int {
	if cmd.Flags().Changed(name) || !viper.IsSet(name) {
		value, _ := cmd.Flags().GetInt(name)
		return value
	}

	return viper.GetInt(name)
}

func boolOption(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Changed(name) || !viper.IsSet(name) {
		value, _ := cmd.Flags().GetBool(name)
		return value
	}

	return viper.GetBool(name)
}

// listOption splits a comma separated option and appends args.
func listOption(cmd *cobra.Command, name string, args []string) []string {
	var values []string
	for _, value := range strings.Split(stringOption(cmd, name), ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}

	return append(values, args...)
}
