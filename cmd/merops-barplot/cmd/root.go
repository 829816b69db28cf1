package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool

	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "merops-barplot",
	Short: "Draws MEROPS peptidase family counts as a colored horizontal bar chart.",
	Long: `merops-barplot reads a table of MEROPS peptidase family counts (Family, Catalytic_type
and Count columns) and draws it as a horizontal bar chart. Each family gets its own color
and the chart is written as a high resolution PNG and a PDF.

Without a command it runs render with its defaults.`,
	Args:          cobra.NoArgs,
	RunE:          cliCmdRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// cliCmdRoot runs the render command as if it had been called without flags.
func cliCmdRoot(cmd *cobra.Command, args []string) error {
	return cliCmdRender(renderCmd, args)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.merops-barplot.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in the working directory and then home directory with name ".merops-barplot" (without extension).
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".merops-barplot")
	}

	viper.SetEnvPrefix("MEROPS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. Stdout is reserved for command output.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// printError prints err, listing each error separately when it is a multierror.
func printError(err error) {
	if merr, ok := err.(*multierror.Error); ok {
		fmt.Fprintln(os.Stderr, "error:")
		for _, e := range merr.Errors {
			fmt.Fprintln(os.Stderr, " ", e)
		}
		return
	}

	fmt.Fprintln(os.Stderr, "error:", err)
}
