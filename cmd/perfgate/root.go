package main

import (
	"fmt"
	"os"

	"perfgate/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command. The tool is single-purpose: the
// positional argument is the benchmark results file to gate on.
var rootCmd = &cobra.Command{
	Use:   "perfgate <results-file>",
	Short: "Validate benchmark results against performance targets",
	Long: `perfgate turns raw benchmark timings into pass/fail gates. It checks each
benchmark result against a fixed table of latency, throughput, and memory
targets, and can track regressions against persisted per-benchmark baselines.

Note that by default the exit status is always zero; findings only affect
the exit status under --strict. CI pipelines normally want --strict.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runValidate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./perfgate.yaml)")

	registerGateFlags(rootCmd.Flags())

	viper.BindPFlag("baseline_dir", rootCmd.Flags().Lookup("baseline-dir"))
	viper.BindPFlag("regression_analysis", rootCmd.Flags().Lookup("regression-analysis"))
	viper.BindPFlag("strict", rootCmd.Flags().Lookup("strict"))
	viper.BindPFlag("save", rootCmd.Flags().Lookup("save"))
	viper.BindPFlag("history_file", rootCmd.Flags().Lookup("history-file"))
}

func registerGateFlags(flags *pflag.FlagSet) {
	flags.String("baseline-dir", "baselines", "Directory containing performance baselines")
	flags.Bool("regression-analysis", false, "Perform regression analysis against baselines")
	flags.Bool("strict", false, "Exit with error code if any targets fail")
	flags.Bool("save", false, "Append a run record to the history file")
	flags.String("history-file", ".perfgate/history.json", "File to store run history")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
}
