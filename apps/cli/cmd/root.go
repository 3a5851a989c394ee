package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "reqforge",
	Short: "Build HTTP requests. Print them. Send nothing.",
	Long: `reqforge builds HTTP request descriptions from flags, director presets
or recipe files, and prints what executing them would look like. It never
opens a network connection.`,
	SilenceUsage: true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

var (
	configFlag  string
	outputFlag  string
	pickFlag    string
	noColorFlag bool
	verboseFlag bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", getEnvString("REQFORGE_CONFIG", ""), "Path to config file (env: REQFORGE_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", getEnvString("REQFORGE_OUTPUT", ""), "Output format: console, json (env: REQFORGE_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&pickFlag, "pick", "", "Print only the value at this gjson path of the JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", getEnvBool("REQFORGE_NO_COLOR", false), "Disable colored output (env: REQFORGE_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("REQFORGE_VERBOSE", false), "Print request names above each request (env: REQFORGE_VERBOSE)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
