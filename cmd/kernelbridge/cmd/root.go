package cmd

import (
	"github.com/spf13/cobra"
)

var outputFormat string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "kernelbridge",
	Short:         "Run a framework behind a bootstrapped kernel",
	Long:          `kernelbridge resolves a kernel type, lets it prepare a framework and drives the framework lifecycle through the kernel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table or json")
}
