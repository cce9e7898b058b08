package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-scroller/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.skyscroller/configs/skyscroller.yaml or ./configs/skyscroller.yaml and
edit the values you want to change; missing keys keep their defaults.

Examples:
  skyscroller config > ~/.skyscroller/configs/skyscroller.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stdout.Write(config.GetDefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
