// Package cmd implements the testatlas command line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "testatlas",
	Short: "testatlas — static test-structure extraction for JS/TS files",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
