package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/testatlas/core/internal/ui"
	"github.com/testatlas/core/pkg/parser"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Parse one test file and print its block tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, file string) error {
	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	result, err := parser.Parse(file, source)
	if err != nil {
		return err
	}

	ui.RenderResult(w, result)
	return nil
}
