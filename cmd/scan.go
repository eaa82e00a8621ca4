package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/testatlas/core/pkg/parser"
)

var (
	scanJSONFlag     bool
	scanWorkersFlag  int
	scanPatternsFlag []string
)

var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Scan a directory tree for test files and summarize the blocks found",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunScan(cmd.Context(), cmd.OutOrStdout(), args[0], scanJSONFlag, scanWorkersFlag, scanPatternsFlag)
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSONFlag, "json", false, "Print the full inventory as JSON")
	scanCmd.Flags().IntVar(&scanWorkersFlag, "workers", 0, "Concurrent file parsers (0 = GOMAXPROCS)")
	scanCmd.Flags().StringSliceVar(&scanPatternsFlag, "pattern", nil, "Glob pattern selecting test files (repeatable)")
	rootCmd.AddCommand(scanCmd)
}

func RunScan(ctx context.Context, w io.Writer, root string, asJSON bool, workers int, patterns []string) error {
	opts := []parser.ScanOption{parser.WithWorkers(workers)}
	if len(patterns) > 0 {
		opts = append(opts, parser.WithPatterns(patterns...))
	}

	result, err := parser.Scan(ctx, root, opts...)
	if err != nil {
		return err
	}

	for _, scanErr := range result.Errors {
		fmt.Fprintf(w, "warn: %v\n", scanErr)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Inventory)
	}

	summary := map[string]any{
		"filesScanned": result.Stats.FilesScanned,
		"filesParsed":  result.Stats.FilesParsed,
		"suiteCount":   result.Inventory.CountSuites(),
		"testCount":    result.Inventory.CountTests(),
		"duration":     result.Stats.Duration.String(),
	}
	return json.NewEncoder(w).Encode(summary)
}
