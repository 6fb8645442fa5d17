/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/comparator"
	"github.com/jacobarthurs/scenelint/internal/config"
	"github.com/jacobarthurs/scenelint/internal/output"
)

var compareCmd = &cobra.Command{
	Use:   "compare [old] [new]",
	Short: "Compare the problems of two scene snapshots",
	Long: `Scan two snapshots of the same scene and show which problems were introduced
or resolved, and on which objects.

Inputs can be snapshot files or db:<name> references, in any mix.
Either input (but not both) can be "-" to read from stdin.
If no inputs are provided, enters interactive mode.`,
	Example: `  # Compare two exports
  scenelint compare shot010_v1.json shot010_v2.json

  # Compare a stored snapshot with a local edit
  scenelint compare db:shot010 shot010.yaml --profile studio

  # Read the old snapshot from stdin
  cat v1.json | scenelint compare - v2.json`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		oldInput, newInput := argOrEmpty(args, 0), argOrEmpty(args, 1)
		if oldInput == "-" && newInput == "-" {
			return fmt.Errorf("only one input can be read from stdin")
		}
		if len(args) == 1 {
			return fmt.Errorf("compare needs two snapshots, or none for interactive mode")
		}

		cfg, settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		oldScene, err := loadScene(cmd, oldInput, "old ")
		if err != nil {
			return fmt.Errorf("loading old snapshot: %w", err)
		}
		newScene, err := loadScene(cmd, newInput, "new ")
		if err != nil {
			return fmt.Errorf("loading new snapshot: %w", err)
		}

		c := &comparator.Comparator{IncludeUnchanged: all}
		result := c.Compare(analyzer.Analyze(oldScene, settings), analyzer.Analyze(newScene, settings))

		switch cfg.Format {
		case config.FormatJSON:
			return output.RenderJSON(os.Stdout, result)
		default:
			return output.RenderComparisonText(os.Stdout, result)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addSourceFlags(compareCmd)
	addDisableFlag(compareCmd)
	compareCmd.Flags().BoolP("all", "a", false, "Include problems that did not change")
}
