/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/config"
	"github.com/jacobarthurs/scenelint/internal/output"
)

type selection struct {
	Code    analyzer.Code `json:"code"`
	Ignored bool          `json:"ignored"`
	Objects []string      `json:"objects"`
}

var selectCmd = &cobra.Command{
	Use:   "select <code> [snapshot]",
	Short: "List the objects affected by a problem",
	Long: `Scan a snapshot and print the names of the objects that carry the given
problem, one per line. Scene-level problems have no objects and are rejected.`,
	Example: `  # Objects with unapplied scale
  scenelint select 101 shot010.json

  # Objects where the scale problem is ignored
  scenelint select 101 shot010.json --ignored`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ignored, _ := cmd.Flags().GetBool("ignored")

		code, err := parseCode(args[0])
		if err != nil {
			return err
		}

		cfg, settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		sc, err := loadScene(cmd, argOrEmpty(args, 1), "")
		if err != nil {
			return err
		}

		report := analyzer.Analyze(sc, settings)
		names, err := report.Select(code, ignored)
		if err != nil {
			return err
		}

		if cfg.Format == config.FormatJSON {
			return output.RenderJSON(os.Stdout, selection{Code: code, Ignored: ignored, Objects: names})
		}
		return output.RenderSelectionText(os.Stdout, code, names, ignored)
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
	addSourceFlags(selectCmd)
	selectCmd.Flags().Bool("ignored", false, "Select objects where the problem is ignored")
}
