/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/config"
	"github.com/jacobarthurs/scenelint/internal/output"
)

var scanCmd = &cobra.Command{
	Use:   "scan [snapshot]",
	Short: "Scan a scene snapshot for problems",
	Long: `Scan a scene snapshot once and report every problem found.

Input can be a JSON, YAML or TOML snapshot file, or db:<name> to load the
newest snapshot with that name from PostgreSQL.
Use "-" to read from stdin. If no snapshot is provided, enters interactive mode.

Objects list problem codes to skip under their "lint_ignore" property.
Those matches are reported separately as ignored.`,
	Example: `  # Scan a file
  scenelint scan shot010.json

  # Scan a stored snapshot using a saved profile
  scenelint scan db:shot010 --profile studio

  # Skip rules for this run and fail on errors
  scenelint scan shot010.yaml --disable 101,302 --strict

  # Read from stdin
  cat shot010.json | scenelint scan -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		cfg, settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		sc, err := loadScene(cmd, argOrEmpty(args, 0), "")
		if err != nil {
			return err
		}

		report := analyzer.Analyze(sc, settings)

		switch cfg.Format {
		case config.FormatJSON:
			err = output.RenderJSON(os.Stdout, output.ScanDocument{
				Scene:    sc.Name,
				Disabled: disabledCodes(settings),
				Report:   report,
			})
		default:
			err = output.RenderReportText(os.Stdout, sc.Name, report, cfg.Style)
		}
		if err != nil {
			return err
		}

		if strict && report.Errors > 0 {
			return fmt.Errorf("%d error problem(s) found", report.Errors)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addSourceFlags(scanCmd)
	addDisableFlag(scanCmd)
	scanCmd.Flags().Bool("strict", false, "Exit non-zero when any error-severity problem is found")
}
