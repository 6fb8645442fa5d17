/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobarthurs/scenelint/internal/fixture"
	"github.com/jacobarthurs/scenelint/internal/scene"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures [codes...]",
	Short: "Generate a snapshot that triggers every rule",
	Long: `Build a sample scene with one broken object or collection per rule, or
only for the given problem codes. Useful for trying the scanner and for
checking a scene exporter end to end.

Without --output the snapshot is written to stdout as JSON.`,
	Example: `  # Every rule
  scenelint fixtures -o fixtures.json

  # Only the curve rules, as YAML
  scenelint fixtures 301 302 303 -o curves.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		codes, err := parseCodes(args)
		if err != nil {
			return err
		}
		sc, err := fixture.Build(codes...)
		if err != nil {
			return err
		}

		if out == "" {
			data, err := scene.Marshal(sc, scene.FormatJSON)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}

		if err := scene.Save(out, sc); err != nil {
			return err
		}
		fmt.Printf("Wrote %d objects to %s.\n", len(sc.Objects), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
	fixturesCmd.Flags().StringP("output", "o", "", "Snapshot file to write (.json, .yaml or .toml)")
}
