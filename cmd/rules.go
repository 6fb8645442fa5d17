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

var rulesCmd = &cobra.Command{
	Use:   "rules [code]",
	Short: "List rules or describe one",
	Long: `Without arguments, list every rule grouped by category, marking rules
disabled in the config. With a problem code, show its severity and a full
description with a recommendation.`,
	Example: `  # List all rules
  scenelint rules

  # Describe the cyclic dependency rule
  scenelint rules 202`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			defs := analyzer.Definitions()
			if cfg.Format == config.FormatJSON {
				return output.RenderJSON(os.Stdout, defs)
			}
			return output.RenderRulesText(os.Stdout, defs, cfg.Settings().Disabled)
		}

		code, err := parseCode(args[0])
		if err != nil {
			return err
		}
		p, _ := analyzer.Lookup(code)
		if cfg.Format == config.FormatJSON {
			return output.RenderJSON(os.Stdout, p)
		}
		return output.RenderRuleText(os.Stdout, p)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
