/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobarthurs/scenelint/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create config file with example template",
	Long: `Create .scenelint.yaml in the current directory with every rule enabled
and the default report style, format and watch interval.

If a config file already exists, it will not be overwritten.`,
	Example: `  # Create default config
  scenelint init

  # Overwrite existing config
  scenelint init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := config.FileName + ".yaml"

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}

		data, err := config.Template()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "F", false, "Overwrite existing config file")
}
