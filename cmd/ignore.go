/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/scene"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore <snapshot-file> <object> [codes...]",
	Short: "Set or clear the problems an object ignores",
	Long: `Write the "lint_ignore" annotation of an object in a snapshot file.

The given codes replace the object's current list. With --clear the
annotation is removed. Only object-level problems can be ignored. The
snapshot is rewritten in its own format; geometry is never changed.`,
	Example: `  # Keep intentional scale on a prop
  scenelint ignore shot010.json "Crate" 101

  # Stop ignoring anything on it
  scenelint ignore shot010.json "Crate" --clear`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		clearAll, _ := cmd.Flags().GetBool("clear")

		path, name := args[0], args[1]
		if path == "-" || strings.HasPrefix(path, scene.DBPrefix) {
			return fmt.Errorf("ignore edits snapshot files only")
		}

		codes, err := parseCodes(args[2:])
		if err != nil {
			return err
		}
		if clearAll && len(codes) > 0 {
			return fmt.Errorf("--clear takes no codes")
		}
		if !clearAll && len(codes) == 0 {
			return fmt.Errorf("no codes given; use --clear to remove the annotation")
		}

		sc, err := scene.Resolve(path, "", "")
		if err != nil {
			return err
		}
		ob := scene.NewIndex(sc).Lookup(name)
		if ob == nil {
			return fmt.Errorf("object %q not found in %s", name, path)
		}

		if err := analyzer.Annotate(ob, codes); err != nil {
			return err
		}
		if err := scene.Save(path, sc); err != nil {
			return err
		}

		if clearAll {
			fmt.Printf("Object %q no longer ignores any problem.\n", name)
		} else {
			fmt.Printf("Object %q now ignores %s.\n", name, joinCodes(codes))
		}
		return nil
	},
}

func joinCodes(codes []analyzer.Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprint(int(c))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(ignoreCmd)
	ignoreCmd.Flags().Bool("clear", false, "Remove the object's ignore annotation")
}
