/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/jacobarthurs/scenelint/internal/profile"
	"github.com/jacobarthurs/scenelint/internal/scene"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage snapshot database profiles",
	Long: `A profile names the PostgreSQL database that db:<name> snapshots are read
from. The default profile is used when neither --db nor --profile is given.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles and the database each one points at",
	Example: `  scenelint profile list
  scenelint profile list --show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		show, _ := cmd.Flags().GetBool("show")

		profiles, err := profile.List()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles configured. Run 'scenelint profile add <name> <conn_str>' to create one.")
			return nil
		}
		def, err := profile.GetDefault()
		if err != nil {
			return err
		}
		return writeProfiles(os.Stdout, profiles, def, show)
	},
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name> <conn_str>",
	Short: "Add or update a profile",
	Long: `Save a connection string under a name. The string is checked before it is
saved but no connection is made.`,
	Example: `  scenelint profile add studio "postgres://lint@assets:5432/scenes"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, connStr := args[0], args[1]
		if _, err := pgx.ParseConfig(connStr); err != nil {
			return fmt.Errorf("invalid connection string for %q: %w", name, err)
		}
		if err := profile.Add(name, connStr); err != nil {
			return err
		}
		fmt.Printf("Profile %q saved (%s).\n", name, describeConn(connStr))
		return nil
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := profile.Remove(args[0]); err != nil {
			return err
		}
		fmt.Printf("Profile %q removed.\n", args[0])
		return nil
	},
}

var profileDefaultCmd = &cobra.Command{
	Use:   "default [name]",
	Short: "Set, show or clear the default profile",
	Example: `  scenelint profile default studio
  scenelint profile default
  scenelint profile default --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clearDefault, _ := cmd.Flags().GetBool("clear")

		switch {
		case clearDefault && len(args) > 0:
			return fmt.Errorf("--clear takes no profile name")
		case clearDefault:
			if err := profile.ClearDefault(); err != nil {
				return err
			}
			fmt.Println("Default profile cleared.")
		case len(args) == 1:
			if err := profile.SetDefault(args[0]); err != nil {
				return err
			}
			fmt.Printf("Default profile set to %q.\n", args[0])
		default:
			def, err := profile.GetDefault()
			if err != nil {
				return err
			}
			if def == "" {
				fmt.Println("No default profile.")
			} else {
				fmt.Println(def)
			}
		}
		return nil
	},
}

var profileSnapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List the snapshots stored in a profile's database",
	Long: `Connect to the database named by --db, --profile or the default profile and
list every snapshot name that db:<name> can load.`,
	Example: `  scenelint profile snapshots
  scenelint profile snapshots -p studio`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		connStr, err := connString(cmd)
		if err != nil {
			return err
		}
		if connStr == "" {
			return fmt.Errorf("no database given; use --db, --profile or set a default profile")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		infos, err := scene.ListSnapshots(ctx, connStr)
		if err != nil {
			return err
		}
		return writeSnapshots(os.Stdout, infos)
	},
}

func writeProfiles(w io.Writer, profiles []profile.Profile, def string, show bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range profiles {
		marker := " "
		if p.Name == def {
			marker = "*"
		}
		target := describeConn(p.ConnStr)
		if show {
			target = p.ConnStr
		}
		fmt.Fprintf(tw, "%s %s\t%s\n", marker, p.Name, target)
	}
	return tw.Flush()
}

func writeSnapshots(w io.Writer, infos []scene.SnapshotInfo) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "No snapshots stored.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(tw, "%s%s\t%d captures\t%s\n",
			scene.DBPrefix, info.Name, info.Captures, info.Latest.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

// describeConn names the database a connection string points at without
// showing credentials.
func describeConn(connStr string) string {
	cfg, err := pgx.ParseConfig(connStr)
	if err != nil {
		return "invalid connection string"
	}
	return fmt.Sprintf("%s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd, profileAddCmd, profileRemoveCmd, profileDefaultCmd, profileSnapshotsCmd)
	profileListCmd.Flags().BoolP("show", "s", false, "Show full connection strings")
	profileDefaultCmd.Flags().Bool("clear", false, "Clear the default profile")
	addSourceFlags(profileSnapshotsCmd)
}
