/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/config"
	"github.com/jacobarthurs/scenelint/internal/profile"
	"github.com/jacobarthurs/scenelint/internal/scene"
)

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("db", "d", "", "PostgreSQL connection string for db:<name> snapshots")
	cmd.Flags().StringP("profile", "p", "", "Use named profile from config")
	cmd.MarkFlagsMutuallyExclusive("db", "profile")
}

func addDisableFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("disable", nil, "Problem codes to skip for this run (e.g. 101,302)")
}

func connString(cmd *cobra.Command) (string, error) {
	db, _ := cmd.Flags().GetString("db")
	profileName, _ := cmd.Flags().GetString("profile")
	return profile.ResolveConnStr(db, profileName)
}

// loadScene resolves a snapshot argument. Database references only look up a
// connection when they need one.
func loadScene(cmd *cobra.Command, input, label string) (*scene.Scene, error) {
	var connStr string
	if strings.HasPrefix(input, scene.DBPrefix) {
		var err error
		if connStr, err = connString(cmd); err != nil {
			return nil, err
		}
	}
	return scene.Resolve(input, connStr, label)
}

// loadSettings reads the config and applies the --disable flag on top of it.
func loadSettings(cmd *cobra.Command) (config.Config, analyzer.Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, analyzer.Settings{}, err
	}

	settings := cfg.Settings()
	if cmd.Flags().Lookup("disable") != nil {
		raw, _ := cmd.Flags().GetStringSlice("disable")
		codes, err := parseCodes(raw)
		if err != nil {
			return config.Config{}, analyzer.Settings{}, err
		}
		settings = settings.Disable(codes...)
	}
	return cfg, settings, nil
}

func parseCode(s string) (analyzer.Code, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid problem code %q", s)
	}
	code := analyzer.Code(n)
	if _, ok := analyzer.Lookup(code); !ok {
		return 0, fmt.Errorf("unknown problem code %d", n)
	}
	return code, nil
}

func parseCodes(raw []string) ([]analyzer.Code, error) {
	codes := make([]analyzer.Code, 0, len(raw))
	for _, s := range raw {
		code, err := parseCode(s)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func disabledCodes(s analyzer.Settings) []analyzer.Code {
	var codes []analyzer.Code
	for c, off := range s.Disabled {
		if off {
			codes = append(codes, c)
		}
	}
	slices.Sort(codes)
	return codes
}

func argOrEmpty(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
