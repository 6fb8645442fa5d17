/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jacobarthurs/scenelint/internal/config"
)

var Version = "dev"

func init() {
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
	}
	rootCmd.Version = Version

	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .scenelint.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.StringP("format", "f", config.FormatText, "Output format: text, json")
	flags.String("style", config.StyleDetailed, "Report style: detailed, compact")

	for _, key := range []string{"verbose", "format", "style"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

var rootCmd = &cobra.Command{
	Use:          "scenelint",
	SilenceUsage: true,
	Short:        "Lint 3D scene snapshots for common modeling problems",
	Long: `scenelint checks a 3D scene snapshot against a catalog of modeling rules
and reports every problem it finds, grouped by severity.

Snapshots are JSON, YAML or TOML documents exported from the scene, or
snapshots stored in PostgreSQL and referenced as db:<name>.`,
	Example: `  # Scan a snapshot
  scenelint scan shot010.json

  # Keep a report fresh while editing
  scenelint watch shot010.json

  # Show what a rule checks
  scenelint rules 202

  # Create a config file
  scenelint init`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.FileName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// No config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}
