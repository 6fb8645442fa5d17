/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/config"
	"github.com/jacobarthurs/scenelint/internal/output"
	"github.com/jacobarthurs/scenelint/internal/scene"
	"github.com/jacobarthurs/scenelint/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <snapshot>",
	Short: "Rescan a snapshot periodically and whenever it changes",
	Long: `Keep a report of a scene snapshot up to date while the scene is edited.

The snapshot is rescanned every --interval and, for files, as soon as the
file changes. Press Enter to hide or show the report; a hidden report is
discarded and not rescanned. Stop with Ctrl+C.`,
	Example: `  # Watch an export
  scenelint watch shot010.json

  # Watch a stored snapshot every 30 seconds
  scenelint watch db:shot010 --profile studio --interval 30s`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		if input == "-" {
			return fmt.Errorf("watch needs a file or db:<name> snapshot, not stdin")
		}

		cfg, settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var connStr string
		if strings.HasPrefix(input, scene.DBPrefix) {
			if connStr, err = connString(cmd); err != nil {
				return err
			}
		}
		load := func(ctx context.Context) (*scene.Scene, error) {
			if name, ok := strings.CutPrefix(input, scene.DBPrefix); ok {
				if connStr == "" {
					return nil, fmt.Errorf("database snapshot %q requires a database connection", name)
				}
				return scene.Fetch(ctx, connStr, name)
			}
			return scene.Resolve(input, "", "")
		}

		session := watch.NewSession(load, watch.Options{
			Settings: settings,
			Interval: cfg.Interval,
			Logger:   logger,
			Render: func(name string, r *analyzer.Report) {
				if err := renderWatched(cfg, name, r); err != nil {
					logger.Error("rendering report failed", "err", err)
				}
			},
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		triggers := watch.Triggers{Visibility: toggleOnEnter(ctx)}

		if !strings.HasPrefix(input, scene.DBPrefix) {
			w, err := watch.NewFileWatcher(input)
			if err != nil {
				return err
			}
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()
			triggers.Changes = w.Changes
		}

		logger.Info("watching", "snapshot", input, "interval", cfg.Interval)
		return session.Run(ctx, triggers)
	},
}

func renderWatched(cfg config.Config, name string, r *analyzer.Report) error {
	if cfg.Format == config.FormatJSON {
		return output.RenderJSON(os.Stdout, output.ScanDocument{Scene: name, Report: *r})
	}
	return output.RenderReportText(os.Stdout, name, *r, cfg.Style)
}

// toggleOnEnter flips visibility every time a line is read from stdin.
func toggleOnEnter(ctx context.Context) <-chan bool {
	ch := make(chan bool)
	go func() {
		visible := true
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			visible = !visible
			select {
			case ch <- visible:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addSourceFlags(watchCmd)
	addDisableFlag(watchCmd)
	watchCmd.Flags().Duration("interval", config.DefaultInterval, "Rescan period")
	_ = viper.BindPFlag("interval", watchCmd.Flags().Lookup("interval"))
}
