// Package watch keeps one long-lived report fresh while a scene is being
// edited: it rescans on a fixed interval and whenever the snapshot changes.
package watch

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/scene"
)

// Loader returns the current state of the watched scene.
type Loader func(ctx context.Context) (*scene.Scene, error)

// RenderFunc is called after every successful rescan.
type RenderFunc func(sceneName string, r *analyzer.Report)

type Options struct {
	Settings analyzer.Settings
	Interval time.Duration
	Logger   *slog.Logger
	Render   RenderFunc
}

// Triggers are the events that drive a session besides its own timer.
// Either channel may be nil.
type Triggers struct {
	Changes    <-chan struct{}
	Visibility <-chan bool
}

// Session owns a report. All of its methods must be called from one
// goroutine; Run is that goroutine for a live session.
type Session struct {
	load     Loader
	settings analyzer.Settings
	interval time.Duration
	logger   *slog.Logger
	render   RenderFunc

	report  analyzer.Report
	visible bool
	scans   int
}

func NewSession(load Loader, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	settings := opts.Settings
	if settings.Disabled == nil {
		settings = analyzer.DefaultSettings()
	}
	return &Session{
		load:     load,
		settings: settings,
		interval: interval,
		logger:   logger,
		render:   opts.Render,
	}
}

func (s *Session) Report() *analyzer.Report {
	return &s.report
}

func (s *Session) Visible() bool {
	return s.visible
}

// Scans returns the number of completed rescans.
func (s *Session) Scans() int {
	return s.scans
}

// Show makes the session visible and scans immediately.
func (s *Session) Show(ctx context.Context) {
	if s.visible {
		return
	}
	s.visible = true
	s.logger.Debug("session shown")
	s.Rescan(ctx)
}

// Hide stops rescans and empties the report.
func (s *Session) Hide() {
	if !s.visible {
		return
	}
	s.visible = false
	s.report.Cleanup()
	s.logger.Debug("session hidden")
}

// Rescan reloads the scene and replaces the report. A load failure keeps the
// previous report.
func (s *Session) Rescan(ctx context.Context) {
	if !s.visible {
		return
	}

	start := time.Now()
	sc, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("loading scene failed", "err", err)
		return
	}

	s.report.Get(sc, s.settings)
	s.scans++
	s.logger.Debug("rescanned",
		"scene", sc.Name,
		"errors", s.report.Errors,
		"warns", s.report.Warns,
		"ignored", len(s.report.ProblemsIgnored),
		"elapsed", time.Since(start))

	if s.render != nil {
		s.render(sc.Name, &s.report)
	}
}

// Run shows the session and rescans on every tick and file change until ctx
// is done. Ticks stop while the session is hidden.
func (s *Session) Run(ctx context.Context, t Triggers) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.Hide()

	s.Show(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			s.logger.Debug("refresh tick")
			s.Rescan(ctx)

		case _, ok := <-t.Changes:
			if !ok {
				t.Changes = nil
				continue
			}
			s.logger.Debug("snapshot changed")
			if !s.visible {
				continue
			}
			s.Rescan(ctx)
			ticker.Reset(s.interval)

		case show, ok := <-t.Visibility:
			if !ok {
				t.Visibility = nil
				continue
			}
			if show {
				s.Show(ctx)
				ticker.Reset(s.interval)
			} else {
				s.Hide()
				ticker.Stop()
			}
		}
	}
}
