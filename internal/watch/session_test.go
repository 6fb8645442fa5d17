package watch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/fixture"
	"github.com/jacobarthurs/scenelint/internal/scene"
)

type fakeLoader struct {
	scenes []*scene.Scene
	err    error
	calls  int
}

func (f *fakeLoader) load(context.Context) (*scene.Scene, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	i := min(f.calls-1, len(f.scenes)-1)
	return f.scenes[i], nil
}

func mustBuild(t *testing.T, codes ...analyzer.Code) *scene.Scene {
	t.Helper()
	s, err := fixture.Build(codes...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestSession_ShowScansImmediately(t *testing.T) {
	loader := &fakeLoader{scenes: []*scene.Scene{mustBuild(t, analyzer.CodeObjectScale)}}
	var rendered int
	s := NewSession(loader.load, Options{Render: func(string, *analyzer.Report) { rendered++ }})

	s.Show(context.Background())

	if !s.Visible() || s.Scans() != 1 || rendered != 1 {
		t.Fatalf("visible=%v scans=%d rendered=%d", s.Visible(), s.Scans(), rendered)
	}
	if s.Report().Errors != 1 {
		t.Errorf("Errors = %d, want 1", s.Report().Errors)
	}

	s.Show(context.Background())
	if s.Scans() != 1 {
		t.Error("showing a visible session should not rescan")
	}
}

func TestSession_HideCleansUpAndStopsRescans(t *testing.T) {
	loader := &fakeLoader{scenes: []*scene.Scene{mustBuild(t, analyzer.CodeObjectScale)}}
	s := NewSession(loader.load, Options{})

	s.Show(context.Background())
	s.Hide()

	if !s.Report().Empty() || s.Report().Errors != 0 {
		t.Errorf("report after hide = %+v", s.Report())
	}

	s.Rescan(context.Background())
	if loader.calls != 1 {
		t.Errorf("hidden session loaded %d times, want 1", loader.calls)
	}
}

func TestSession_LoadErrorKeepsReport(t *testing.T) {
	loader := &fakeLoader{scenes: []*scene.Scene{mustBuild(t, analyzer.CodeObjectScale)}}
	s := NewSession(loader.load, Options{})
	s.Show(context.Background())

	loader.err = errors.New("snapshot is being written")
	s.Rescan(context.Background())

	if s.Scans() != 1 || s.Report().Errors != 1 {
		t.Errorf("scans=%d errors=%d, want previous report kept", s.Scans(), s.Report().Errors)
	}
}

func TestSession_RescanReplacesReport(t *testing.T) {
	loader := &fakeLoader{scenes: []*scene.Scene{
		mustBuild(t, analyzer.CodeObjectScale),
		mustBuild(t, analyzer.CodeObjectEmpty),
	}}
	s := NewSession(loader.load, Options{})
	s.Show(context.Background())
	s.Rescan(context.Background())

	r := s.Report()
	if r.Errors != 0 || r.Warns != 1 {
		t.Errorf("errors=%d warns=%d, want 0 and 1", r.Errors, r.Warns)
	}
	if got := r.Affected(analyzer.CodeObjectScale, false); len(got) != 0 {
		t.Errorf("stale findings: %v", got)
	}
}

func TestSession_RunRescansOnChange(t *testing.T) {
	loader := &fakeLoader{scenes: []*scene.Scene{mustBuild(t, analyzer.CodeObjectScale)}}
	scanned := make(chan int, 8)
	s := NewSession(loader.load, Options{
		Interval: time.Hour,
		Render:   func(string, *analyzer.Report) { scanned <- loader.calls },
	})

	changes := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, Triggers{Changes: changes}) }()

	waitScan(t, scanned)
	changes <- struct{}{}
	waitScan(t, scanned)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if s.Visible() || !s.Report().Empty() {
		t.Error("Run should hide the session on exit")
	}
}

func TestSession_RunTicks(t *testing.T) {
	loader := &fakeLoader{scenes: []*scene.Scene{mustBuild(t)}}
	scanned := make(chan int, 8)
	s := NewSession(loader.load, Options{
		Interval: 10 * time.Millisecond,
		Render: func(string, *analyzer.Report) {
			select {
			case scanned <- 1:
			default:
			}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, Triggers{}) }()

	for range 3 {
		waitScan(t, scanned)
	}
	cancel()
	<-done
}

func TestSession_RunVisibility(t *testing.T) {
	loader := &fakeLoader{scenes: []*scene.Scene{mustBuild(t, analyzer.CodeObjectScale)}}
	scanned := make(chan int, 8)
	s := NewSession(loader.load, Options{
		Interval: time.Hour,
		Render:   func(string, *analyzer.Report) { scanned <- 1 },
	})

	visibility := make(chan bool)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, Triggers{Visibility: visibility}) }()

	waitScan(t, scanned)
	visibility <- false
	visibility <- true
	waitScan(t, scanned)

	cancel()
	<-done
	if loader.calls != 2 {
		t.Errorf("loads = %d, want 2", loader.calls)
	}
}

func TestSession_ChangeWhileHiddenKeepsTicksStopped(t *testing.T) {
	loader := &fakeLoader{scenes: []*scene.Scene{mustBuild(t)}}
	scanned := make(chan int, 8)
	var logs bytes.Buffer
	s := NewSession(loader.load, Options{
		Interval: 10 * time.Millisecond,
		Logger:   slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Render: func(string, *analyzer.Report) {
			select {
			case scanned <- 1:
			default:
			}
		},
	})

	changes := make(chan struct{})
	visibility := make(chan bool)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, Triggers{Changes: changes, Visibility: visibility}) }()

	waitScan(t, scanned)
	visibility <- false
	changes <- struct{}{}
	time.Sleep(100 * time.Millisecond)

	cancel()
	<-done

	out := logs.String()
	hidden := strings.Index(out, `msg="session hidden"`)
	if hidden < 0 {
		t.Fatalf("session never hidden:\n%s", out)
	}
	if strings.Contains(out[hidden:], `msg="refresh tick"`) {
		t.Errorf("ticks resumed while hidden:\n%s", out[hidden:])
	}
}

func TestFileWatcher_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.json")
	if err := os.WriteFile(path, []byte(`{"name":"a"}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewFileWatcher(path)
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes:
		t.Fatal("change to another file was reported")
	case <-time.After(3 * debounce):
	}

	if err := os.WriteFile(path, []byte(`{"name":"b"}`), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes:
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}

func waitScan(t *testing.T, scanned <-chan int) {
	t.Helper()
	select {
	case <-scanned:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a scan")
	}
}
