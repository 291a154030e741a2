package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"harness.dev/pkg/harness/internal/adapter"
	m "harness.dev/pkg/harness/internal/model"
)

// CrashReport is a crash report published as a run artifact.
type CrashReport struct {
	ID           string
	Path         string
	Symbolicated bool
}

// CrashSnapshotReporter detects crash reports created while a run was in progress.
type CrashSnapshotReporter interface {
	// StartCapture records the crash reports that exist before the launch.
	StartCapture(ctx context.Context) error
	// EndCapture polls until new reports appear or timeout elapses, then publishes every new
	// report. Only the first call does any work; later calls return the same reports.
	EndCapture(ctx context.Context, timeout time.Duration) ([]CrashReport, error)
}

type crashSnapshotReporter struct {
	run          *RunContext
	source       adapter.CrashSource
	symbolicator adapter.Symbolicator

	initial m.CrashSnapshot
	started bool

	endOnce sync.Once
	reports []CrashReport
	endErr  error
}

// NewCrashSnapshotReporter constructs a CrashSnapshotReporter. symbolicator may be nil.
func NewCrashSnapshotReporter(run *RunContext, source adapter.CrashSource, symbolicator adapter.Symbolicator) CrashSnapshotReporter {
	return &crashSnapshotReporter{run: run, source: source, symbolicator: symbolicator}
}

func (c *crashSnapshotReporter) StartCapture(ctx context.Context) error {
	snapshot, err := c.source.List(ctx)
	if err != nil {
		slog.Error("Failed to take crash snapshot", "run", c.run.ID, "error", err)
		return fmt.Errorf("failed to take crash snapshot: %w", err)
	}

	c.initial = snapshot
	c.started = true

	slog.Debug("Crash capture started", "run", c.run.ID, "existing", len(snapshot))

	return nil
}

func (c *crashSnapshotReporter) EndCapture(ctx context.Context, timeout time.Duration) ([]CrashReport, error) {
	c.endOnce.Do(func() {
		c.reports, c.endErr = c.endCapture(ctx, timeout)
	})

	return c.reports, c.endErr
}

func (c *crashSnapshotReporter) endCapture(ctx context.Context, timeout time.Duration) ([]CrashReport, error) {
	if !c.started {
		slog.Debug("Crash capture was never started", "run", c.run.ID)
		return nil, nil
	}

	clk := c.run.Clock
	interval := c.run.Config.CrashPollInterval

	if interval <= 0 {
		interval = time.Second
	}

	start := clk.Now()

	var added []string

	for {
		snapshot, err := c.source.List(ctx)
		if err != nil {
			slog.Warn("Failed to take crash snapshot", "run", c.run.ID, "error", err)
		} else {
			added = snapshot.Subtract(c.initial)
		}

		if len(added) > 0 || clk.Since(start) >= timeout {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-clk.After(interval):
		}
	}

	if len(added) == 0 {
		slog.Debug("No new crash reports", "run", c.run.ID)
		return nil, nil
	}

	slog.Info("Found new crash reports", "run", c.run.ID, "count", len(added))

	return c.publish(ctx, added)
}

// publish fetches every report concurrently and returns once all of them are done.
func (c *crashSnapshotReporter) publish(ctx context.Context, ids []string) ([]CrashReport, error) {
	results := make([]*CrashReport, len(ids))

	var g errgroup.Group

	for i, id := range ids {
		g.Go(func() error {
			report, err := c.publishOne(ctx, id)
			if err != nil {
				slog.Error("Failed to collect crash report", "run", c.run.ID, "id", id, "error", err)
				return nil
			}

			results[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]CrashReport, 0, len(results))

	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}

	return reports, nil
}

func (c *crashSnapshotReporter) publishOne(ctx context.Context, id string) (*CrashReport, error) {
	path, err := c.source.Fetch(ctx, id, c.run.Logs.Directory())
	if err != nil {
		return nil, err
	}

	report := &CrashReport{ID: id, Path: path}

	if c.source.Remote() && c.symbolicator != nil {
		symbolicated, err := c.symbolicator.Symbolicate(ctx, path)
		if err != nil {
			slog.Warn("Using unsymbolicated crash report", "run", c.run.ID, "report", path, "reason", err)
		} else {
			report.Path = symbolicated
			report.Symbolicated = true
		}
	}

	description := "Crash report: " + filepath.Base(id)
	if report.Symbolicated {
		description = "Symbolicated crash report: " + filepath.Base(id)
	}

	c.run.Logs.AddFile(report.Path, description)

	return report, nil
}
