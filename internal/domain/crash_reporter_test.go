package domain

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"harness.dev/pkg/harness/internal/adapter"
	"harness.dev/pkg/harness/internal/adapter/mocks"
	m "harness.dev/pkg/harness/internal/model"
)

func newTestRun(t *testing.T) (*RunContext, *fakeclock.FakeClock) {
	t.Helper()

	logs, err := adapter.NewLogs(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = logs.Close() })

	clk := fakeclock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	cfg := DefaultRunConfig()
	cfg.CrashPollInterval = time.Second
	cfg.CrashGrace = 5 * time.Second
	cfg.LogPumpInterval = 10 * time.Millisecond

	return NewRunContext(logs, clk, cfg), clk
}

func TestCrashSnapshotReporter_DeviceCrashesWithoutSymbolicator(t *testing.T) {
	run, _ := newTestRun(t)

	source := mocks.NewMockCrashSource(t)
	source.EXPECT().List(mock.Anything).Return(m.NewCrashSnapshot("old.crash"), nil).Once()
	source.EXPECT().List(mock.Anything).Return(m.NewCrashSnapshot("old.crash", "a.crash", "b.crash"), nil).Once()
	source.EXPECT().Remote().Return(true)
	source.EXPECT().Fetch(mock.Anything, mock.Anything, run.Logs.Directory()).
		RunAndReturn(func(_ context.Context, id, dir string) (string, error) {
			path := filepath.Join(dir, id)
			return path, os.WriteFile(path, []byte("raw "+id), 0o640)
		}).Twice()

	symbolicator := &adapter.XcodeSymbolicator{XcodeRoot: t.TempDir()}
	reporter := NewCrashSnapshotReporter(run, source, symbolicator)

	require.NoError(t, reporter.StartCapture(context.Background()))

	reports, err := reporter.EndCapture(context.Background(), time.Minute)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	sort.Slice(reports, func(i, j int) bool { return reports[i].ID < reports[j].ID })

	for i, id := range []string{"a.crash", "b.crash"} {
		assert.Equal(t, id, reports[i].ID)
		assert.False(t, reports[i].Symbolicated)

		data, err := os.ReadFile(reports[i].Path)
		require.NoError(t, err)
		assert.Equal(t, "raw "+id, string(data))
	}

	assert.Len(t, run.Logs.Files(), 2)

	again, err := reporter.EndCapture(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, reports, again)
}

func TestCrashSnapshotReporter_SymbolicatesDeviceReports(t *testing.T) {
	run, _ := newTestRun(t)

	source := mocks.NewMockCrashSource(t)
	source.EXPECT().List(mock.Anything).Return(m.NewCrashSnapshot(), nil).Once()
	source.EXPECT().List(mock.Anything).Return(m.NewCrashSnapshot("a.crash"), nil).Once()
	source.EXPECT().Remote().Return(true)
	source.EXPECT().Fetch(mock.Anything, "a.crash", mock.Anything).Return("/out/a.crash", nil)

	symbolicator := mocks.NewMockSymbolicator(t)
	symbolicator.EXPECT().Symbolicate(mock.Anything, "/out/a.crash").Return("/out/a.symbolicated.log", nil)

	reporter := NewCrashSnapshotReporter(run, source, symbolicator)
	require.NoError(t, reporter.StartCapture(context.Background()))

	reports, err := reporter.EndCapture(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []CrashReport{{ID: "a.crash", Path: "/out/a.symbolicated.log", Symbolicated: true}}, reports)
	assert.Equal(t, "Symbolicated crash report: a.crash", run.Logs.Files()[0].Description)
}

func TestCrashSnapshotReporter_PollsUntilReportsAppear(t *testing.T) {
	run, clk := newTestRun(t)

	source := mocks.NewMockCrashSource(t)
	source.EXPECT().List(mock.Anything).Return(m.NewCrashSnapshot("old.crash"), nil).Times(3)
	source.EXPECT().List(mock.Anything).Return(m.NewCrashSnapshot("old.crash", "new.crash"), nil)
	source.EXPECT().Remote().Return(false)
	source.EXPECT().Fetch(mock.Anything, "new.crash", mock.Anything).Return("new.crash", nil)

	reporter := NewCrashSnapshotReporter(run, source, nil)
	require.NoError(t, reporter.StartCapture(context.Background()))

	done := make(chan []CrashReport, 1)
	go func() {
		reports, err := reporter.EndCapture(context.Background(), time.Minute)
		assert.NoError(t, err)
		done <- reports
	}()

	var reports []CrashReport

	require.Eventually(t, func() bool {
		select {
		case reports = <-done:
			return true
		default:
			clk.Increment(time.Second)
			return false
		}
	}, 5*time.Second, 5*time.Millisecond)

	require.Len(t, reports, 1)
	assert.Equal(t, "new.crash", reports[0].Path)
	assert.Equal(t, []adapter.LogEntry{{Path: "new.crash", Description: "Crash report: new.crash"}}, run.Logs.Files())
}

func TestCrashSnapshotReporter_NeverReportsExistingCrashes(t *testing.T) {
	run, clk := newTestRun(t)

	source := mocks.NewMockCrashSource(t)
	source.EXPECT().List(mock.Anything).Return(m.NewCrashSnapshot("old.crash"), nil)

	reporter := NewCrashSnapshotReporter(run, source, nil)
	require.NoError(t, reporter.StartCapture(context.Background()))

	done := make(chan []CrashReport, 1)
	go func() {
		reports, err := reporter.EndCapture(context.Background(), 3*time.Second)
		assert.NoError(t, err)
		done <- reports
	}()

	var reports []CrashReport

	require.Eventually(t, func() bool {
		select {
		case reports = <-done:
			return true
		default:
			clk.Increment(time.Second)
			return false
		}
	}, 5*time.Second, 5*time.Millisecond)

	assert.Empty(t, reports)
	assert.Empty(t, run.Logs.Files())
}

func TestCrashSnapshotReporter_EndWithoutStart(t *testing.T) {
	run, _ := newTestRun(t)

	reporter := NewCrashSnapshotReporter(run, mocks.NewMockCrashSource(t), nil)
	reports, err := reporter.EndCapture(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Nil(t, reports)
}
