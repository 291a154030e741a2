package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"harness.dev/pkg/harness/internal/adapter"
	m "harness.dev/pkg/harness/internal/model"
	"harness.dev/pkg/harness/pkg"
)

// ErrLaunchTimeout means the payload did not connect to the listener within the launch
// timeout.
var ErrLaunchTimeout = errors.New("test launch timed out")

var launchedPID = regexp.MustCompile(`(?:PID = |with pid )(\d+)`)

// TestReporter decides the verdict of a run from the launch callback, the execution result
// of the launch helper and whatever the payload reported through the listener.
type TestReporter struct {
	run      *RunContext
	listener adapter.Listener
	crashes  CrashSnapshotReporter
	runLog   pkg.FileLog
	cancel   context.CancelFunc
	killTree func(pid int) error

	mu           sync.Mutex
	launchFailed bool
	collected    bool
	exitCode     int
	verdict      m.TestVerdict
	message      string

	parseOnce sync.Once
	result    m.RunResult
	reports   []CrashReport
}

// NewTestReporter constructs a TestReporter. listener is nil for runs that do not collect
// test results; crashes may be nil when crash capture is unavailable. cancel aborts the
// launch once the run is known to have failed to start.
func NewTestReporter(run *RunContext, listener adapter.Listener, crashes CrashSnapshotReporter, runLog pkg.FileLog, cancel context.CancelFunc) *TestReporter {
	if cancel == nil {
		cancel = func() {}
	}

	return &TestReporter{
		run:      run,
		listener: listener,
		crashes:  crashes,
		runLog:   runLog,
		cancel:   cancel,
		killTree: adapter.KillProcessTree,
	}
}

func (r *TestReporter) logLine(format string, args ...any) {
	if r.runLog == nil {
		return
	}

	if err := r.runLog.WriteLine(format, args...); err != nil {
		slog.Debug("Failed to write run log", "error", err)
	}
}

// LaunchCallback receives the outcome of waiting for the payload to connect. A failed or
// cancelled launch is sticky: the run is reported as a launch failure whatever the helper
// exits with later.
func (r *TestReporter) LaunchCallback(err error) {
	if err == nil {
		slog.Info("Test launch succeeded", "run", r.run.ID)
		return
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, adapter.ErrListenerCancelled) {
		slog.Warn("Test launch was cancelled.", "run", r.run.ID)
		r.logLine("Test launch was cancelled.")
	} else {
		slog.Error("Test launch failed: "+err.Error(), "run", r.run.ID)
		r.logLine("Test launch failed: %v", err)
	}

	r.mu.Lock()
	r.launchFailed = true
	r.mu.Unlock()

	r.cancel()
}

// LaunchFailed reports whether a failed launch was observed.
func (r *TestReporter) LaunchFailed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.launchFailed
}

// CollectSimulatorResult applies the verdict rules to the result of a simulator launch.
func (r *TestReporter) CollectSimulatorResult(result m.ExecutionResult) {
	r.collect(result, false)
}

// CollectDeviceResult applies the verdict rules to the result of a device launch. The
// helper's own launch errors count as launch failures even if the listener connected.
func (r *TestReporter) CollectDeviceResult(result m.ExecutionResult) {
	r.collect(result, true)
}

func (r *TestReporter) connected() bool {
	return r.listener != nil && r.listener.IsConnected()
}

func (r *TestReporter) collect(result m.ExecutionResult, device bool) {
	verdict, message := r.classify(result, device)

	r.mu.Lock()
	r.collected = true
	r.exitCode = result.Code(-1)
	r.verdict = verdict
	r.message = message
	r.mu.Unlock()

	slog.Info("Execution finished", "run", r.run.ID, "verdict", verdict, "message", message)
}

func (r *TestReporter) classify(result m.ExecutionResult, device bool) (m.TestVerdict, string) {
	if result.TimedOut {
		r.killHungProcess()
		return m.VerdictTimedOut, fmt.Sprintf("Execution timed out after %s", r.run.Config.Timeout)
	}

	if r.LaunchFailed() {
		return m.VerdictLaunchFailure, "The app did not connect to the test listener"
	}

	if result.ExitCode == nil {
		return m.VerdictFailed, "Execution was cancelled"
	}

	if device && r.helperReportedLaunchError() {
		return m.VerdictLaunchFailure, "The launch helper failed to launch the app"
	}

	if code := *result.ExitCode; code != 0 {
		if r.listener != nil && !r.connected() {
			return m.VerdictLaunchFailure, fmt.Sprintf("The app exited with code %d before connecting", code)
		}

		return m.VerdictFailed, fmt.Sprintf("The app exited with code %d", code)
	}

	return m.VerdictSucceeded, "The app exited with code 0"
}

func (r *TestReporter) helperReportedLaunchError() bool {
	if r.runLog == nil {
		return false
	}

	found := false
	_ = r.runLog.Range(func(_ uint64, line string) error {
		if strings.Contains(line, "error MT1007") || strings.Contains(line, "Failed to launch the app") {
			found = true
		}

		return nil
	})

	return found
}

// killHungProcess kills the launched process tree when the helper printed its pid.
func (r *TestReporter) killHungProcess() {
	pid, ok := r.launchedPID()
	if !ok {
		slog.Warn("Could not find the pid of the timed out app", "run", r.run.ID)
		return
	}

	slog.Info("Killing timed out app", "run", r.run.ID, "pid", pid)

	if err := r.killTree(pid); err != nil {
		slog.Error("Failed to kill timed out app", "run", r.run.ID, "pid", pid, "error", err)
	}
}

func (r *TestReporter) launchedPID() (int, bool) {
	if r.runLog == nil {
		return 0, false
	}

	pid := 0
	_ = r.runLog.Range(func(_ uint64, line string) error {
		if match := launchedPID.FindStringSubmatch(line); match != nil {
			pid, _ = strconv.Atoi(match[1])
		}

		return nil
	})

	return pid, pid > 0
}

// ParseResult finalizes crash capture and produces the verdict. It runs once; later calls
// return the first result.
func (r *TestReporter) ParseResult(ctx context.Context) (m.RunResult, []CrashReport) {
	r.parseOnce.Do(func() {
		r.result, r.reports = r.parseResult(ctx)
	})

	return r.result, r.reports
}

func (r *TestReporter) parseResult(ctx context.Context) (m.RunResult, []CrashReport) {
	var reports []CrashReport

	if r.crashes != nil {
		found, err := r.crashes.EndCapture(ctx, r.run.Config.CrashGrace)
		if err != nil {
			slog.Error("Failed to finish crash capture", "run", r.run.ID, "error", err)
		}

		reports = found
	}

	r.mu.Lock()
	collected, verdict, message, exitCode := r.collected, r.verdict, r.message, r.exitCode
	launchFailed := r.launchFailed
	r.mu.Unlock()

	if !collected {
		return m.RunResult{Verdict: m.VerdictHarnessException, Message: "The app was never launched"}, reports
	}

	if launchFailed && verdict != m.VerdictTimedOut {
		verdict = m.VerdictLaunchFailure
	}

	switch verdict {
	case m.VerdictSucceeded, m.VerdictFailed:
		verdict, message = r.reconcile(verdict, message, exitCode, len(reports))
	default:
		if len(reports) > 0 {
			message = fmt.Sprintf("%s; %d crash report(s) found", message, len(reports))
		}
	}

	result := m.RunResult{Verdict: verdict, Message: message}
	r.logLine("Result: %s", result)

	return result, reports
}

// reconcile re-derives the verdict of a finished run from what the payload reported.
func (r *TestReporter) reconcile(verdict m.TestVerdict, message string, exitCode, crashes int) (m.TestVerdict, string) {
	if r.listener == nil {
		if verdict == m.VerdictFailed && crashes > 0 {
			return m.VerdictCrashed, fmt.Sprintf("%s; %d crash report(s) found", message, crashes)
		}

		return verdict, message
	}

	summary, found := r.summary()

	switch {
	case found && verdict == m.VerdictFailed:
		return m.VerdictFailed, fmt.Sprintf("%s: %s", message, summary.Text)
	case found && summary.Failed > 0:
		return m.VerdictFailed, "Tests failed: " + summary.Text
	case found:
		return m.VerdictSucceeded, summary.Text
	case crashes > 0:
		return m.VerdictCrashed, fmt.Sprintf("The app crashed; %d crash report(s) found", crashes)
	case verdict == m.VerdictSucceeded:
		return m.VerdictCrashed, "The app exited without reporting test results"
	default:
		return m.VerdictFailed, fmt.Sprintf("The app exited with code %d without reporting test results", exitCode)
	}
}

func (r *TestReporter) summary() (TestSummary, bool) {
	reader, err := r.listener.TestLog().NewReader()
	if err != nil {
		slog.Error("Failed to read test log", "run", r.run.ID, "error", err)
		return TestSummary{}, false
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		slog.Error("Failed to read test log", "run", r.run.ID, "error", err)
		return TestSummary{}, false
	}

	return ParseTestSummary(content)
}
