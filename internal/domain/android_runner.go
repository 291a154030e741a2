package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"harness.dev/pkg/harness/internal/adapter"
	m "harness.dev/pkg/harness/internal/model"
)

// Instrumentation result keys.
const (
	ResultKeyReturnCode  = "return-code"
	ResultKeyShortMsg    = "shortMsg"
	ResultKeySummary     = "test-execution-summary"
	ResultKeyNUnit2      = "nunit2-results-path"
	ResultKeyTestResults = "test-results-path"
)

const (
	instrumentationResult = "INSTRUMENTATION_RESULT:"
	instrumentationCode   = "INSTRUMENTATION_CODE:"
)

// InstrumentationResult is what `am instrument -w` printed.
type InstrumentationResult struct {
	Values map[string]string
	// Code is the INSTRUMENTATION_CODE line. adb reports it even for crashed runs, so it is
	// informational only.
	Code *int
}

// ParseInstrumentation reads INSTRUMENTATION_RESULT and INSTRUMENTATION_CODE lines.
func ParseInstrumentation(lines []string) InstrumentationResult {
	result := InstrumentationResult{Values: map[string]string{}}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, instrumentationResult):
			key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, instrumentationResult)), "=")
			if ok {
				result.Values[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
		case strings.HasPrefix(line, instrumentationCode):
			if code, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, instrumentationCode))); err == nil {
				result.Code = &code
			}
		}
	}

	return result
}

// ReturnCode is the exit code the test payload reported about itself.
func (r InstrumentationResult) ReturnCode() (int, bool) {
	value, ok := r.Values[ResultKeyReturnCode]
	if !ok {
		return 0, false
	}

	code, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return code, true
}

// Crashed reports whether the instrumentation died with the app process.
func (r InstrumentationResult) Crashed() bool {
	return strings.Contains(r.Values[ResultKeyShortMsg], "Process crashed")
}

// AndroidDeviceQuery narrows the choice of an Android device.
type AndroidDeviceQuery struct {
	Serial       string
	Architecture string
	APILevel     int
}

// SelectAndroidDevice picks the first device matching every set field of query.
func SelectAndroidDevice(devices []m.Device, query AndroidDeviceQuery) DeviceLookup {
	for _, d := range devices {
		if query.Serial != "" && d.UDID != query.Serial {
			continue
		}

		if query.Architecture != "" && d.Architecture != query.Architecture {
			continue
		}

		if query.APILevel != 0 && d.APILevel != query.APILevel {
			continue
		}

		return Found(d, nil)
	}

	return NotFound("no android device matches serial=%q arch=%q api=%d among %d device(s)",
		query.Serial, query.Architecture, query.APILevel, len(devices))
}

// InstrumentationArgs describes one instrumentation run.
type InstrumentationArgs struct {
	adapter.InstrumentArgs
	ExpectedExitCode int
}

// AndroidRunner installs packages and runs instrumentations on Android devices.
type AndroidRunner struct {
	run *RunContext
	adb adapter.AdbClient
}

// NewAndroidRunner constructs an AndroidRunner.
func NewAndroidRunner(run *RunContext, adb adapter.AdbClient) *AndroidRunner {
	return &AndroidRunner{run: run, adb: adb}
}

// SelectDevice enumerates devices and picks one for query.
func (a *AndroidRunner) SelectDevice(ctx context.Context, query AndroidDeviceQuery) (m.Device, m.ExitCode, error) {
	devices, err := a.adb.Devices(ctx)
	if err != nil {
		return m.Device{}, m.ExitAdbDeviceEnumerationFailure, err
	}

	lookup := SelectAndroidDevice(devices, query)
	if lookup.Status != LookupFound {
		slog.Error("No matching android device", "run", a.run.ID, "reason", lookup.Err)
		return m.Device{}, m.ExitDeviceNotFound, lookup.Err
	}

	slog.Info("Selected android device", "run", a.run.ID, "device", lookup.Primary.String(), "arch", lookup.Primary.Architecture)

	return lookup.Primary, m.ExitSuccess, nil
}

// Install installs apkPath on the device.
func (a *AndroidRunner) Install(ctx context.Context, device m.Device, apkPath string) (m.ExitCode, error) {
	if _, err := os.Stat(apkPath); err != nil {
		slog.Error("Package not found", "run", a.run.ID, "path", apkPath)
		return m.ExitPackageNotFound, fmt.Errorf("package %s: %w", apkPath, err)
	}

	log, err := a.run.Logs.Create("adb-install.log", "adb install")
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	result, err := a.adb.Install(ctx, device.UDID, apkPath, a.run.Config.LaunchTimeout, log)
	if err != nil {
		slog.Error("Failed to install package", "run", a.run.ID, "error", err)
		return m.ExitPackageInstallationFailure, err
	}

	if !result.Succeeded() {
		slog.Error("Package installation failed", "run", a.run.ID, "exit_code", result.Code(-1), "timed_out", result.TimedOut)
		return m.ExitPackageInstallationFailure, fmt.Errorf("adb install exited with %d", result.Code(-1))
	}

	slog.Info("Installed package", "run", a.run.ID, "path", apkPath, "device", device.UDID)

	return m.ExitSuccess, nil
}

// Uninstall removes packageName from the device.
func (a *AndroidRunner) Uninstall(ctx context.Context, device m.Device, packageName string) (m.ExitCode, error) {
	log, err := a.run.Logs.Create("adb-uninstall.log", "adb uninstall")
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	result, err := a.adb.Uninstall(ctx, device.UDID, packageName, log)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	if !result.Succeeded() {
		slog.Warn("Package uninstallation failed", "run", a.run.ID, "package", packageName, "exit_code", result.Code(-1))
		return m.ExitGeneralFailure, fmt.Errorf("adb uninstall exited with %d", result.Code(-1))
	}

	return m.ExitSuccess, nil
}

// RunInstrumentation runs the instrumentation, pulls its result files and the device log
// and decides the exit code. The return-code reported by the payload wins over the
// instrumentation code adb prints.
func (a *AndroidRunner) RunInstrumentation(ctx context.Context, device m.Device, args InstrumentationArgs) (m.ExitCode, error) {
	if args.Timeout <= 0 {
		args.Timeout = a.run.Config.Timeout
	}

	if err := a.adb.ClearLogcat(ctx, device.UDID); err != nil {
		slog.Warn("Failed to clear logcat", "run", a.run.ID, "error", err)
	}

	log, err := a.run.Logs.Create("instrumentation.log", "Instrumentation output")
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	slog.Info("Running instrumentation", "run", a.run.ID, "component", args.Component(), "device", device.UDID)

	result, err := a.adb.Instrument(ctx, device.UDID, args.InstrumentArgs, log)
	if err != nil {
		slog.Error("Failed to run instrumentation", "run", a.run.ID, "error", err)
		return m.ExitGeneralFailure, err
	}

	a.dumpLogcat(ctx, device)

	if result.TimedOut {
		slog.Error("Instrumentation timed out", "run", a.run.ID, "timeout", args.Timeout)
		return m.ExitTimedOut, nil
	}

	lines, err := log.Lines()
	if err != nil {
		return m.ExitGeneralFailure, fmt.Errorf("failed to read instrumentation output: %w", err)
	}

	parsed := ParseInstrumentation(lines)

	if summary := parsed.Values[ResultKeySummary]; summary != "" {
		slog.Info("Test execution summary", "run", a.run.ID, "summary", summary)
	}

	if parsed.Crashed() {
		slog.Error("App crashed during instrumentation", "run", a.run.ID, "message", parsed.Values[ResultKeyShortMsg])
		return m.ExitAppCrash, nil
	}

	copyFailed := a.pullResults(ctx, device, parsed) != nil

	code, ok := parsed.ReturnCode()
	if !ok {
		slog.Error("Instrumentation did not report a return code", "run", a.run.ID, "instrumentation_code", parsed.Code)
		return m.ExitReturnCodeNotSet, nil
	}

	if code != args.ExpectedExitCode {
		slog.Error("Instrumentation returned unexpected code", "run", a.run.ID, "code", code, "expected", args.ExpectedExitCode)
		return m.ExitCode(code), nil
	}

	if copyFailed {
		return m.ExitDeviceFileCopyFailure, nil
	}

	return m.ExitSuccess, nil
}

func (a *AndroidRunner) dumpLogcat(ctx context.Context, device m.Device) {
	logcat, err := a.run.Logs.Create("logcat-"+device.UDID+".log", "Logcat: "+device.UDID)
	if err != nil {
		slog.Warn("Not dumping logcat", "run", a.run.ID, "error", err)
		return
	}

	if err := a.adb.DumpLogcat(ctx, device.UDID, logcat); err != nil {
		slog.Warn("Failed to dump logcat", "run", a.run.ID, "error", err)
	}
}

func (a *AndroidRunner) pullResults(ctx context.Context, device m.Device, parsed InstrumentationResult) error {
	var errs []error

	for _, key := range []string{ResultKeyNUnit2, ResultKeyTestResults} {
		remote := parsed.Values[key]
		if remote == "" {
			continue
		}

		local := filepath.Join(a.run.Logs.Directory(), path.Base(remote))
		if err := a.adb.Pull(ctx, device.UDID, remote, local); err != nil {
			slog.Error("Failed to copy result file", "run", a.run.ID, "remote", remote, "error", err)
			errs = append(errs, err)

			continue
		}

		a.run.Logs.AddFile(local, "Test results ("+key+")")

		// A stale result file would be pulled again by the next run if it reported nothing.
		if _, err := a.adb.Shell(ctx, device.UDID, "rm -f "+remote); err != nil {
			slog.Warn("Failed to remove result file from device", "run", a.run.ID, "remote", remote, "error", err)
		}

		if summary, found, err := ParseTestSummaryFile(local); err == nil && found {
			slog.Info("Test results", "run", a.run.ID, "summary", summary.Text)
		}
	}

	return errors.Join(errs...)
}
