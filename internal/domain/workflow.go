package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"code.cloudfoundry.org/clock"

	"harness.dev/pkg/harness/internal/adapter"
	"harness.dev/pkg/harness/internal/controller"
	m "harness.dev/pkg/harness/internal/model"
)

// RunArgs are shared by every command that produces artifacts.
type RunArgs struct {
	OutputDir string
	Config    RunConfig
}

// AndroidDeviceArgs contains the arguments for selecting an Android device.
type AndroidDeviceArgs struct {
	Query AndroidDeviceQuery
}

// AndroidInstallArgs contains the arguments for installing a package.
type AndroidInstallArgs struct {
	RunArgs
	Query AndroidDeviceQuery
	APK   string
}

// AndroidUninstallArgs contains the arguments for removing a package.
type AndroidUninstallArgs struct {
	RunArgs
	Query       AndroidDeviceQuery
	PackageName string
}

// AndroidRunArgs contains the arguments for running an instrumentation of an installed package.
type AndroidRunArgs struct {
	RunArgs
	Query           AndroidDeviceQuery
	Instrumentation InstrumentationArgs
}

// AndroidTestArgs contains the arguments for install, run and uninstall in one go.
type AndroidTestArgs struct {
	RunArgs
	Query           AndroidDeviceQuery
	APK             string
	Instrumentation InstrumentationArgs
}

// AppleArgs contains the arguments for running an app bundle on a simulator or device.
type AppleArgs struct {
	RunArgs
	AppPath    string
	Target     m.TargetDescriptor
	DeviceName string
	Find       FindOptions
	Tunnel     bool
	Env        map[string]string
	Args       []string
}

// SimulatorsFindArgs contains the arguments for resolving a simulator target.
type SimulatorsFindArgs struct {
	RunArgs
	Target m.TargetDescriptor
	Find   FindOptions
}

// SimulatorsInstallArgs contains the arguments for installing a simulator runtime.
type SimulatorsInstallArgs struct {
	ImagePath string
}

// WasmArgs contains the arguments for a browser run of a WASM app.
type WasmArgs struct {
	RunArgs
	Wasm WasmRunArgs
}

// Workflow is what the commands call. Every operation returns the exit code the process
// should end with; the error, when set, explains it.
type Workflow interface {
	AndroidDevice(ctx context.Context, args AndroidDeviceArgs) (m.ExitCode, error)
	AndroidInstall(ctx context.Context, args AndroidInstallArgs) (m.ExitCode, error)
	AndroidUninstall(ctx context.Context, args AndroidUninstallArgs) (m.ExitCode, error)
	AndroidRun(ctx context.Context, args AndroidRunArgs) (m.ExitCode, error)
	AndroidTest(ctx context.Context, args AndroidTestArgs) (m.ExitCode, error)
	AppleTest(ctx context.Context, args AppleArgs) (m.ExitCode, error)
	AppleRun(ctx context.Context, args AppleArgs) (m.ExitCode, error)
	SimulatorsList(ctx context.Context, args RunArgs) (m.ExitCode, error)
	SimulatorsFind(ctx context.Context, args SimulatorsFindArgs) (m.ExitCode, error)
	SimulatorsInstall(ctx context.Context, args SimulatorsInstallArgs) (m.ExitCode, error)
	WasmTestBrowser(ctx context.Context, args WasmArgs) (m.ExitCode, error)
}

// WorkflowDeps are the collaborators of a Workflow. Zero factories fall back to the local
// implementations built from Mlaunch and Control.
type WorkflowDeps struct {
	Adb          adapter.AdbClient
	Mlaunch      *adapter.Mlaunch
	Control      adapter.SimulatorControl
	Symbolicator adapter.Symbolicator
	UI           controller.UI
	Clock        clock.Clock

	NewBrowser    func(log io.Writer) adapter.Browser
	NewSimulators func(scratchDir string) SimulatorInventory
	NewHardware   func(scratchDir string) HardwareInventory
	NewAppRunner  func(run *RunContext, deps AppRunnerDeps) AppRunner
}

type workflow struct {
	controller.UI

	deps WorkflowDeps
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(deps WorkflowDeps) Workflow {
	if deps.NewSimulators == nil {
		deps.NewSimulators = func(scratchDir string) SimulatorInventory {
			return NewSimulatorInventory(deps.Mlaunch, deps.Control, scratchDir)
		}
	}

	if deps.NewHardware == nil {
		deps.NewHardware = func(scratchDir string) HardwareInventory {
			return NewHardwareInventory(deps.Mlaunch, scratchDir)
		}
	}

	if deps.NewAppRunner == nil {
		deps.NewAppRunner = NewAppRunner
	}

	return &workflow{UI: deps.UI, deps: deps}
}

func (w *workflow) begin(args RunArgs) (*RunContext, error) {
	logs, err := adapter.NewLogs(args.OutputDir)
	if err != nil {
		return nil, err
	}

	run := NewRunContext(logs, w.deps.Clock, args.Config)
	slog.Info("Run started", "run", run.ID, "output", args.OutputDir)

	return run, nil
}

// finish writes the artifact manifest, closes the run's logs and reports the outcome.
func (w *workflow) finish(ctx context.Context, run *RunContext, command string, code m.ExitCode, result *m.RunResult) {
	outcome := controller.Outcome{Command: command, Code: code, Result: result}

	if run != nil && run.Logs != nil {
		manifest, err := run.Logs.WriteManifest()
		if err != nil {
			slog.Warn("Failed to write artifact manifest", "run", run.ID, "error", err)
		} else {
			outcome.Manifest = manifest
		}

		if err := run.Logs.Close(); err != nil {
			slog.Warn("Failed to close run logs", "run", run.ID, "error", err)
		}
	}

	slog.Info("Command finished", "command", command, "exit_code", code.String())

	if err := w.DisplayOutcome(context.WithoutCancel(ctx), outcome); err != nil {
		slog.Warn("Failed to display outcome", "error", err)
	}
}

func (w *workflow) AndroidDevice(ctx context.Context, args AndroidDeviceArgs) (m.ExitCode, error) {
	run := NewRunContext(nil, w.deps.Clock, DefaultRunConfig())

	device, code, err := NewAndroidRunner(run, w.deps.Adb).SelectDevice(ctx, args.Query)
	if err != nil {
		return code, fmt.Errorf("select android device: %w", err)
	}

	if err := w.DisplayDevices(ctx, []m.Device{device}); err != nil {
		return m.ExitGeneralFailure, fmt.Errorf("display: %w", err)
	}

	return m.ExitSuccess, nil
}

func (w *workflow) AndroidInstall(ctx context.Context, args AndroidInstallArgs) (m.ExitCode, error) {
	run, err := w.begin(args.RunArgs)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	runner := NewAndroidRunner(run, w.deps.Adb)

	code, err := w.androidInstall(ctx, runner, args.Query, args.APK)
	w.finish(ctx, run, "android install", code, nil)

	return code, err
}

func (w *workflow) androidInstall(ctx context.Context, runner *AndroidRunner, query AndroidDeviceQuery, apk string) (m.ExitCode, error) {
	device, code, err := runner.SelectDevice(ctx, query)
	if err != nil {
		return code, fmt.Errorf("select android device: %w", err)
	}

	code, err = runner.Install(ctx, device, apk)
	if err != nil {
		return code, fmt.Errorf("install %s: %w", apk, err)
	}

	return code, nil
}

func (w *workflow) AndroidUninstall(ctx context.Context, args AndroidUninstallArgs) (m.ExitCode, error) {
	run, err := w.begin(args.RunArgs)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	code, err := w.androidUninstall(ctx, NewAndroidRunner(run, w.deps.Adb), args)
	w.finish(ctx, run, "android uninstall", code, nil)

	return code, err
}

func (w *workflow) androidUninstall(ctx context.Context, runner *AndroidRunner, args AndroidUninstallArgs) (m.ExitCode, error) {
	device, code, err := runner.SelectDevice(ctx, args.Query)
	if err != nil {
		return code, fmt.Errorf("select android device: %w", err)
	}

	code, err = runner.Uninstall(ctx, device, args.PackageName)
	if err != nil {
		return code, fmt.Errorf("uninstall %s: %w", args.PackageName, err)
	}

	return code, nil
}

func (w *workflow) AndroidRun(ctx context.Context, args AndroidRunArgs) (m.ExitCode, error) {
	run, err := w.begin(args.RunArgs)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	code, err := w.androidRun(ctx, NewAndroidRunner(run, w.deps.Adb), args.Query, args.Instrumentation)
	w.finish(ctx, run, "android run", code, nil)

	return code, err
}

func (w *workflow) androidRun(ctx context.Context, runner *AndroidRunner, query AndroidDeviceQuery, instr InstrumentationArgs) (m.ExitCode, error) {
	device, code, err := runner.SelectDevice(ctx, query)
	if err != nil {
		return code, fmt.Errorf("select android device: %w", err)
	}

	code, err = runner.RunInstrumentation(ctx, device, instr)
	if err != nil {
		return code, fmt.Errorf("run instrumentation: %w", err)
	}

	return code, nil
}

// AndroidTest installs the package, runs the instrumentation and always removes the package
// again once it was installed. A failed removal does not change the exit code.
func (w *workflow) AndroidTest(ctx context.Context, args AndroidTestArgs) (m.ExitCode, error) {
	run, err := w.begin(args.RunArgs)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	code, err := w.androidTest(ctx, NewAndroidRunner(run, w.deps.Adb), args)
	w.finish(ctx, run, "android test", code, nil)

	return code, err
}

func (w *workflow) androidTest(ctx context.Context, runner *AndroidRunner, args AndroidTestArgs) (m.ExitCode, error) {
	device, code, err := runner.SelectDevice(ctx, args.Query)
	if err != nil {
		return code, fmt.Errorf("select android device: %w", err)
	}

	code, err = runner.Install(ctx, device, args.APK)
	if err != nil {
		return code, fmt.Errorf("install %s: %w", args.APK, err)
	}

	defer func() {
		if _, err := runner.Uninstall(context.WithoutCancel(ctx), device, args.Instrumentation.PackageName); err != nil {
			slog.Warn("Failed to uninstall package", "package", args.Instrumentation.PackageName, "error", err)
		}
	}()

	code, err = runner.RunInstrumentation(ctx, device, args.Instrumentation)
	if err != nil {
		return code, fmt.Errorf("run instrumentation: %w", err)
	}

	return code, nil
}

func (w *workflow) AppleTest(ctx context.Context, args AppleArgs) (m.ExitCode, error) {
	return w.apple(ctx, "apple test", args, true)
}

func (w *workflow) AppleRun(ctx context.Context, args AppleArgs) (m.ExitCode, error) {
	return w.apple(ctx, "apple run", args, false)
}

func (w *workflow) apple(ctx context.Context, command string, args AppleArgs, collect bool) (m.ExitCode, error) {
	if _, err := os.Stat(args.AppPath); err != nil {
		slog.Error("App bundle not found", "path", args.AppPath, "error", err)
		return m.ExitPackageNotFound, fmt.Errorf("app bundle %s: %w", args.AppPath, err)
	}

	app, err := adapter.ReadAppBundle(args.AppPath)
	if err != nil {
		slog.Error("Failed to read app bundle", "path", args.AppPath, "error", err)
		return m.ExitInvalidArguments, err
	}

	run, err := w.begin(args.RunArgs)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	scratch := run.Logs.Directory()
	runner := w.deps.NewAppRunner(run, AppRunnerDeps{
		Mlaunch:      w.deps.Mlaunch,
		Simulators:   w.deps.NewSimulators(scratch),
		Hardware:     w.deps.NewHardware(scratch),
		Control:      w.deps.Control,
		Symbolicator: w.deps.Symbolicator,
	})

	outcome, err := runner.Run(ctx, AppRunArgs{
		App:            app,
		Target:         args.Target,
		DeviceName:     args.DeviceName,
		Find:           args.Find,
		Tunnel:         args.Tunnel,
		CollectResults: collect,
		Env:            args.Env,
		Args:           args.Args,
	})
	if err != nil {
		code := m.ExitGeneralFailure
		if errors.Is(err, ErrDeviceLookup) {
			code = m.ExitDeviceFailure
			if args.Target.Platform.IsSimulator() {
				code = m.ExitSimulatorFailure
			}
		}

		slog.Error("App run failed", "run", run.ID, "error", err)
		w.finish(ctx, run, command, code, nil)

		return code, err
	}

	if outcome.TeardownErr != nil {
		slog.Warn("Teardown did not complete", "run", run.ID, "error", outcome.TeardownErr)
	}

	code := outcome.Result.ExitCode()
	w.finish(ctx, run, command, code, &outcome.Result)

	return code, nil
}

func (w *workflow) SimulatorsList(ctx context.Context, args RunArgs) (m.ExitCode, error) {
	run, err := w.begin(args)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	defer w.closeQuietly(run)

	log, err := run.Logs.Create("simulator-list.log", "Simulator listing")
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	inventory := w.deps.NewSimulators(run.Logs.Directory())
	if err := inventory.LoadDevices(ctx, log, true); err != nil {
		slog.Error("Failed to list simulators", "error", err)
		return m.ExitSimulatorFailure, fmt.Errorf("list simulators: %w", err)
	}

	if err := w.DisplaySimulators(ctx, categoryGroups(inventory.Simulators())); err != nil {
		return m.ExitGeneralFailure, fmt.Errorf("display: %w", err)
	}

	return m.ExitSuccess, nil
}

var categoryOrder = []DeviceCategory{CategoryIOS64, CategoryIOS32, CategoryTvOS, CategoryWatchOS, CategoryXrOS, CategoryOther}

// categoryGroups orders a Categorize partition for display, dropping empty categories.
func categoryGroups(devices []m.Device) []controller.DeviceGroup {
	byCategory := Categorize(devices)

	groups := make([]controller.DeviceGroup, 0, len(byCategory))
	for _, cat := range categoryOrder {
		if list := byCategory[cat]; len(list) > 0 {
			groups = append(groups, controller.DeviceGroup{Title: string(cat), Devices: list})
		}
	}

	return groups
}

func (w *workflow) SimulatorsFind(ctx context.Context, args SimulatorsFindArgs) (m.ExitCode, error) {
	run, err := w.begin(args.RunArgs)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	defer w.closeQuietly(run)

	log, err := run.Logs.Create("simulator-find.log", "Simulator lookup")
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	lookup := w.deps.NewSimulators(run.Logs.Directory()).FindSimulators(ctx, args.Target, log, args.Find)
	if lookup.Status != LookupFound {
		slog.Error("No simulator for target", "target", args.Target.String(), "status", lookup.Status.String(), "error", lookup.Err)
		return lookup.ExitCode(m.ExitSimulatorFailure), lookup.Err
	}

	found := []m.Device{lookup.Primary}
	if lookup.Companion != nil {
		found = append(found, *lookup.Companion)
	}

	if err := w.DisplayUDIDs(ctx, found); err != nil {
		return m.ExitGeneralFailure, fmt.Errorf("display: %w", err)
	}

	return m.ExitSuccess, nil
}

func (w *workflow) SimulatorsInstall(ctx context.Context, args SimulatorsInstallArgs) (m.ExitCode, error) {
	if _, err := os.Stat(args.ImagePath); err != nil {
		return m.ExitPackageNotFound, fmt.Errorf("runtime image %s: %w", args.ImagePath, err)
	}

	if err := w.deps.Control.AddRuntime(ctx, args.ImagePath); err != nil {
		slog.Error("Failed to install simulator runtime", "image", args.ImagePath, "error", err)
		return m.ExitSimulatorFailure, err
	}

	slog.Info("Installed simulator runtime", "image", args.ImagePath)

	return m.ExitSuccess, nil
}

func (w *workflow) WasmTestBrowser(ctx context.Context, args WasmArgs) (m.ExitCode, error) {
	run, err := w.begin(args.RunArgs)
	if err != nil {
		return m.ExitGeneralFailure, err
	}

	browserLog, err := run.Logs.Create("browser.log", "Browser output")
	if err != nil {
		w.finish(ctx, run, "wasm test-browser", m.ExitGeneralFailure, nil)
		return m.ExitGeneralFailure, err
	}

	code, err := NewWasmBrowserRunner(run, w.deps.NewBrowser(browserLog)).Run(ctx, args.Wasm)
	w.finish(ctx, run, "wasm test-browser", code, nil)

	return code, err
}

func (w *workflow) closeQuietly(run *RunContext) {
	if err := run.Logs.Close(); err != nil {
		slog.Warn("Failed to close run logs", "run", run.ID, "error", err)
	}
}
