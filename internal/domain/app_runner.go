package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"harness.dev/pkg/harness/internal/adapter"
	m "harness.dev/pkg/harness/internal/model"
	"harness.dev/pkg/harness/pkg"
)

// ErrDeviceLookup wraps failures of the tools that enumerate devices. A target that simply
// matches nothing is not an error; it is reported with VerdictDeviceNotFound.
var ErrDeviceLookup = errors.New("device lookup failed")

// RunState is the progress of one app run.
type RunState int

// Run states, in order.
const (
	StateIdle RunState = iota
	StateDeviceSelected
	StateListenerStarted
	StateCrashCaptureStarted
	StateLaunching
	StateFinished
	StateTornDown
)

var runStateNames = [...]string{"Idle", "DeviceSelected", "ListenerStarted", "CrashCaptureStarted", "Launching", "Finished", "TornDown"}

func (s RunState) String() string {
	if int(s) < len(runStateNames) {
		return runStateNames[s]
	}

	return "RunState(" + strconv.Itoa(int(s)) + ")"
}

// AppRunArgs describes one launch of an app bundle.
type AppRunArgs struct {
	App    m.AppBundleInformation
	Target m.TargetDescriptor
	// DeviceName narrows device runs to one device name or UDID.
	DeviceName string
	Find       FindOptions
	// Tunnel routes the result stream of a device run through a TCP tunnel.
	Tunnel bool
	// CollectResults starts a listener and derives the verdict from the test results.
	// Without it only the exit code and crashes decide.
	CollectResults bool
	Env            map[string]string
	Args           []string
}

// AppRunOutcome is what one run produced.
type AppRunOutcome struct {
	Result    m.RunResult
	Device    *m.Device
	Companion *m.Device
	Crashes   []CrashReport
	// TeardownErr joins every teardown step that failed. It never changes Result.
	TeardownErr error
}

// AppRunnerDeps are the collaborators of an AppRunner.
type AppRunnerDeps struct {
	Mlaunch      *adapter.Mlaunch
	Simulators   SimulatorInventory
	Hardware     HardwareInventory
	Control      adapter.SimulatorControl
	Listeners    ListenerFactory
	Symbolicator adapter.Symbolicator
	// HostCrashDir is where simulator crash reports are written.
	HostCrashDir string
	// HostAddresses lists the addresses devices can reach the host on.
	HostAddresses func() ([]string, error)
}

// AppRunner runs an app on a simulator or a device and decides the verdict.
type AppRunner interface {
	Run(ctx context.Context, args AppRunArgs) (AppRunOutcome, error)
	State() RunState
}

type appRunner struct {
	run  *RunContext
	deps AppRunnerDeps

	mu    sync.Mutex
	state RunState
}

// NewAppRunner constructs an AppRunner for a single run.
func NewAppRunner(run *RunContext, deps AppRunnerDeps) AppRunner {
	if deps.Listeners == nil {
		deps.Listeners = NewListenerFactory()
	}

	if deps.HostAddresses == nil {
		deps.HostAddresses = HostAddresses
	}

	if deps.HostCrashDir == "" {
		deps.HostCrashDir = adapter.DefaultHostCrashDir()
	}

	return &appRunner{run: run, deps: deps}
}

func (a *appRunner) State() RunState {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.state
}

func (a *appRunner) setState(state RunState) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()

	slog.Debug("Run state changed", "run", a.run.ID, "state", state)
}

// session holds everything a run started and has to stop again.
type session struct {
	run       *RunContext
	control   adapter.SimulatorControl
	listener  adapter.Listener
	tunnel    io.Closer
	captures  []adapter.LogCapture
	watcher   *launchWatcher
	resetSims []m.Device
}

func (a *appRunner) Run(ctx context.Context, args AppRunArgs) (outcome AppRunOutcome, err error) {
	runLog, err := a.run.Logs.Create("run.log", "Launch helper log", pkg.WithTimestamp())
	if err != nil {
		return outcome, fmt.Errorf("failed to create run log: %w", err)
	}

	simulator := args.Target.Platform.IsSimulator()

	var lookup DeviceLookup
	if simulator {
		lookup = a.deps.Simulators.FindSimulators(ctx, args.Target, runLog, args.Find)
	} else {
		lookup = a.deps.Hardware.FindDevice(ctx, args.Target, args.DeviceName, runLog)
	}

	switch lookup.Status {
	case LookupNotFound:
		slog.Error("No device found", "run", a.run.ID, "target", args.Target, "reason", lookup.Err)
		outcome.Result = m.RunResult{Verdict: m.VerdictDeviceNotFound, Message: lookup.Err.Error()}

		return outcome, nil
	case LookupFailed:
		slog.Error("Failed to find a device", "run", a.run.ID, "target", args.Target, "error", lookup.Err)
		return outcome, fmt.Errorf("%w: %w", ErrDeviceLookup, lookup.Err)
	}

	device := lookup.Primary
	outcome.Device = &device
	outcome.Companion = lookup.Companion

	slog.Info("Selected device", "run", a.run.ID, "device", device.String(), "companion", lookup.Companion)
	a.setState(StateDeviceSelected)

	s := &session{run: a.run, control: a.deps.Control}
	if simulator && a.run.Config.Cleanup == CleanupReset {
		s.resetSims = append(s.resetSims, device)
		if lookup.Companion != nil {
			s.resetSims = append(s.resetSims, *lookup.Companion)
		}
	}

	defer func() {
		outcome.TeardownErr = s.teardown(context.WithoutCancel(ctx))
		a.setState(StateTornDown)
	}()

	launchCtx, cancelLaunch := context.WithCancel(ctx)
	defer cancelLaunch()

	launch := launchSettings{simulator: simulator}

	if args.CollectResults {
		if err := a.startListener(ctx, s, args, device, &launch); err != nil {
			return outcome, err
		}

		if launch.tunnelFailed {
			outcome.Result = m.RunResult{Verdict: m.VerdictLaunchFailure, Message: "The device tunnel did not start"}
			return outcome, nil
		}

		a.setState(StateListenerStarted)
	}

	crashes := NewCrashSnapshotReporter(a.run, a.crashSource(device, simulator, runLog), a.deps.Symbolicator)
	reporter := NewTestReporter(a.run, s.listener, crashes, runLog, cancelLaunch)

	if s.listener != nil {
		s.watcher = startLaunchWatcher(ctx, a.run, s.listener, reporter.LaunchCallback)
	}

	if err := crashes.StartCapture(ctx); err != nil {
		slog.Warn("Continuing without crash capture", "run", a.run.ID, "error", err)
	}

	a.setState(StateCrashCaptureStarted)

	s.captures = a.startLogCapture(ctx, device, simulator)

	argv, err := a.launchArguments(args, device, launch)
	if err != nil {
		return outcome, err
	}

	a.setState(StateLaunching)
	slog.Info("Launching app", "run", a.run.ID, "app", args.App.BundleIdentifier, "device", device.Name)

	result, err := a.deps.Mlaunch.Run(launchCtx, argv, a.run.Config.Timeout, runLog, runLog)
	if err != nil {
		slog.Error("Failed to launch app", "run", a.run.ID, "error", err)
		return outcome, fmt.Errorf("failed to launch %s: %w", args.App.AppName, err)
	}

	a.awaitResults(ctx, s.listener, reporter)

	if simulator {
		reporter.CollectSimulatorResult(result)
	} else {
		reporter.CollectDeviceResult(result)
	}

	outcome.Result, outcome.Crashes = reporter.ParseResult(ctx)
	a.setState(StateFinished)

	slog.Info("Run finished", "run", a.run.ID, "result", outcome.Result.String())

	return outcome, nil
}

// launchSettings is what the listener setup contributes to the launch command line.
type launchSettings struct {
	simulator    bool
	port         int
	transport    m.TransportKind
	resultFile   string
	tunnel       bool
	tunnelFailed bool
}

func runModeOf(target m.TargetDescriptor) m.RunMode {
	switch target.Platform.Family() {
	case m.FamilyTvOS:
		return m.RunModeTvOS
	case m.FamilyWatchOS:
		return m.RunModeWatchOS
	default:
		return m.RunModeIOS
	}
}

// startListener initializes the listener before anything reads its port, opens the device
// tunnel when asked to and starts listening.
func (a *appRunner) startListener(ctx context.Context, s *session, args AppRunArgs, device m.Device, launch *launchSettings) error {
	testLog, err := a.run.Logs.Create("test.log", "Test log")
	if err != nil {
		return fmt.Errorf("failed to create test log: %w", err)
	}

	req := ListenerRequest{
		Mode:      runModeOf(args.Target),
		Simulator: launch.simulator,
		Tunnel:    args.Tunnel && !launch.simulator,
	}

	listener, err := a.deps.Listeners.Create(a.run, testLog, req)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	s.listener = listener

	port, err := listener.Initialize()
	if err != nil {
		slog.Error("Failed to initialize listener", "run", a.run.ID, "error", err)
		return fmt.Errorf("failed to initialize listener: %w", err)
	}

	launch.port = port
	launch.transport = listener.Kind()
	launch.tunnel = req.Tunnel

	if file, ok := listener.(interface{ Path() string }); ok {
		launch.resultFile = file.Path()
	}

	if req.Tunnel {
		tunnelLog, err := a.run.Logs.Create("tunnel.log", "Device tunnel log")
		if err != nil {
			return fmt.Errorf("failed to create tunnel log: %w", err)
		}

		tunnel := adapter.NewTunnelBore(a.deps.Mlaunch)
		s.tunnel = tunnel

		if err := tunnel.Open(ctx, device.Name, port, tunnelLog); err != nil {
			return fmt.Errorf("failed to open tunnel: %w", err)
		}

		timer := a.run.Clock.NewTimer(a.run.Config.LaunchTimeout)
		defer timer.Stop()

		select {
		case <-tunnel.Ready():
			slog.Info("Device tunnel started", "run", a.run.ID, "port", port)
		case <-timer.C():
			slog.Error("Device tunnel did not start", "run", a.run.ID, "timeout", a.run.Config.LaunchTimeout)
			launch.tunnelFailed = true

			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	listener.Start(ctx)

	return nil
}

func (a *appRunner) crashSource(device m.Device, simulator bool, runLog io.Writer) adapter.CrashSource {
	if simulator {
		return &adapter.HostCrashSource{Dir: a.deps.HostCrashDir}
	}

	return &adapter.DeviceCrashSource{Mlaunch: a.deps.Mlaunch, DeviceName: device.UDID, Log: runLog}
}

func (a *appRunner) startLogCapture(ctx context.Context, device m.Device, simulator bool) []adapter.LogCapture {
	if simulator {
		if device.LogPath == "" {
			return nil
		}

		log, err := a.run.Logs.Create("system-"+device.UDID+".log", "System log: "+device.Name)
		if err != nil {
			slog.Warn("Not capturing simulator log", "run", a.run.ID, "error", err)
			return nil
		}

		return []adapter.LogCapture{adapter.StartFileLogCapture(filepath.Join(device.LogPath, "system.log"), log)}
	}

	log, err := a.run.Logs.Create("device-"+device.UDID+".log", "Device log: "+device.Name)
	if err != nil {
		slog.Warn("Not capturing device log", "run", a.run.ID, "error", err)
		return nil
	}

	return []adapter.LogCapture{adapter.StartDeviceLogCapture(ctx, a.deps.Mlaunch, device.UDID, log)}
}

func (a *appRunner) launchArguments(args AppRunArgs, device m.Device, launch launchSettings) ([]string, error) {
	var argv []string

	if launch.simulator {
		output := filepath.Join(a.run.Logs.Directory(), "app-"+args.App.AppName+".log")
		a.run.Logs.AddFile(output, "App output: "+args.App.AppName)

		argv = append(argv,
			"--launchsim", args.App.LaunchAppPath,
			"--device", ":v2:udid="+device.UDID,
			"--stdout="+output,
			"--stderr="+output,
		)
	} else {
		argv = append(argv,
			"--launchdev", args.App.AppPath,
			"--devname", device.UDID,
			"--disable-memory-limits",
			"--wait-for-exit",
		)
	}

	for _, arg := range args.Args {
		argv = append(argv, "--argument="+arg)
	}

	env := maps.Clone(args.Env)
	if env == nil {
		env = map[string]string{}
	}

	if args.CollectResults {
		host := "127.0.0.1"
		if !launch.simulator && !launch.tunnel {
			addresses, err := a.deps.HostAddresses()
			if err != nil {
				return nil, fmt.Errorf("failed to list host addresses: %w", err)
			}

			host = strings.Join(addresses, ",")
		}

		env["NUNIT_AUTOEXIT"] = "true"
		env["NUNIT_HOSTNAME"] = host
		env["NUNIT_HOSTPORT"] = strconv.Itoa(launch.port)
		env["NUNIT_TRANSPORT"] = strings.ToUpper(string(launch.transport))

		if launch.resultFile != "" {
			env["NUNIT_LOG_FILE"] = launch.resultFile
		}

		if a.run.Config.XMLOutput {
			env["NUNIT_ENABLE_XML_OUTPUT"] = "true"
			env["NUNIT_XML_VERSION"] = a.run.Config.XMLFormat
		}

		if launch.tunnel {
			env["USE_TCP_TUNNEL"] = "true"
		}
	}

	for _, key := range slices.Sorted(maps.Keys(env)) {
		argv = append(argv, "--setenv="+key+"="+env[key])
	}

	return argv, nil
}

// awaitResults gives the payload a moment to finish sending results after the launch helper
// returned.
func (a *appRunner) awaitResults(ctx context.Context, listener adapter.Listener, reporter *TestReporter) {
	if listener == nil || reporter.LaunchFailed() {
		return
	}

	timer := a.run.Clock.NewTimer(a.run.Config.ResultDrainTimeout)
	defer timer.Stop()

	select {
	case <-listener.Completed():
	case <-timer.C():
		slog.Warn("Result stream did not complete", "run", a.run.ID)
	case <-ctx.Done():
	}
}

// teardown runs every step even when an earlier one fails.
func (s *session) teardown(ctx context.Context) error {
	var errs []error

	step := func(name string, fn func() error) {
		if err := fn(); err != nil {
			slog.Error("Teardown step failed", "run", s.run.ID, "step", name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	for _, capture := range s.captures {
		step("stop log capture", capture.Stop)
	}

	if s.listener != nil {
		step("cancel listener", func() error {
			s.listener.Cancel()
			return nil
		})
		step("close listener", s.listener.Close)
	}

	if s.tunnel != nil {
		step("close tunnel", s.tunnel.Close)
	}

	if s.watcher != nil {
		step("launch watcher", func() error { return s.watcher.Wait(ctx) })
	}

	switch s.run.Config.Cleanup {
	case CleanupReset:
		for _, sim := range s.resetSims {
			step("reset "+sim.Name, func() error {
				if err := s.control.Erase(ctx, sim.UDID); err != nil {
					return err
				}

				return s.control.Boot(ctx, sim.UDID)
			})
		}
	case CleanupKillAll:
		step("kill simulators", func() error { return s.control.KillEverything(ctx) })
	}

	return errors.Join(errs...)
}

// launchWatcher waits for the payload to connect in the background and hands the outcome to
// the reporter. It is joined during teardown.
type launchWatcher struct {
	done chan struct{}
	err  error
}

func startLaunchWatcher(ctx context.Context, run *RunContext, listener adapter.Listener, callback func(error)) *launchWatcher {
	w := &launchWatcher{done: make(chan struct{})}

	waitCtx, cancel := context.WithCancelCause(ctx)
	timer := run.Clock.NewTimer(run.Config.LaunchTimeout)

	go func() {
		select {
		case <-timer.C():
			cancel(ErrLaunchTimeout)
		case <-waitCtx.Done():
		}
	}()

	go func() {
		defer close(w.done)
		defer cancel(nil)
		defer timer.Stop()

		defer func() {
			if r := recover(); r != nil {
				w.err = fmt.Errorf("launch callback panicked: %v", r)
			}
		}()

		err := listener.WaitConnected(waitCtx)
		if err != nil && errors.Is(context.Cause(waitCtx), ErrLaunchTimeout) {
			err = ErrLaunchTimeout
		}

		callback(err)
	}()

	return w
}

// Wait joins the watcher and returns what it failed with.
func (w *launchWatcher) Wait(ctx context.Context) error {
	select {
	case <-w.done:
		return w.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HostAddresses lists the non-loopback IPv4 addresses of the host.
func HostAddresses() ([]string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}

	var hosts []string

	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() || ipnet.IP.To4() == nil {
			continue
		}

		hosts = append(hosts, ipnet.IP.String())
	}

	if len(hosts) == 0 {
		return []string{"127.0.0.1"}, nil
	}

	return hosts, nil
}
