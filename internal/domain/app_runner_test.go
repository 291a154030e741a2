package domain

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
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

type stubSimulators struct {
	SimulatorInventory
	lookup DeviceLookup
}

func (s stubSimulators) FindSimulators(context.Context, m.TargetDescriptor, io.Writer, FindOptions) DeviceLookup {
	return s.lookup
}

type stubHardware struct {
	HardwareInventory
	lookup DeviceLookup
}

func (s stubHardware) FindDevice(context.Context, m.TargetDescriptor, string, io.Writer) DeviceLookup {
	return s.lookup
}

var (
	testSimulator = m.Device{Name: "iPhone X", UDID: "SIM-1", Kind: m.KindSimulator, State: m.DeviceStateBooted, OSVersion: "14.2"}
	testPhone     = m.Device{Name: "Phone", UDID: "PHONE-1", Kind: m.KindHardware, OSVersion: "15.0", USB: true}
	testApp       = m.NewAppBundleInformation("Tests", "com.example.tests", "/apps/Tests.app", "", false, m.ExtensionNone)
)

func envArg(args []string, key string) string {
	for _, arg := range args {
		if value, ok := strings.CutPrefix(arg, "--setenv="+key+"="); ok {
			return value
		}
	}

	return ""
}

func hasArg(args []string, want string) bool {
	for _, arg := range args {
		if arg == want {
			return true
		}
	}

	return false
}

func launchCall(pm *mocks.MockProcessManager, verb string) *mocks.MockProcessManager_Run_Call {
	return pm.EXPECT().Run(mock.Anything, mock.MatchedBy(func(s adapter.ProcessSpec) bool {
		return len(s.Args) > 0 && s.Args[0] == verb
	}))
}

// fakePayload connects to the listener, sends results and exits with exitCode once the
// results reached the test log.
func fakePayload(t *testing.T, run *RunContext, results string, exitCode int) func(context.Context, adapter.ProcessSpec) (m.ExecutionResult, error) {
	return func(_ context.Context, s adapter.ProcessSpec) (m.ExecutionResult, error) {
		conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", envArg(s.Args, "NUNIT_HOSTPORT")))
		require.NoError(t, err)

		_, err = io.WriteString(conn, results)
		require.NoError(t, err)
		require.NoError(t, conn.Close())

		require.Eventually(t, func() bool {
			data, err := os.ReadFile(filepath.Join(run.Logs.Directory(), "test.log"))
			return err == nil && len(data) == len(results)
		}, 5*time.Second, 5*time.Millisecond)

		return m.ExecutionResult{ExitCode: m.IntPtr(exitCode)}, nil
	}
}

func newAppRunTest(t *testing.T) (*RunContext, *fakeclock.FakeClock, *mocks.MockProcessManager) {
	t.Helper()

	run, clk := newTestRun(t)
	run.Config.CrashGrace = 0

	return run, clk, mocks.NewMockProcessManager(t)
}

func simulatorDeps(run *RunContext, pm *mocks.MockProcessManager, control adapter.SimulatorControl) AppRunnerDeps {
	return AppRunnerDeps{
		Mlaunch:      adapter.NewMlaunch("mlaunch", "", pm),
		Simulators:   stubSimulators{lookup: Found(testSimulator, nil)},
		Control:      control,
		HostCrashDir: filepath.Join(run.Logs.Directory(), "no-crashes"),
	}
}

func TestAppRunner_SimulatorTestRun(t *testing.T) {
	run, _, pm := newAppRunTest(t)

	var args []string

	launchCall(pm, "--launchsim").RunAndReturn(func(ctx context.Context, s adapter.ProcessSpec) (m.ExecutionResult, error) {
		args = s.Args
		return fakePayload(t, run, "[PASS] A\nTests run: 1 Passed: 1 Inconclusive: 0 Failed: 0 Ignored: 0\n", 0)(ctx, s)
	}).Once()

	runner := NewAppRunner(run, simulatorDeps(run, pm, nil))

	outcome, err := runner.Run(context.Background(), AppRunArgs{
		App:            testApp,
		Target:         m.TargetDescriptor{Platform: m.PlatformIOSSimulator64},
		CollectResults: true,
		Env:            map[string]string{"FOO": "bar"},
		Args:           []string{"--run-all"},
	})
	require.NoError(t, err)
	require.NoError(t, outcome.TeardownErr)

	assert.Equal(t, m.VerdictSucceeded, outcome.Result.Verdict, outcome.Result.Message)
	assert.Equal(t, "SIM-1", outcome.Device.UDID)
	assert.Nil(t, outcome.Companion)
	assert.Equal(t, StateTornDown, runner.State())

	assert.Equal(t, "/apps/Tests.app", args[1])
	assert.True(t, hasArg(args, ":v2:udid=SIM-1"))
	assert.True(t, hasArg(args, "--argument=--run-all"))
	assert.Equal(t, "bar", envArg(args, "FOO"))
	assert.Equal(t, "127.0.0.1", envArg(args, "NUNIT_HOSTNAME"))
	assert.Equal(t, "TCP", envArg(args, "NUNIT_TRANSPORT"))
	assert.Equal(t, "true", envArg(args, "NUNIT_AUTOEXIT"))
	assert.Empty(t, envArg(args, "USE_TCP_TUNNEL"))
}

func TestAppRunner_FailedTests(t *testing.T) {
	run, _, pm := newAppRunTest(t)
	run.Config.XMLOutput = true

	results := `<assemblies><assembly total="2" passed="1" failed="1"/></assemblies>`
	launchCall(pm, "--launchsim").RunAndReturn(func(ctx context.Context, s adapter.ProcessSpec) (m.ExecutionResult, error) {
		assert.Equal(t, "true", envArg(s.Args, "NUNIT_ENABLE_XML_OUTPUT"))
		assert.Equal(t, "xUnit", envArg(s.Args, "NUNIT_XML_VERSION"))

		return fakePayload(t, run, results, 0)(ctx, s)
	}).Once()

	outcome, err := NewAppRunner(run, simulatorDeps(run, pm, nil)).Run(context.Background(), AppRunArgs{
		App:            testApp,
		Target:         m.TargetDescriptor{Platform: m.PlatformIOSSimulator64},
		CollectResults: true,
	})
	require.NoError(t, err)

	assert.Equal(t, m.VerdictFailed, outcome.Result.Verdict)
	assert.Equal(t, m.ExitTestsFailed, outcome.Result.ExitCode())
}

func TestAppRunner_LaunchTimeoutAbortsLaunch(t *testing.T) {
	run, clk, pm := newAppRunTest(t)

	launchCall(pm, "--launchsim").RunAndReturn(func(ctx context.Context, _ adapter.ProcessSpec) (m.ExecutionResult, error) {
		clk.Increment(run.Config.LaunchTimeout)
		<-ctx.Done()

		return m.ExecutionResult{}, nil
	}).Once()

	outcome, err := NewAppRunner(run, simulatorDeps(run, pm, nil)).Run(context.Background(), AppRunArgs{
		App:            testApp,
		Target:         m.TargetDescriptor{Platform: m.PlatformIOSSimulator64},
		CollectResults: true,
	})
	require.NoError(t, err)
	require.NoError(t, outcome.TeardownErr)

	assert.Equal(t, m.VerdictLaunchFailure, outcome.Result.Verdict)

	data, err := os.ReadFile(filepath.Join(run.Logs.Directory(), "run.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Test launch failed: "+ErrLaunchTimeout.Error())
}

func TestAppRunner_SpawnFailurePropagates(t *testing.T) {
	run, _, pm := newAppRunTest(t)

	spawn := errors.New("exec: mlaunch: not found")
	launchCall(pm, "--launchsim").Return(m.ExecutionResult{}, spawn).Once()

	runner := NewAppRunner(run, simulatorDeps(run, pm, nil))

	_, err := runner.Run(context.Background(), AppRunArgs{
		App:            testApp,
		Target:         m.TargetDescriptor{Platform: m.PlatformIOSSimulator64},
		CollectResults: true,
	})
	require.ErrorIs(t, err, spawn)
	assert.Equal(t, StateTornDown, runner.State())
}

func TestAppRunner_DeviceLookup(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		run, _, pm := newAppRunTest(t)

		deps := simulatorDeps(run, pm, nil)
		deps.Simulators = stubSimulators{lookup: NotFound("no simulator for %s", "ios-simulator-64_99.0")}
		runner := NewAppRunner(run, deps)

		outcome, err := runner.Run(context.Background(), AppRunArgs{App: testApp, Target: m.TargetDescriptor{Platform: m.PlatformIOSSimulator64}})
		require.NoError(t, err)
		assert.Equal(t, m.VerdictDeviceNotFound, outcome.Result.Verdict)
		assert.Equal(t, "no simulator for ios-simulator-64_99.0", outcome.Result.Message)
		assert.Equal(t, StateIdle, runner.State())
	})

	t.Run("failed", func(t *testing.T) {
		run, _, pm := newAppRunTest(t)

		deps := simulatorDeps(run, pm, nil)
		deps.Simulators = stubSimulators{lookup: Failed(errors.New("listing unreadable"))}

		_, err := NewAppRunner(run, deps).Run(context.Background(), AppRunArgs{App: testApp, Target: m.TargetDescriptor{Platform: m.PlatformIOSSimulator64}})
		require.ErrorIs(t, err, ErrDeviceLookup)
	})
}

func TestAppRunner_RunWithoutResults(t *testing.T) {
	run, _, pm := newAppRunTest(t)

	launchCall(pm, "--launchsim").RunAndReturn(func(_ context.Context, s adapter.ProcessSpec) (m.ExecutionResult, error) {
		assert.Empty(t, envArg(s.Args, "NUNIT_HOSTPORT"))
		assert.Equal(t, "1", envArg(s.Args, "DEBUG"))

		return m.ExecutionResult{ExitCode: m.IntPtr(0)}, nil
	}).Once()

	outcome, err := NewAppRunner(run, simulatorDeps(run, pm, nil)).Run(context.Background(), AppRunArgs{
		App:    testApp,
		Target: m.TargetDescriptor{Platform: m.PlatformIOSSimulator64},
		Env:    map[string]string{"DEBUG": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, m.VerdictSucceeded, outcome.Result.Verdict)
}

func TestAppRunner_TeardownFailuresDoNotChangeVerdict(t *testing.T) {
	run, _, pm := newAppRunTest(t)
	run.Config.Cleanup = CleanupReset

	launchCall(pm, "--launchsim").Return(m.ExecutionResult{ExitCode: m.IntPtr(0)}, nil).Once()

	control := mocks.NewMockSimulatorControl(t)
	control.EXPECT().Erase(mock.Anything, "SIM-1").Return(errors.New("erase failed")).Once()

	outcome, err := NewAppRunner(run, simulatorDeps(run, pm, control)).Run(context.Background(), AppRunArgs{
		App:    testApp,
		Target: m.TargetDescriptor{Platform: m.PlatformIOSSimulator64},
	})
	require.NoError(t, err)

	assert.Equal(t, m.VerdictSucceeded, outcome.Result.Verdict)
	require.Error(t, outcome.TeardownErr)
	assert.Contains(t, outcome.TeardownErr.Error(), "erase failed")
}

func TestAppRunner_KillAllCleanup(t *testing.T) {
	run, _, pm := newAppRunTest(t)
	run.Config.Cleanup = CleanupKillAll

	launchCall(pm, "--launchsim").Return(m.ExecutionResult{ExitCode: m.IntPtr(0)}, nil).Once()

	control := mocks.NewMockSimulatorControl(t)
	control.EXPECT().KillEverything(mock.Anything).Return(nil).Once()

	outcome, err := NewAppRunner(run, simulatorDeps(run, pm, control)).Run(context.Background(), AppRunArgs{
		App:    testApp,
		Target: m.TargetDescriptor{Platform: m.PlatformIOSSimulator64},
	})
	require.NoError(t, err)
	require.NoError(t, outcome.TeardownErr)
}

func TestAppRunner_DeviceTestRun(t *testing.T) {
	run, _, pm := newAppRunTest(t)

	launchCall(pm, "--logdev").RunAndReturn(func(ctx context.Context, s adapter.ProcessSpec) (m.ExecutionResult, error) {
		assert.True(t, hasArg(s.Args, "PHONE-1"))
		<-ctx.Done()

		return m.ExecutionResult{}, nil
	}).Once()

	pm.EXPECT().Run(mock.Anything, mock.MatchedBy(func(s adapter.ProcessSpec) bool {
		return len(s.Args) > 0 && strings.HasPrefix(s.Args[0], "--list-crash-reports=")
	})).RunAndReturn(func(_ context.Context, s adapter.ProcessSpec) (m.ExecutionResult, error) {
		path := strings.TrimPrefix(s.Args[0], "--list-crash-reports=")
		return m.ExecutionResult{ExitCode: m.IntPtr(0)}, os.WriteFile(path, nil, 0o640)
	}).Twice()

	var args []string

	launchCall(pm, "--launchdev").RunAndReturn(func(ctx context.Context, s adapter.ProcessSpec) (m.ExecutionResult, error) {
		args = s.Args
		return fakePayload(t, run, "Tests run: 3 Passed: 3 Inconclusive: 0 Failed: 0 Ignored: 0\n", 0)(ctx, s)
	}).Once()

	deps := AppRunnerDeps{
		Mlaunch:       adapter.NewMlaunch("mlaunch", "", pm),
		Hardware:      stubHardware{lookup: Found(testPhone, nil)},
		HostAddresses: func() ([]string, error) { return []string{"10.1.2.3", "192.168.0.4"}, nil },
	}

	outcome, err := NewAppRunner(run, deps).Run(context.Background(), AppRunArgs{
		App:            testApp,
		Target:         m.TargetDescriptor{Platform: m.PlatformIOSDevice},
		CollectResults: true,
	})
	require.NoError(t, err)
	require.NoError(t, outcome.TeardownErr)

	assert.Equal(t, m.VerdictSucceeded, outcome.Result.Verdict, outcome.Result.Message)
	assert.True(t, hasArg(args, "PHONE-1"))
	assert.True(t, hasArg(args, "--wait-for-exit"))
	assert.Equal(t, "10.1.2.3,192.168.0.4", envArg(args, "NUNIT_HOSTNAME"))

	var described []string
	for _, entry := range run.Logs.Files() {
		described = append(described, entry.Description)
	}

	assert.Contains(t, described, "Device log: Phone")
}

func TestChooseTransport(t *testing.T) {
	tests := []struct {
		name   string
		policy TransportPolicy
		req    ListenerRequest
		want   m.TransportKind
	}{
		{name: "auto simulator", policy: TransportAuto, req: ListenerRequest{Mode: m.RunModeIOS, Simulator: true}, want: m.TransportTCP},
		{name: "auto watch simulator", policy: TransportAuto, req: ListenerRequest{Mode: m.RunModeWatchOS, Simulator: true}, want: m.TransportFile},
		{name: "auto watch device", policy: TransportAuto, req: ListenerRequest{Mode: m.RunModeWatchOS}, want: m.TransportTCP},
		{name: "file", policy: TransportFile, req: ListenerRequest{Mode: m.RunModeIOS}, want: m.TransportFile},
		{name: "tunnel forces tcp", policy: TransportFile, req: ListenerRequest{Tunnel: true}, want: m.TransportTCP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chooseTransport(tt.policy, tt.req))
		})
	}
}

func TestListenerFactory_FileTransport(t *testing.T) {
	run, _ := newTestRun(t)
	run.Config.Transport = TransportFile

	testLog, err := run.Logs.Create("test.log", "Test log")
	require.NoError(t, err)

	listener, err := NewListenerFactory().Create(run, testLog, ListenerRequest{Mode: m.RunModeIOS, Simulator: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	file, ok := listener.(*adapter.FileListener)
	require.True(t, ok)
	assert.Equal(t, run.Logs.Directory(), filepath.Dir(file.Path()))
	assert.Equal(t, m.TransportFile, listener.Kind())
}

// recordedStep is a log capture or tunnel that notes when it is stopped.
type recordedStep struct {
	name  string
	calls *[]string
	err   error
}

func (r recordedStep) Stop() error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func (r recordedStep) Close() error {
	return r.Stop()
}

func TestSession_TeardownOrder(t *testing.T) {
	tests := []struct {
		name       string
		captureErr error
		closeErr   error
		wantErrs   []string
	}{
		{name: "all steps succeed"},
		{
			name:       "failing steps do not skip later ones",
			captureErr: errors.New("capture stuck"),
			closeErr:   errors.New("accept loop stuck"),
			wantErrs:   []string{"stop log capture: capture stuck", "close listener: accept loop stuck"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, _ := newTestRun(t)
			run.Config.Cleanup = CleanupReset

			var calls []string

			listener := mocks.NewMockListener(t)
			listener.EXPECT().Cancel().Run(func() { calls = append(calls, "cancel listener") }).Once()
			listener.EXPECT().Close().RunAndReturn(func() error {
				calls = append(calls, "close listener")
				return tt.closeErr
			}).Once()

			control := mocks.NewMockSimulatorControl(t)
			control.EXPECT().Erase(mock.Anything, "SIM-1").RunAndReturn(func(context.Context, string) error {
				calls = append(calls, "erase")
				return nil
			}).Once()
			control.EXPECT().Boot(mock.Anything, "SIM-1").RunAndReturn(func(context.Context, string) error {
				calls = append(calls, "boot")
				return nil
			}).Once()

			s := &session{
				run:     run,
				control: control,
				captures: []adapter.LogCapture{
					recordedStep{name: "system log", calls: &calls, err: tt.captureErr},
					recordedStep{name: "device log", calls: &calls},
				},
				listener:  listener,
				tunnel:    recordedStep{name: "close tunnel", calls: &calls},
				resetSims: []m.Device{testSimulator},
			}

			err := s.teardown(context.Background())

			assert.Equal(t, []string{
				"system log", "device log", "cancel listener", "close listener", "close tunnel", "erase", "boot",
			}, calls)

			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestAppRunner_AwaitResultsUsesConfiguredDrainTimeout(t *testing.T) {
	run, clk := newTestRun(t)
	run.Config.ResultDrainTimeout = 30 * time.Second

	listener := mocks.NewMockListener(t)
	listener.EXPECT().Completed().Return(make(chan struct{}))

	runner := &appRunner{run: run}
	reporter := NewTestReporter(run, listener, nil, nil, nil)

	done := make(chan struct{})

	go func() {
		defer close(done)
		runner.awaitResults(context.Background(), listener, reporter)
	}()

	finished := func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}

	require.Eventually(t, func() bool { return clk.WatcherCount() > 0 }, time.Second, time.Millisecond)

	clk.Increment(29 * time.Second)
	assert.Never(t, finished, 50*time.Millisecond, 5*time.Millisecond)

	clk.Increment(time.Second)
	require.Eventually(t, finished, time.Second, 5*time.Millisecond)
}
