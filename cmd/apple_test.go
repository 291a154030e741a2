package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"harness.dev/pkg/harness/internal/domain"
	m "harness.dev/pkg/harness/internal/model"
)

func TestAppleTestCmd(t *testing.T) {
	wf := useWorkflow(t)
	out := t.TempDir()

	wf.EXPECT().AppleTest(mock.Anything, mock.Anything).
		Run(func(_ context.Context, args domain.AppleArgs) {
			assert.Equal(t, "/tmp/monotouchtest.app", args.AppPath)
			assert.Equal(t, m.PlatformIOSSimulator64, args.Target.Platform)
			assert.Equal(t, "17.2", args.Target.OSVersion)
			assert.Equal(t, map[string]string{"A": "1", "B": "2"}, args.Env)
			assert.Equal(t, []string{"--filter", "Smoke"}, args.Args)
			assert.Equal(t, out, args.OutputDir)
			assert.Equal(t, 30*time.Second, args.Config.Timeout)
			assert.Equal(t, domain.CleanupReset, args.Config.Cleanup)
			assert.True(t, args.Find.WaitForBoot)
		}).
		Return(m.ExitTestsFailed, nil).Once()

	_, err := executeCommand(t, "apple", "test",
		"--app", "/tmp/monotouchtest.app",
		"--target", "ios-simulator-64_17.2",
		"--set-env", "A=1", "--set-env", "B=2",
		"--arg=--filter", "--arg=Smoke",
		"--reset-simulator",
		"--timeout", "30s",
		"-o", out,
	)

	require.Error(t, err)
	assert.Equal(t, m.ExitTestsFailed, exitCode(err))
}

func TestAppleRunCmd(t *testing.T) {
	wf := useWorkflow(t)

	wf.EXPECT().AppleRun(mock.Anything, mock.MatchedBy(func(args domain.AppleArgs) bool {
		return args.Target.Platform == m.PlatformIOSDevice && args.Tunnel && args.DeviceName == "My iPhone"
	})).Return(m.ExitSuccess, nil).Once()

	_, err := executeCommand(t, "apple", "run",
		"--app", "/tmp/app.app", "--target", "ios-device", "--tunnel", "--device-name", "My iPhone")
	require.NoError(t, err)
}

func TestAppleRunCmd_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown platform", args: []string{"--app", "a.app", "--target", "android-phone"}},
		{name: "malformed version", args: []string{"--app", "a.app", "--target", "ios-simulator-64_x.y"}},
		{name: "tunnel on simulator", args: []string{"--app", "a.app", "--target", "tvos-simulator", "--tunnel"}},
		{name: "missing app", args: []string{"--target", "ios-device"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useWorkflow(t)

			_, err := executeCommand(t, append([]string{"apple", "run"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, m.ExitInvalidArguments, exitCode(err))
		})
	}
}

func TestSimulatorsCmds(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		wf := useWorkflow(t)
		wf.EXPECT().SimulatorsList(mock.Anything, mock.Anything).Return(m.ExitSuccess, nil).Once()

		_, err := executeCommand(t, "apple", "simulators", "list")
		require.NoError(t, err)
	})

	t.Run("find", func(t *testing.T) {
		wf := useWorkflow(t)
		wf.EXPECT().SimulatorsFind(mock.Anything, mock.MatchedBy(func(args domain.SimulatorsFindArgs) bool {
			return args.Target.Platform == m.PlatformWatchOSSimulator && args.Find.CreateIfMissing && !args.Find.WaitForBoot
		})).Return(m.ExitDeviceNotFound, nil).Once()

		_, err := executeCommand(t, "apple", "simulators", "find", "watchos-simulator", "--create")
		assert.Equal(t, m.ExitDeviceNotFound, exitCode(err))
	})

	t.Run("install", func(t *testing.T) {
		wf := useWorkflow(t)
		wf.EXPECT().SimulatorsInstall(mock.Anything, domain.SimulatorsInstallArgs{ImagePath: "/tmp/runtime.dmg"}).
			Return(m.ExitSuccess, nil).Once()

		_, err := executeCommand(t, "apple", "simulators", "install", "/tmp/runtime.dmg")
		require.NoError(t, err)
	})

	t.Run("group shows help", func(t *testing.T) {
		useWorkflow(t)

		output, err := executeCommand(t, "apple", "simulators")
		assert.Equal(t, m.ExitHelpShown, exitCode(err))
		assert.Contains(t, output, "install")
	})
}
