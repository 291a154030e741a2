package adapter_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"harness.dev/pkg/harness/internal/adapter"
	"harness.dev/pkg/harness/internal/adapter/mocks"
	m "harness.dev/pkg/harness/internal/model"
)

func simctlCall(verb string) interface{} {
	return mock.MatchedBy(func(spec adapter.ProcessSpec) bool {
		return spec.Path == "xcrun" && len(spec.Args) > 1 && spec.Args[0] == "simctl" && spec.Args[1] == verb
	})
}

func respond(output string, code int) func(context.Context, adapter.ProcessSpec) (m.ExecutionResult, error) {
	return func(_ context.Context, spec adapter.ProcessSpec) (m.ExecutionResult, error) {
		if spec.Stdout != nil {
			fmt.Fprint(spec.Stdout, output)
		}

		return m.ExecutionResult{ExitCode: m.IntPtr(code)}, nil
	}
}

func TestSimctl_Boot(t *testing.T) {
	t.Run("already booted is fine", func(t *testing.T) {
		pm := mocks.NewMockProcessManager(t)
		pm.EXPECT().Run(mock.Anything, simctlCall("boot")).
			RunAndReturn(respond("Unable to boot device in current state: Booted", 149))

		require.NoError(t, adapter.NewSimctl(pm).Boot(context.Background(), "UDID"))
	})

	t.Run("other failures surface", func(t *testing.T) {
		pm := mocks.NewMockProcessManager(t)
		pm.EXPECT().Run(mock.Anything, simctlCall("boot")).
			RunAndReturn(respond("Invalid device: UDID", 164))

		require.Error(t, adapter.NewSimctl(pm).Boot(context.Background(), "UDID"))
	})

	t.Run("spawn failure", func(t *testing.T) {
		pm := mocks.NewMockProcessManager(t)
		pm.EXPECT().Run(mock.Anything, simctlCall("boot")).Return(m.ExecutionResult{}, errors.New("no xcrun"))

		require.Error(t, adapter.NewSimctl(pm).Boot(context.Background(), "UDID"))
	})
}

func TestSimctl_EraseShutsDownFirst(t *testing.T) {
	pm := mocks.NewMockProcessManager(t)

	var order []string

	record := func(verb, out string, code int) func(context.Context, adapter.ProcessSpec) (m.ExecutionResult, error) {
		return func(ctx context.Context, spec adapter.ProcessSpec) (m.ExecutionResult, error) {
			order = append(order, verb)
			return respond(out, code)(ctx, spec)
		}
	}

	pm.EXPECT().Run(mock.Anything, simctlCall("shutdown")).
		RunAndReturn(record("shutdown", "Unable to shutdown device in current state: Shutdown", 149))
	pm.EXPECT().Run(mock.Anything, simctlCall("erase")).RunAndReturn(record("erase", "", 0))

	require.NoError(t, adapter.NewSimctl(pm).Erase(context.Background(), "UDID"))
	require.Equal(t, []string{"shutdown", "erase"}, order)
}

func TestSimctl_Create(t *testing.T) {
	pm := mocks.NewMockProcessManager(t)
	pm.EXPECT().Run(mock.Anything, simctlCall("create")).
		RunAndReturn(respond("8A2B7D8E-0000-4000-8000-000000000001\n", 0))

	udid, err := adapter.NewSimctl(pm).Create(context.Background(), "harness", "com.apple.CoreSimulator.SimDeviceType.iPhone-X",
		"com.apple.CoreSimulator.SimRuntime.iOS-14-2")
	require.NoError(t, err)
	require.Equal(t, "8A2B7D8E-0000-4000-8000-000000000001", udid)
}

func TestSimctl_KillEverythingToleratesNoMatches(t *testing.T) {
	pm := mocks.NewMockProcessManager(t)
	pm.EXPECT().Run(mock.Anything, mock.MatchedBy(func(s adapter.ProcessSpec) bool { return s.Path == "launchctl" })).
		RunAndReturn(respond("", 0))
	pm.EXPECT().Run(mock.Anything, mock.MatchedBy(func(s adapter.ProcessSpec) bool { return s.Path == "killall" })).
		RunAndReturn(respond("No matching processes", 1))

	require.NoError(t, adapter.NewSimctl(pm).KillEverything(context.Background()))
}

func TestMlaunch_RunPassesSdkRoot(t *testing.T) {
	pm := mocks.NewMockProcessManager(t)
	pm.EXPECT().Run(mock.Anything, mock.MatchedBy(func(s adapter.ProcessSpec) bool {
		return s.Path == "/opt/mlaunch" &&
			len(s.Args) == 3 && s.Args[0] == "--sdkroot" && s.Args[1] == "/Applications/Xcode.app" && s.Args[2] == "--listsim" &&
			s.Env["DEVELOPER_DIR"] == "/Applications/Xcode.app/Contents/Developer"
	})).Return(m.ExecutionResult{ExitCode: m.IntPtr(0)}, nil)

	ml := adapter.NewMlaunch("/opt/mlaunch", "/Applications/Xcode.app", pm)
	result, err := ml.Run(context.Background(), []string{"--listsim"}, 0, nil, nil)
	require.NoError(t, err)
	require.True(t, result.Succeeded())
}
