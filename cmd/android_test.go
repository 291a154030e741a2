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

func TestAndroidTestCmd(t *testing.T) {
	wf := useWorkflow(t)

	wf.EXPECT().AndroidTest(mock.Anything, mock.Anything).
		Run(func(_ context.Context, args domain.AndroidTestArgs) {
			assert.Equal(t, "/tmp/tests.apk", args.APK)
			assert.Equal(t, domain.AndroidDeviceQuery{Serial: "emulator-5554", Architecture: "x86_64", APILevel: 33}, args.Query)
			assert.Equal(t, "com.example.tests", args.Instrumentation.PackageName)
			assert.Equal(t, "com.example.tests.Runner", args.Instrumentation.Instrumentation)
			assert.Equal(t, map[string]string{"filter": "Smoke"}, args.Instrumentation.Extras)
			assert.Equal(t, 3, args.Instrumentation.ExpectedExitCode)
			assert.Equal(t, 10*time.Minute, args.Instrumentation.Timeout)
		}).
		Return(m.ExitCode(42), nil).Once()

	_, err := executeCommand(t, "android", "test",
		"--apk", "/tmp/tests.apk",
		"--package-name", "com.example.tests",
		"--instrumentation", "com.example.tests.Runner",
		"--arg", "filter=Smoke",
		"--expected-exit-code", "3",
		"--device-id", "emulator-5554",
		"--device-arch", "x86_64",
		"--api-version", "33",
		"--timeout", "10m",
	)

	require.Error(t, err)
	assert.Equal(t, m.ExitCode(42), exitCode(err))
}

func TestAndroidCmds(t *testing.T) {
	t.Run("device", func(t *testing.T) {
		wf := useWorkflow(t)
		wf.EXPECT().AndroidDevice(mock.Anything, domain.AndroidDeviceArgs{Query: domain.AndroidDeviceQuery{Architecture: "arm64-v8a"}}).
			Return(m.ExitSuccess, nil).Once()

		_, err := executeCommand(t, "android", "device", "--device-arch", "arm64-v8a")
		require.NoError(t, err)
	})

	t.Run("install", func(t *testing.T) {
		wf := useWorkflow(t)
		wf.EXPECT().AndroidInstall(mock.Anything, mock.MatchedBy(func(args domain.AndroidInstallArgs) bool {
			return args.APK == "/tmp/app.apk"
		})).Return(m.ExitPackageNotFound, nil).Once()

		_, err := executeCommand(t, "android", "install", "--apk", "/tmp/app.apk")
		assert.Equal(t, m.ExitPackageNotFound, exitCode(err))
	})

	t.Run("uninstall", func(t *testing.T) {
		wf := useWorkflow(t)
		wf.EXPECT().AndroidUninstall(mock.Anything, mock.MatchedBy(func(args domain.AndroidUninstallArgs) bool {
			return args.PackageName == "com.example.app"
		})).Return(m.ExitSuccess, nil).Once()

		_, err := executeCommand(t, "android", "uninstall", "-p", "com.example.app")
		require.NoError(t, err)
	})

	t.Run("run", func(t *testing.T) {
		wf := useWorkflow(t)
		wf.EXPECT().AndroidRun(mock.Anything, mock.MatchedBy(func(args domain.AndroidRunArgs) bool {
			return args.Instrumentation.PackageName == "com.example.tests" && args.Instrumentation.Instrumentation == ""
		})).Return(m.ExitAppCrash, nil).Once()

		_, err := executeCommand(t, "android", "run", "-p", "com.example.tests")
		assert.Equal(t, m.ExitAppCrash, exitCode(err))
	})

	t.Run("missing package name", func(t *testing.T) {
		useWorkflow(t)

		_, err := executeCommand(t, "android", "run")
		assert.Equal(t, m.ExitInvalidArguments, exitCode(err))
	})
}
