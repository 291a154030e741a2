package adapter_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/electricbubble/gadb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"harness.dev/pkg/harness/internal/adapter"
	"harness.dev/pkg/harness/internal/adapter/mocks"
	m "harness.dev/pkg/harness/internal/model"
)

func TestInstrumentArgs_Component(t *testing.T) {
	assert.Equal(t, "com.example.tests", adapter.InstrumentArgs{PackageName: "com.example.tests"}.Component())
	assert.Equal(t, "com.example.tests/.Runner",
		adapter.InstrumentArgs{PackageName: "com.example.tests", Instrumentation: ".Runner"}.Component())
}

func TestLocalAdbClient_Instrument(t *testing.T) {
	pm := mocks.NewMockProcessManager(t)
	pm.EXPECT().Run(mock.Anything, mock.Anything).
		Run(func(_ context.Context, spec adapter.ProcessSpec) {
			assert.Equal(t, "/sdk/platform-tools/adb", spec.Path)
			assert.Equal(t, []string{
				"-s", "emulator-5554", "shell", "am", "instrument",
				"-e", "a", "1", "-e", "b", "2",
				"-w", "com.example.tests/.Runner",
			}, spec.Args)
			assert.Equal(t, time.Minute, spec.Timeout)
		}).
		RunAndReturn(respond("INSTRUMENTATION_CODE: -1\n", 0)).Once()

	var out bytes.Buffer

	result, err := adapter.NewLocalAdbClient("/sdk/platform-tools/adb", pm).Instrument(context.Background(), "emulator-5554", adapter.InstrumentArgs{
		PackageName:     "com.example.tests",
		Instrumentation: ".Runner",
		Extras:          map[string]string{"b": "2", "a": "1"},
		Timeout:         time.Minute,
	}, &out)
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Equal(t, "INSTRUMENTATION_CODE: -1\n", out.String())
}

func TestLocalAdbClient_InstallAndLogcat(t *testing.T) {
	adbCall := func(args ...string) interface{} {
		return mock.MatchedBy(func(spec adapter.ProcessSpec) bool {
			return assert.ObjectsAreEqual(append([]string{"-s", "R58M"}, args...), spec.Args)
		})
	}

	pm := mocks.NewMockProcessManager(t)
	pm.EXPECT().Run(mock.Anything, adbCall("install", "-r", "-g", "/tmp/app.apk")).RunAndReturn(respond("Success\n", 0)).Once()
	pm.EXPECT().Run(mock.Anything, adbCall("logcat", "-c")).RunAndReturn(respond("- waiting for device -\n", 1)).Once()
	pm.EXPECT().Run(mock.Anything, adbCall("logcat", "-d")).RunAndReturn(respond("I/TestRunner: started\n", 0)).Once()

	adb := adapter.NewLocalAdbClient("", pm)

	result, err := adb.Install(context.Background(), "R58M", "/tmp/app.apk", time.Minute, nil)
	require.NoError(t, err)
	assert.True(t, result.Succeeded())

	err = adb.ClearLogcat(context.Background(), "R58M")
	require.ErrorContains(t, err, "waiting for device")

	var logcat bytes.Buffer
	require.NoError(t, adb.DumpLogcat(context.Background(), "R58M", &logcat))
	assert.Contains(t, logcat.String(), "TestRunner")
}

func TestLocalAdbClient_Devices(t *testing.T) {
	client, err := gadb.NewClient()
	if err != nil {
		t.Skipf("adb server not running: %v", err)
	}

	attached, err := client.DeviceList()
	require.NoError(t, err)

	devices, err := adapter.NewLocalAdbClient("", nil).Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, len(attached))

	for i, d := range devices {
		assert.Equal(t, attached[i].Serial(), d.UDID)
		assert.NotEmpty(t, d.Name)
		assert.Equal(t, m.KindAndroid, d.Kind)
		assert.Equal(t, m.DeviceStateBooted, d.State)
	}
}

func TestLocalAdbClient_DevicesCancelled(t *testing.T) {
	if _, err := gadb.NewClient(); err != nil {
		t.Skipf("adb server not running: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	devices, err := adapter.NewLocalAdbClient("", nil).Devices(ctx)
	if len(devices) == 0 && err == nil {
		return
	}

	require.ErrorIs(t, err, context.Canceled)
}
