package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "harness.dev/pkg/harness/internal/model"
)

func newTestUI(styled bool) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd, styled), &buf
}

func TestSimpleUI_DisplaySimulators(t *testing.T) {
	ui, buf := newTestUI(false)

	err := ui.DisplaySimulators(context.Background(), []DeviceGroup{
		{Title: "iOS 64-bit", Devices: []m.Device{
			{Name: "iPhone 15", UDID: "AAAA-1", OSVersion: "17.2", State: m.DeviceStateBooted},
			{Name: "iPhone 14", UDID: "AAAA-3", OSVersion: "16.4", State: m.DeviceStateShutdown},
		}},
		{Title: "watchOS", Devices: []m.Device{
			{Name: "Apple Watch", UDID: "BBBB-2", OSVersion: "10.2", State: m.DeviceStateShutdown, CompanionUDID: "AAAA-1"},
		}},
	})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{"iPhone 15", "AAAA-1", "BBBB-2", "17.2", "Booted", "Shutdown"} {
		assert.Contains(t, out, want)
	}

	assert.Equal(t, 1, strings.Count(out, "iOS 64-bit"))
	assert.Equal(t, 1, strings.Count(out, "watchOS"))

	ios, phone, older, watchGroup, watch := strings.Index(out, "iOS 64-bit"), strings.Index(out, "AAAA-1"),
		strings.Index(out, "AAAA-3"), strings.Index(out, "watchOS"), strings.Index(out, "BBBB-2")
	assert.Less(t, ios, phone)
	assert.Less(t, phone, older)
	assert.Less(t, older, watchGroup)
	assert.Less(t, watchGroup, watch)

	assert.Contains(t, strings.ToLower(out), "total 3")
}

func TestSimpleUI_DisplayDevices(t *testing.T) {
	ui, buf := newTestUI(false)

	err := ui.DisplayDevices(context.Background(), []m.Device{
		{Name: "Pixel", UDID: "emulator-5554", Architecture: "x86_64", APILevel: 33, Kind: m.KindAndroid},
		{Name: "iPad", UDID: "0000-XYZ", DeviceType: "iPad", OSVersion: "17.0", Kind: m.KindHardware},
	})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{"Pixel", "emulator-5554", "x86_64", "33", "iPad", "0000-XYZ"} {
		assert.Contains(t, out, want)
	}
}

func TestSimpleUI_DisplayUDIDs(t *testing.T) {
	ui, buf := newTestUI(false)

	require.NoError(t, ui.DisplayUDIDs(context.Background(), []m.Device{{UDID: "A"}, {UDID: "B"}}))
	assert.Equal(t, "A\nB\n", buf.String())
}

func TestSimpleUI_DisplayOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    []string
	}{
		{
			name:    "exit code only",
			outcome: Outcome{Command: "android install", Code: m.ExitPackageInstallationFailure},
			want:    []string{"android install: PACKAGE_INSTALLATION_FAILURE (78)"},
		},
		{
			name: "run result and manifest",
			outcome: Outcome{
				Command:  "apple test",
				Code:     m.ExitTestsFailed,
				Result:   &m.RunResult{Verdict: m.VerdictFailed, Message: "Tests failed"},
				Manifest: "/tmp/out/logs.yaml",
			},
			want: []string{"Failed: Tests failed", "apple test: TESTS_FAILED (1)", "Artifacts: /tmp/out/logs.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestUI(false)

			require.NoError(t, ui.DisplayOutcome(context.Background(), tt.outcome))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, buf := newTestUI(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayOutcome(ctx, Outcome{Command: "x"}), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
