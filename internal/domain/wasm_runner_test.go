package domain

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"harness.dev/pkg/harness/internal/adapter"
	"harness.dev/pkg/harness/internal/adapter/mocks"
	m "harness.dev/pkg/harness/internal/model"
)

func newWasmApp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o640))

	return dir
}

// replayConsole replays lines into the runner the way a browser would.
func replayConsole(lines []string, result m.ExecutionResult) func(context.Context, string, time.Duration, adapter.ConsoleFunc) (m.ExecutionResult, error) {
	return func(_ context.Context, _ string, _ time.Duration, onConsole adapter.ConsoleFunc) (m.ExecutionResult, error) {
		for _, line := range lines {
			onConsole(line, false)
		}

		return result, nil
	}
}

func TestWasmBrowserRunner_ServesAppAndStopsBrowserOnExit(t *testing.T) {
	run, _ := newTestRun(t)
	browser := mocks.NewMockBrowser(t)

	browser.EXPECT().Run(mock.Anything, mock.Anything, run.Config.Timeout, mock.Anything).
		RunAndReturn(func(ctx context.Context, url string, _ time.Duration, onConsole adapter.ConsoleFunc) (m.ExecutionResult, error) {
			assert.Contains(t, url, "/index.html?arg=--run&arg=Suite")

			resp, err := http.Get(url)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())
			assert.Equal(t, "<html>app</html>", string(body))

			onConsole("[PASS] Test1", false)
			onConsole("WASM EXIT 0", false)

			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
				t.Error("browser was not stopped after the app exited")
			}

			return m.ExecutionResult{}, nil
		}).Once()

	code, err := NewWasmBrowserRunner(run, browser).Run(context.Background(), WasmRunArgs{
		AppDir: newWasmApp(t),
		Args:   []string{"--run", "Suite"},
	})
	require.NoError(t, err)
	assert.Equal(t, m.ExitSuccess, code)
}

func TestWasmBrowserRunner_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		result   m.ExecutionResult
		patterns []string
		expected int
		want     m.ExitCode
	}{
		{
			name:  "unexpected exit code",
			lines: []string{"[FAIL] Test1", "WASM EXIT 1"},
			want:  m.ExitTestsFailed,
		},
		{
			name:     "expected nonzero exit code",
			lines:    []string{"WASM EXIT 42"},
			expected: 42,
			want:     m.ExitSuccess,
		},
		{
			name:   "timed out",
			lines:  []string{"[PASS] Test1"},
			result: m.ExecutionResult{TimedOut: true},
			want:   m.ExitTimedOut,
		},
		{
			name:   "no exit code",
			lines:  []string{"[PASS] Test1"},
			result: m.ExecutionResult{ExitCode: m.IntPtr(0)},
			want:   m.ExitReturnCodeNotSet,
		},
		{
			name:     "error pattern",
			lines:    []string{"RuntimeError: unreachable", "WASM EXIT 0"},
			patterns: []string{`RuntimeError`},
			want:     m.ExitGeneralFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, _ := newTestRun(t)

			browser := mocks.NewMockBrowser(t)
			browser.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				RunAndReturn(replayConsole(tt.lines, tt.result)).Once()

			code, err := NewWasmBrowserRunner(run, browser).Run(context.Background(), WasmRunArgs{
				AppDir:           newWasmApp(t),
				ErrorPatterns:    tt.patterns,
				ExpectedExitCode: tt.expected,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestWasmBrowserRunner_BrowserFailure(t *testing.T) {
	run, _ := newTestRun(t)

	browser := mocks.NewMockBrowser(t)
	browser.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(m.ExecutionResult{}, errors.New("exec: chrome: not found")).Once()

	code, err := NewWasmBrowserRunner(run, browser).Run(context.Background(), WasmRunArgs{AppDir: newWasmApp(t)})
	require.Error(t, err)
	assert.Equal(t, m.ExitGeneralFailure, code)
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:1/index.html", pageURL("http://127.0.0.1:1/", "", nil))
	assert.Equal(t, "http://127.0.0.1:1/main.html?arg=a+b", pageURL("http://127.0.0.1:1/", "main.html", []string{"a b"}))
}
