//go:build unix

package adapter

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harness.dev/pkg/harness/pkg"
)

func TestLocalProcessManager_Run(t *testing.T) {
	pm := NewLocalProcessManager()

	t.Run("captures output and exit code", func(t *testing.T) {
		var out bytes.Buffer

		result, err := pm.Run(context.Background(), ProcessSpec{
			Path:   "/bin/sh",
			Args:   []string{"-c", "echo $HARNESS_MARKER; exit 3"},
			Env:    map[string]string{"HARNESS_MARKER": "hello"},
			Stdout: &out,
		})
		require.NoError(t, err)
		require.NotNil(t, result.ExitCode)
		assert.Equal(t, 3, *result.ExitCode)
		assert.False(t, result.TimedOut)
		assert.Equal(t, "hello\n", out.String())
	})

	t.Run("records log paths", func(t *testing.T) {
		log, err := pkg.NewFileLog(filepath.Join(t.TempDir(), "out.log"))
		require.NoError(t, err)
		defer log.Close()

		result, err := pm.Run(context.Background(), ProcessSpec{Path: "/bin/sh", Args: []string{"-c", "echo ok"}, Stdout: log})
		require.NoError(t, err)
		assert.True(t, result.Succeeded())
		assert.Equal(t, log.Path(), result.Stdout)
		assert.Equal(t, log.Path(), result.Stderr)

		lines, err := log.Lines()
		require.NoError(t, err)
		assert.Equal(t, []string{"ok"}, lines)
	})

	t.Run("timeout kills the process", func(t *testing.T) {
		start := time.Now()

		result, err := pm.Run(context.Background(), ProcessSpec{
			Path:    "/bin/sh",
			Args:    []string{"-c", "sleep 30"},
			Timeout: 200 * time.Millisecond,
		})
		require.NoError(t, err)
		assert.True(t, result.TimedOut)
		assert.Nil(t, result.ExitCode)
		assert.Less(t, time.Since(start), 10*time.Second)
	})

	t.Run("cancellation is not a timeout", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(100 * time.Millisecond)
			cancel()
		}()

		result, err := pm.Run(ctx, ProcessSpec{Path: "/bin/sh", Args: []string{"-c", "sleep 30"}, Timeout: time.Minute})
		require.NoError(t, err)
		assert.False(t, result.TimedOut)
		assert.Nil(t, result.ExitCode)
	})

	t.Run("spawn failure is an error", func(t *testing.T) {
		_, err := pm.Run(context.Background(), ProcessSpec{Path: filepath.Join(t.TempDir(), "missing")})
		require.Error(t, err)
	})
}
