package adapter

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harness.dev/pkg/harness/pkg"
)

func newTestLog(t *testing.T) pkg.FileLog {
	t.Helper()

	log, err := pkg.NewFileLog(filepath.Join(t.TempDir(), "test.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })

	return log
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestIsCompletionLine(t *testing.T) {
	assert.True(t, IsCompletionLine("Tests run: 10 Passed: 9 Inconclusive: 0 Failed: 1 Ignored: 0"))
	assert.True(t, IsCompletionLine("  </assemblies>"))
	assert.True(t, IsCompletionLine("</test-run>"))
	assert.False(t, IsCompletionLine("[PASS] Foo.Bar"))
}

func TestTCPListener(t *testing.T) {
	t.Run("receives the stream and completes on close", func(t *testing.T) {
		log := newTestLog(t)
		l := NewTCPListener(log, TCPListenerOptions{Address: "127.0.0.1"})

		port, err := l.Initialize()
		require.NoError(t, err)
		require.NotZero(t, port)

		again, err := l.Initialize()
		require.NoError(t, err)
		require.Equal(t, port, again)

		l.Start(context.Background())
		defer l.Close()

		conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, l.WaitConnected(ctx))

		fmt.Fprintln(conn, "[PASS] One")
		fmt.Fprintln(conn, "Tests run: 1 Passed: 1 Inconclusive: 0 Failed: 0 Ignored: 0")
		require.NoError(t, conn.Close())

		select {
		case <-l.Completed():
		case <-time.After(5 * time.Second):
			t.Fatal("listener did not complete")
		}

		lines, err := log.Lines()
		require.NoError(t, err)
		assert.Equal(t, []string{"[PASS] One", "Tests run: 1 Passed: 1 Inconclusive: 0 Failed: 0 Ignored: 0"}, lines)
		require.NoError(t, l.Close())
	})

	t.Run("cancel before connection", func(t *testing.T) {
		l := NewTCPListener(newTestLog(t), TCPListenerOptions{Address: "127.0.0.1"})
		_, err := l.Initialize()
		require.NoError(t, err)

		l.Start(context.Background())
		l.Cancel()
		l.Cancel()

		require.ErrorIs(t, l.WaitConnected(context.Background()), ErrListenerCancelled)
		require.NoError(t, l.Close())
		require.NoError(t, l.Close())
		assert.False(t, isClosed(l.Completed()))
	})

	t.Run("connect timeout comes from the caller", func(t *testing.T) {
		l := NewTCPListener(newTestLog(t), TCPListenerOptions{Address: "127.0.0.1"})
		_, err := l.Initialize()
		require.NoError(t, err)

		l.Start(context.Background())
		defer l.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, l.WaitConnected(ctx), context.DeadlineExceeded)
	})

	t.Run("start without initialize fails the connection", func(t *testing.T) {
		l := NewTCPListener(newTestLog(t), TCPListenerOptions{})
		l.Start(context.Background())

		err := l.WaitConnected(context.Background())
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrListenerCancelled)
		require.NoError(t, l.Close())
	})
}

func TestFileListener(t *testing.T) {
	const interval = 100 * time.Millisecond

	dir := t.TempDir()
	path := filepath.Join(dir, "results", "run.log")
	log := newTestLog(t)
	clk := fakeclock.NewFakeClock(time.Now())

	l := NewFileListener(path, log, clk, interval)
	assert.Equal(t, path, l.Path())

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o640))

	port, err := l.Initialize()
	require.NoError(t, err)
	require.Zero(t, port)
	require.NoFileExists(t, path)

	l.Start(context.Background())
	defer l.Close()

	require.NoError(t, os.WriteFile(path, []byte("[PASS] One\n"), 0o640))

	require.Eventually(t, func() bool {
		clk.Increment(interval)
		return isClosed(l.connected)
	}, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, l.WaitConnected(context.Background()))
	assert.False(t, isClosed(l.Completed()))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o640)
	require.NoError(t, err)
	_, err = fmt.Fprintln(f, "Tests run: 1 Passed: 1 Inconclusive: 0 Failed: 0 Ignored: 0")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool {
		clk.Increment(interval)
		return isClosed(l.Completed())
	}, 5*time.Second, 10*time.Millisecond)

	lines, err := log.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"[PASS] One", "Tests run: 1 Passed: 1 Inconclusive: 0 Failed: 0 Ignored: 0"}, lines)

	require.NoError(t, l.Close())
}

func TestFileLogCapture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "system.log")
	require.NoError(t, os.WriteFile(path, []byte("before\n"), 0o640))

	out := newTestLog(t)
	capture := StartFileLogCapture(path, out)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o640)
	require.NoError(t, err)
	_, err = fmt.Fprintln(f, "during")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, capture.Stop())

	lines, err := out.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"during"}, lines)

	require.NoError(t, StartFileLogCapture(filepath.Join(dir, "missing.log"), out).Stop())
}
