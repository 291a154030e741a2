package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"golang.org/x/sync/errgroup"

	m "harness.dev/pkg/harness/internal/model"
	"harness.dev/pkg/harness/pkg"
)

// FileListener receives the result stream by polling a file the payload writes to. It is
// used when the payload cannot be expected to reach a host socket.
type FileListener struct {
	listenerState

	path     string
	clock    clock.Clock
	interval time.Duration
	offset   int64

	lifecycle sync.Mutex
	cancel    context.CancelFunc
	group     *errgroup.Group
	closeOnce sync.Once
}

// NewFileListener constructs a FileListener polling path every interval.
func NewFileListener(path string, testLog pkg.FileLog, clk clock.Clock, interval time.Duration) *FileListener {
	if clk == nil {
		clk = clock.NewClock()
	}

	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	l := &FileListener{path: path, clock: clk, interval: interval}
	l.init(testLog)

	return l
}

// Kind implements Listener.
func (l *FileListener) Kind() m.TransportKind {
	return m.TransportFile
}

// Path is the file the payload is told to write its results to.
func (l *FileListener) Path() string {
	return l.path
}

// Initialize removes any stale result file. There is no port.
func (l *FileListener) Initialize() (int, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return 0, fmt.Errorf("failed to create result directory: %w", err)
	}

	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("Failed to remove stale result file", "path", l.path, "error", err)
		return 0, fmt.Errorf("failed to remove stale result file: %w", err)
	}

	return 0, nil
}

// Start implements Listener.
func (l *FileListener) Start(ctx context.Context) {
	l.lifecycle.Lock()
	defer l.lifecycle.Unlock()

	if l.group != nil || l.isCancelled() {
		return
	}

	ctx, l.cancel = context.WithCancel(ctx)
	l.group, ctx = errgroup.WithContext(ctx)

	l.group.Go(func() error { return l.pollLoop(ctx) })
}

func (l *FileListener) pollLoop(ctx context.Context) error {
	ticker := l.clock.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Pick up whatever was written between the last tick and cancellation.
			if _, err := l.poll(); err != nil {
				slog.Debug("Final result file poll failed", "path", l.path, "error", err)
			}

			return nil
		case <-ticker.C():
			done, err := l.poll()
			if err != nil {
				slog.Warn("Failed to poll result file", "path", l.path, "error", err)
				continue
			}

			if done {
				slog.Debug("Result file completed", "path", l.path)
				l.markCompleted()

				return nil
			}
		}
	}
}

func (l *FileListener) poll() (bool, error) {
	file, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close result file", "path", l.path, "error", err)
		}
	}()

	if _, err := file.Seek(l.offset, io.SeekStart); err != nil {
		return false, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return false, err
	}

	if len(data) == 0 {
		return false, nil
	}

	l.offset += int64(len(data))
	l.markConnected()

	if _, err := l.testLog.Write(data); err != nil {
		return false, fmt.Errorf("failed to copy results: %w", err)
	}

	return l.scanForCompletion(data), nil
}

// Cancel implements Listener.
func (l *FileListener) Cancel() {
	l.markCancelled()

	l.lifecycle.Lock()
	cancel := l.cancel
	l.lifecycle.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Close implements Listener.
func (l *FileListener) Close() error {
	var err error

	l.closeOnce.Do(func() {
		l.Cancel()

		l.lifecycle.Lock()
		group := l.group
		l.lifecycle.Unlock()

		if group != nil {
			err = group.Wait()
		}
	})

	return err
}
