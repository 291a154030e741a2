package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogCapture collects a device or simulator system log for the duration of a run.
type LogCapture interface {
	Stop() error
}

// StartDeviceLogCapture streams the system log of a device into log until stopped.
func StartDeviceLogCapture(ctx context.Context, ml *Mlaunch, deviceName string, log io.Writer) LogCapture {
	return StartBackground(ctx, ml, "device log", []string{"--logdev", "--devname", deviceName}, log, "")
}

// FileLogCapture copies what is appended to a host log file between start and Stop.
type FileLogCapture struct {
	path   string
	offset int64
	out    io.Writer
}

// StartFileLogCapture remembers the current size of path. A file that does not exist yet is
// captured from its beginning.
func StartFileLogCapture(path string, out io.Writer) *FileLogCapture {
	c := &FileLogCapture{path: path, out: out}

	if info, err := os.Stat(path); err == nil {
		c.offset = info.Size()
	}

	return c
}

// Stop copies the new content.
func (c *FileLogCapture) Stop() error {
	file, err := os.Open(c.path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Captured log does not exist", "path", c.path)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.path, err)
	}
	defer file.Close()

	if _, err := file.Seek(c.offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek %s: %w", c.path, err)
	}

	if _, err := io.Copy(c.out, file); err != nil {
		return fmt.Errorf("failed to copy %s: %w", c.path, err)
	}

	return nil
}
