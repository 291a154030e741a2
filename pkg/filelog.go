// Package pkg provides utilities shared by the harness commands.
package pkg

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileLog is an append-only text log backed by a file. Writers may be concurrent; the
// content can be read back at any time, including while it is still being written.
type FileLog interface {
	io.Writer
	Path() string
	Description() string
	WriteLine(format string, args ...any) error
	Len() uint64
	Lines() ([]string, error)
	Range(fn func(index uint64, line string) error) error
	NewReader() (io.ReadCloser, error)
	Close() error
}

type fileLogImpl struct {
	path        string
	description string
	timestamp   bool
	file        *os.File
	mu          sync.Mutex
	length      uint64
	closed      bool
}

// FileLogOption configures a FileLog.
type FileLogOption func(*fileLogImpl)

// WithTimestamp prefixes every WriteLine with the current time.
func WithTimestamp() FileLogOption {
	return func(f *fileLogImpl) {
		f.timestamp = true
	}
}

// WithDescription attaches a human readable description, used by artifact manifests.
func WithDescription(description string) FileLogOption {
	return func(f *fileLogImpl) {
		f.description = description
	}
}

// NewFileLog creates (or truncates) the file at path.
func NewFileLog(path string, opts ...FileLogOption) (FileLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create log directory", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		slog.Error("failed to create log file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	f := &fileLogImpl{path: path, file: file}
	for _, opt := range opts {
		opt(f)
	}

	slog.Debug("created file log", "path", path)

	return f, nil
}

// Write implements io.Writer. Writes after Close are dropped.
func (f *fileLogImpl) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return len(p), nil
	}

	n, err := f.file.Write(p)
	if err != nil {
		slog.Error("failed to write log", "path", f.path, "error", err)
		return n, fmt.Errorf("failed to write log: %w", err)
	}

	f.length += uint64(strings.Count(string(p[:n]), "\n"))

	return n, nil
}

// WriteLine implements FileLog.
func (f *fileLogImpl) WriteLine(format string, args ...any) error {
	line := fmt.Sprintf(format, args...)
	if f.timestamp {
		line = time.Now().Format("15:04:05.0000000") + " " + line
	}

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	_, err := f.Write([]byte(line))

	return err
}

// Path implements FileLog.
func (f *fileLogImpl) Path() string {
	return f.path
}

// Description implements FileLog.
func (f *fileLogImpl) Description() string {
	return f.description
}

// Len returns the number of complete lines written so far.
func (f *fileLogImpl) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Lines implements FileLog.
func (f *fileLogImpl) Lines() ([]string, error) {
	var lines []string

	err := f.Range(func(_ uint64, line string) error {
		lines = append(lines, line)
		return nil
	})

	return lines, err
}

// Range implements FileLog.
func (f *fileLogImpl) Range(fn func(index uint64, line string) error) error {
	reader, err := f.NewReader()
	if err != nil {
		return err
	}

	defer func() {
		if err := reader.Close(); err != nil {
			slog.Error("failed to close log reader", "path", f.path, "error", err)
		}
	}()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var i uint64

	for scanner.Scan() {
		if err := fn(i, scanner.Text()); err != nil {
			slog.Warn("range callback error", "path", f.path, "index", i, "error", err)
			return err
		}

		i++
	}

	if err := scanner.Err(); err != nil {
		slog.Error("failed to read log", "path", f.path, "error", err)
		return fmt.Errorf("failed to read log: %w", err)
	}

	return nil
}

// NewReader opens an independent reader positioned at the start of the log.
func (f *fileLogImpl) NewReader() (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.closed {
		if err := f.file.Sync(); err != nil {
			slog.Debug("failed to sync log before read", "path", f.path, "error", err)
		}
	}

	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open log for reading", "path", f.path, "error", err)
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	return file, nil
}

// Close implements FileLog. Closing twice is a no-op.
func (f *fileLogImpl) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed file log", "path", f.path, "lines", f.length)

	return nil
}
