package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	m "harness.dev/pkg/harness/internal/model"
)

// CrashSource enumerates crash reports and makes them available on the host.
type CrashSource interface {
	List(ctx context.Context) (m.CrashSnapshot, error)
	// Fetch makes the report available on the host, in dir when it has to be copied, and
	// returns its path.
	Fetch(ctx context.Context, id, dir string) (string, error)
	// Remote reports whether fetched reports come off a device and need symbolication.
	Remote() bool
}

var crashExtensions = []string{".crash", ".ips"}

// HostCrashSource lists crash reports written by simulators to a host directory.
type HostCrashSource struct {
	Dir string
}

// DefaultHostCrashDir is where the host keeps diagnostic reports.
func DefaultHostCrashDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("Library", "Logs", "DiagnosticReports")
	}

	return filepath.Join(home, "Library", "Logs", "DiagnosticReports")
}

// List implements CrashSource. A missing directory is an empty snapshot.
func (s *HostCrashSource) List(ctx context.Context) (m.CrashSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return m.NewCrashSnapshot(), nil
	}

	if err != nil {
		slog.Error("Failed to list crash reports", "dir", s.Dir, "error", err)
		return nil, fmt.Errorf("failed to list crash reports: %w", err)
	}

	var ids []string

	for _, entry := range entries {
		if entry.IsDir() || !hasCrashExtension(entry.Name()) {
			continue
		}

		ids = append(ids, filepath.Join(s.Dir, entry.Name()))
	}

	return m.NewCrashSnapshot(ids...), nil
}

func hasCrashExtension(name string) bool {
	for _, ext := range crashExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// Fetch implements CrashSource. Host reports are used in place.
func (s *HostCrashSource) Fetch(_ context.Context, id, _ string) (string, error) {
	if _, err := os.Stat(id); err != nil {
		return "", fmt.Errorf("crash report %s: %w", id, err)
	}

	return id, nil
}

// Remote implements CrashSource.
func (s *HostCrashSource) Remote() bool {
	return false
}

// DeviceCrashSource lists and downloads crash reports from a device through the launch helper.
type DeviceCrashSource struct {
	Mlaunch    *Mlaunch
	DeviceName string
	Timeout    time.Duration
	// ScratchDir holds the temporary listing files.
	ScratchDir string
	Log        io.Writer
}

// List implements CrashSource. The helper writes one report name per line to a scratch file.
func (s *DeviceCrashSource) List(ctx context.Context) (m.CrashSnapshot, error) {
	scratch := filepath.Join(s.scratchDir(), "crash-list-"+uuid.NewString()+".txt")

	defer func() {
		if err := os.Remove(scratch); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Debug("Failed to remove crash listing", "path", scratch, "error", err)
		}
	}()

	result, err := s.Mlaunch.Run(ctx, []string{"--list-crash-reports=" + scratch, "--devname", s.DeviceName},
		s.timeout(), s.Log, s.Log)
	if err != nil {
		return nil, err
	}

	if !result.Succeeded() {
		slog.Error("Failed to list device crash reports", "device", s.DeviceName, "exit_code", result.Code(-1), "timed_out", result.TimedOut)
		return nil, fmt.Errorf("failed to list crash reports on %s", s.DeviceName)
	}

	file, err := os.Open(scratch)
	if err != nil {
		return nil, fmt.Errorf("failed to read crash listing: %w", err)
	}
	defer file.Close()

	var ids []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		ids = append(ids, strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read crash listing: %w", err)
	}

	return m.NewCrashSnapshot(ids...), nil
}

// Fetch implements CrashSource.
func (s *DeviceCrashSource) Fetch(ctx context.Context, id, dir string) (string, error) {
	dest := filepath.Join(dir, filepath.Base(id))

	result, err := s.Mlaunch.Run(ctx, []string{
		"--download-crash-report=" + id,
		"--download-crash-report-to=" + dest,
		"--devname", s.DeviceName,
	}, s.timeout(), s.Log, s.Log)
	if err != nil {
		return "", err
	}

	if !result.Succeeded() {
		return "", fmt.Errorf("failed to download crash report %s (exit code %d)", id, result.Code(-1))
	}

	return dest, nil
}

// Remote implements CrashSource.
func (s *DeviceCrashSource) Remote() bool {
	return true
}

func (s *DeviceCrashSource) timeout() time.Duration {
	if s.Timeout <= 0 {
		return time.Minute
	}

	return s.Timeout
}

func (s *DeviceCrashSource) scratchDir() string {
	if s.ScratchDir == "" {
		return os.TempDir()
	}

	return s.ScratchDir
}
