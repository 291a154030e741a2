package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"harness.dev/pkg/harness/pkg"
)

// Symbolicator turns a raw device crash report into one with readable stack frames.
type Symbolicator interface {
	// Symbolicate returns the path of the report to publish. When symbolication is not
	// possible the raw report path is returned together with the reason.
	Symbolicate(ctx context.Context, report string) (string, error)
}

var symbolicatorLocations = []string{
	"Contents/SharedFrameworks/DTDeviceKitBase.framework/Versions/A/Resources/symbolicatecrash",
	"Contents/SharedFrameworks/DVTFoundation.framework/Versions/A/Resources/symbolicatecrash",
}

// XcodeSymbolicator runs the symbolicatecrash script that ships with Xcode.
type XcodeSymbolicator struct {
	XcodeRoot string
	Processes ProcessManager
	Timeout   time.Duration

	unset sync.Once
}

// ErrSymbolicatorNotFound is returned when Xcode carries no symbolicatecrash at the known paths.
var ErrSymbolicatorNotFound = errors.New("symbolicatecrash not found")

// ErrXcodeRootUnset is returned when no Xcode installation was configured.
var ErrXcodeRootUnset = errors.New("xcode root not configured")

// Locate returns the first existing symbolicatecrash path.
func (s *XcodeSymbolicator) Locate() (string, error) {
	if s.XcodeRoot == "" {
		return "", ErrXcodeRootUnset
	}

	for _, rel := range symbolicatorLocations {
		path := filepath.Join(s.XcodeRoot, rel)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", ErrSymbolicatorNotFound
}

// Symbolicate implements Symbolicator.
func (s *XcodeSymbolicator) Symbolicate(ctx context.Context, report string) (string, error) {
	tool, err := s.Locate()
	if errors.Is(err, ErrXcodeRootUnset) {
		s.unset.Do(func() {
			slog.Warn("No Xcode root configured; crash reports are published unsymbolicated")
		})

		return report, err
	}

	if err != nil {
		slog.Warn("Cannot symbolicate crash report", "report", report, "reason", err)
		return report, err
	}

	dest := strings.TrimSuffix(report, filepath.Ext(report)) + ".symbolicated.log"

	out, err := pkg.NewFileLog(dest, pkg.WithDescription("Symbolicated crash report"))
	if err != nil {
		return report, err
	}
	defer out.Close()

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	result, err := s.Processes.Run(ctx, ProcessSpec{
		Path:    tool,
		Args:    []string{report},
		Env:     map[string]string{"DEVELOPER_DIR": filepath.Join(s.XcodeRoot, "Contents", "Developer")},
		Timeout: timeout,
		Stdout:  out,
	})
	if err != nil {
		slog.Warn("Failed to run symbolicatecrash", "report", report, "error", err)
		return report, err
	}

	if !result.Succeeded() {
		slog.Warn("Symbolication failed, using the raw report", "report", report, "exit_code", result.Code(-1))
		return report, fmt.Errorf("symbolicatecrash exited with %d", result.Code(-1))
	}

	return dest, nil
}
