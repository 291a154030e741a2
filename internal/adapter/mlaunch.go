package adapter

import (
	"context"
	"io"
	"path/filepath"
	"time"

	m "harness.dev/pkg/harness/internal/model"
)

// Mlaunch invokes the native launch helper used for simulator and device runs.
type Mlaunch struct {
	Path      string
	XcodeRoot string
	Processes ProcessManager
}

// NewMlaunch constructs an Mlaunch.
func NewMlaunch(path, xcodeRoot string, processes ProcessManager) *Mlaunch {
	if path == "" {
		path = "mlaunch"
	}

	return &Mlaunch{Path: path, XcodeRoot: xcodeRoot, Processes: processes}
}

// Run runs the helper with args. The Xcode selection is always passed as --sdkroot.
func (ml *Mlaunch) Run(ctx context.Context, args []string, timeout time.Duration, stdout, stderr io.Writer) (m.ExecutionResult, error) {
	argv := make([]string, 0, len(args)+2)
	if ml.XcodeRoot != "" {
		argv = append(argv, "--sdkroot", ml.XcodeRoot)
	}

	argv = append(argv, args...)

	spec := ProcessSpec{
		Path:    ml.Path,
		Args:    argv,
		Timeout: timeout,
		Stdout:  stdout,
		Stderr:  stderr,
	}
	if ml.XcodeRoot != "" {
		spec.Env = map[string]string{"DEVELOPER_DIR": filepath.Join(ml.XcodeRoot, "Contents", "Developer")}
	}

	return ml.Processes.Run(ctx, spec)
}
