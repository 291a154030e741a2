package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	m "harness.dev/pkg/harness/internal/model"
)

// ProcessSpec describes one external program invocation.
type ProcessSpec struct {
	Path string
	Args []string
	// Env is added on top of the current environment.
	Env map[string]string
	Dir string
	// Timeout is the hard ceiling for the invocation. Zero means no timeout.
	Timeout time.Duration
	Stdout  io.Writer
	// Stderr defaults to Stdout when nil.
	Stderr io.Writer
}

// ProcessManager runs external programs.
type ProcessManager interface {
	// Run starts the program and waits for it. Failing to start the program is returned as an
	// error; everything that happens after it started is described by the ExecutionResult.
	// When ctx is cancelled the process group is killed and the result has no exit code.
	Run(ctx context.Context, spec ProcessSpec) (m.ExecutionResult, error)
}

// LocalProcessManager runs programs on the host with os/exec.
type LocalProcessManager struct {
	waitDelay time.Duration
}

// NewLocalProcessManager constructs a LocalProcessManager.
func NewLocalProcessManager() *LocalProcessManager {
	return &LocalProcessManager{waitDelay: 5 * time.Second}
}

// Run implements ProcessManager.
func (p *LocalProcessManager) Run(ctx context.Context, spec ProcessSpec) (m.ExecutionResult, error) {
	var (
		runCtx context.Context
		cancel context.CancelFunc
	)

	if spec.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, spec.Timeout)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	cmd := exec.CommandContext(runCtx, spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = mergeEnv(os.Environ(), spec.Env)
	cmd.Stdout = orDiscard(spec.Stdout)
	cmd.Stderr = orDiscard(spec.Stderr)

	if spec.Stderr == nil {
		cmd.Stderr = cmd.Stdout
	}

	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = p.waitDelay

	result := m.ExecutionResult{
		Stdout: logPath(spec.Stdout),
		Stderr: logPath(spec.Stderr),
	}
	if spec.Stderr == nil {
		result.Stderr = result.Stdout
	}

	slog.Debug("Starting process", "path", spec.Path, "args", spec.Args, "timeout", spec.Timeout)

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to start process", "path", spec.Path, "error", err)
		return result, fmt.Errorf("failed to start %s: %w", spec.Path, err)
	}

	err := cmd.Wait()

	switch {
	case runCtx.Err() != nil:
		result.TimedOut = errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil
		slog.Warn("Process stopped before completion", "path", spec.Path, "pid", cmd.Process.Pid,
			"timed_out", result.TimedOut, "reason", runCtx.Err())
	case err == nil:
		result.ExitCode = m.IntPtr(0)
	default:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			slog.Error("Failed to wait for process", "path", spec.Path, "error", err)
			return result, fmt.Errorf("failed to wait for %s: %w", spec.Path, err)
		}

		if code := exitErr.ExitCode(); code >= 0 {
			result.ExitCode = m.IntPtr(code)
		}
	}

	slog.Debug("Process finished", "path", spec.Path, "exit_code", result.Code(-1), "timed_out", result.TimedOut)

	return result, nil
}

// KillProcessTree kills pid and all of its descendants, children first.
func KillProcessTree(pid int) error {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return fmt.Errorf("process %d: %w", pid, err)
	}

	return killTree(proc)
}

func killTree(proc *process.Process) error {
	var errs []error

	children, err := proc.Children()
	if err == nil {
		for _, child := range children {
			errs = append(errs, killTree(child))
		}
	}

	slog.Info("Killing process", "pid", proc.Pid)

	if err := proc.Kill(); err != nil {
		exists, existsErr := process.PidExists(proc.Pid)
		if existsErr != nil || exists {
			errs = append(errs, fmt.Errorf("failed to kill %d: %w", proc.Pid, err))
		}
	}

	return errors.Join(errs...)
}

func mergeEnv(base []string, extra map[string]string) []string {
	env := append([]string{}, base...)
	for _, k := range sortedKeys(extra) {
		env = append(env, k+"="+extra[k])
	}

	return env
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}

type pathed interface {
	Path() string
}

func logPath(w io.Writer) string {
	if p, ok := w.(pathed); ok {
		return p.Path()
	}

	return ""
}
