package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// SimulatorControl performs lifecycle operations on simulators.
type SimulatorControl interface {
	Boot(ctx context.Context, udid string) error
	Shutdown(ctx context.Context, udid string) error
	Erase(ctx context.Context, udid string) error
	Create(ctx context.Context, name, deviceType, runtime string) (string, error)
	// KillEverything stops every simulator app and the CoreSimulator service.
	KillEverything(ctx context.Context) error
	// AddRuntime installs a downloaded simulator runtime image.
	AddRuntime(ctx context.Context, imagePath string) error
}

// Simctl implements SimulatorControl with `xcrun simctl`.
type Simctl struct {
	processes ProcessManager
	timeout   time.Duration
}

// NewSimctl constructs a Simctl.
func NewSimctl(processes ProcessManager) *Simctl {
	return &Simctl{processes: processes, timeout: 2 * time.Minute}
}

func (s *Simctl) simctl(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer

	result, err := s.processes.Run(ctx, ProcessSpec{
		Path:    "xcrun",
		Args:    append([]string{"simctl"}, args...),
		Timeout: s.timeout,
		Stdout:  &out,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(out.String())

	if result.TimedOut {
		return text, fmt.Errorf("simctl %s timed out", args[0])
	}

	if !result.Succeeded() {
		return text, fmt.Errorf("simctl %s exited with %d: %s", args[0], result.Code(-1), text)
	}

	return text, nil
}

// Boot boots the simulator. Booting an already booted simulator is not an error.
func (s *Simctl) Boot(ctx context.Context, udid string) error {
	out, err := s.simctl(ctx, "boot", udid)
	if err != nil && !strings.Contains(out, "current state: Booted") {
		slog.Error("Failed to boot simulator", "udid", udid, "error", err)
		return err
	}

	slog.Info("Simulator booted", "udid", udid)

	return nil
}

// Shutdown shuts the simulator down. Shutting down a stopped simulator is not an error.
func (s *Simctl) Shutdown(ctx context.Context, udid string) error {
	out, err := s.simctl(ctx, "shutdown", udid)
	if err != nil && !strings.Contains(out, "current state: Shutdown") {
		slog.Error("Failed to shut down simulator", "udid", udid, "error", err)
		return err
	}

	return nil
}

// Erase shuts the simulator down and resets its content and settings.
func (s *Simctl) Erase(ctx context.Context, udid string) error {
	if err := s.Shutdown(ctx, udid); err != nil {
		return err
	}

	if _, err := s.simctl(ctx, "erase", udid); err != nil {
		slog.Error("Failed to erase simulator", "udid", udid, "error", err)
		return err
	}

	return nil
}

// Create creates a simulator and returns its UDID.
func (s *Simctl) Create(ctx context.Context, name, deviceType, runtime string) (string, error) {
	out, err := s.simctl(ctx, "create", name, deviceType, runtime)
	if err != nil {
		slog.Error("Failed to create simulator", "name", name, "device_type", deviceType, "runtime", runtime, "error", err)
		return "", err
	}

	lines := strings.Split(out, "\n")
	udid := strings.TrimSpace(lines[len(lines)-1])
	slog.Info("Created simulator", "name", name, "udid", udid)

	return udid, nil
}

var simulatorProcesses = []string{
	"iPhone Simulator",
	"iOS Simulator",
	"Simulator",
	"Simulator (Watch)",
	"com.apple.CoreSimulator.CoreSimulatorService",
	"ibtoold",
}

// KillEverything implements SimulatorControl. Missing processes are not an error.
func (s *Simctl) KillEverything(ctx context.Context) error {
	var out bytes.Buffer

	if _, err := s.processes.Run(ctx, ProcessSpec{
		Path:    "launchctl",
		Args:    []string{"remove", "com.apple.CoreSimulator.CoreSimulatorService"},
		Timeout: 10 * time.Second,
		Stdout:  &out,
	}); err != nil {
		return err
	}

	result, err := s.processes.Run(ctx, ProcessSpec{
		Path:    "killall",
		Args:    append([]string{"-9"}, simulatorProcesses...),
		Timeout: 10 * time.Second,
		Stdout:  &out,
	})
	if err != nil {
		return err
	}

	// killall exits 1 when nothing matched.
	if code := result.Code(-1); code != 0 && code != 1 {
		return fmt.Errorf("killall exited with %d", code)
	}

	return nil
}

// AddRuntime implements SimulatorControl.
func (s *Simctl) AddRuntime(ctx context.Context, imagePath string) error {
	_, err := s.simctl(ctx, "runtime", "add", imagePath)
	return err
}
