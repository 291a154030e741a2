package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/electricbubble/gadb"

	m "harness.dev/pkg/harness/internal/model"
)

// InstrumentArgs describes an `am instrument` run.
type InstrumentArgs struct {
	PackageName     string
	Instrumentation string
	Extras          map[string]string
	Timeout         time.Duration
}

// Component returns the instrumentation component name passed to `am instrument`.
func (a InstrumentArgs) Component() string {
	if a.Instrumentation == "" {
		return a.PackageName
	}

	return a.PackageName + "/" + a.Instrumentation
}

// AdbClient talks to Android devices and emulators.
type AdbClient interface {
	Devices(ctx context.Context) ([]m.Device, error)
	Shell(ctx context.Context, serial, command string) (string, error)
	Pull(ctx context.Context, serial, remotePath, localPath string) error
	Install(ctx context.Context, serial, apkPath string, timeout time.Duration, log io.Writer) (m.ExecutionResult, error)
	Uninstall(ctx context.Context, serial, packageName string, log io.Writer) (m.ExecutionResult, error)
	Instrument(ctx context.Context, serial string, args InstrumentArgs, log io.Writer) (m.ExecutionResult, error)
	ClearLogcat(ctx context.Context, serial string) error
	DumpLogcat(ctx context.Context, serial string, w io.Writer) error
}

// LocalAdbClient uses the adb server protocol (gadb) for queries and file transfer and the
// adb executable for long-running operations that need timeouts and output capture.
type LocalAdbClient struct {
	adbPath   string
	processes ProcessManager
}

// NewLocalAdbClient constructs a LocalAdbClient. adbPath defaults to "adb" on PATH.
func NewLocalAdbClient(adbPath string, processes ProcessManager) *LocalAdbClient {
	if adbPath == "" {
		adbPath = "adb"
	}

	return &LocalAdbClient{adbPath: adbPath, processes: processes}
}

// Devices enumerates attached devices and reads their ABI and API level.
func (a *LocalAdbClient) Devices(ctx context.Context) ([]m.Device, error) {
	client, err := gadb.NewClient()
	if err != nil {
		slog.Error("Failed to connect to adb server", "error", err)
		return nil, fmt.Errorf("failed to connect to adb server: %w", err)
	}

	list, err := client.DeviceList()
	if err != nil {
		slog.Error("Failed to list adb devices", "error", err)
		return nil, fmt.Errorf("failed to list adb devices: %w", err)
	}

	devices := make([]m.Device, 0, len(list))

	for _, d := range list {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		device := m.Device{
			Name:  d.Serial(),
			UDID:  d.Serial(),
			Kind:  m.KindAndroid,
			State: m.DeviceStateBooted,
		}

		if model, err := d.Model(); err == nil {
			device.Name = model
		} else {
			slog.Warn("Failed to read device model", "serial", d.Serial(), "error", err)
		}

		if product, err := d.Product(); err == nil {
			device.DeviceType = product
		} else {
			slog.Warn("Failed to read device product", "serial", d.Serial(), "error", err)
		}

		if abi, err := d.RunShellCommand("getprop", "ro.product.cpu.abi"); err == nil {
			device.Architecture = strings.TrimSpace(abi)
		} else {
			slog.Warn("Failed to read device ABI", "serial", d.Serial(), "error", err)
		}

		if sdk, err := d.RunShellCommand("getprop", "ro.build.version.sdk"); err == nil {
			device.APILevel, _ = strconv.Atoi(strings.TrimSpace(sdk))
		}

		if release, err := d.RunShellCommand("getprop", "ro.build.version.release"); err == nil {
			device.OSVersion = strings.TrimSpace(release)
		}

		devices = append(devices, device)
	}

	slog.Debug("Enumerated adb devices", "count", len(devices))

	return devices, nil
}

func (a *LocalAdbClient) device(serial string) (gadb.Device, error) {
	client, err := gadb.NewClient()
	if err != nil {
		return gadb.Device{}, fmt.Errorf("failed to connect to adb server: %w", err)
	}

	list, err := client.DeviceList()
	if err != nil {
		return gadb.Device{}, fmt.Errorf("failed to list adb devices: %w", err)
	}

	for _, d := range list {
		if d.Serial() == serial {
			return d, nil
		}
	}

	return gadb.Device{}, fmt.Errorf("adb device %q not attached", serial)
}

// Shell runs a short shell command on the device and returns its output.
func (a *LocalAdbClient) Shell(ctx context.Context, serial, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	d, err := a.device(serial)
	if err != nil {
		return "", err
	}

	out, err := d.RunShellCommand(command)
	if err != nil {
		slog.Error("Failed to run adb shell command", "serial", serial, "command", command, "error", err)
		return "", fmt.Errorf("adb shell %q: %w", command, err)
	}

	return out, nil
}

// Pull copies a file off the device.
func (a *LocalAdbClient) Pull(ctx context.Context, serial, remotePath, localPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d, err := a.device(serial)
	if err != nil {
		return err
	}

	file, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", localPath, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close pulled file", "path", localPath, "error", err)
		}
	}()

	if err := d.Pull(remotePath, file); err != nil {
		slog.Error("Failed to pull file", "serial", serial, "remote", remotePath, "error", err)
		return fmt.Errorf("failed to pull %s: %w", remotePath, err)
	}

	slog.Debug("Pulled file", "serial", serial, "remote", remotePath, "local", localPath)

	return nil
}

func (a *LocalAdbClient) run(ctx context.Context, serial string, timeout time.Duration, log io.Writer, args ...string) (m.ExecutionResult, error) {
	argv := append([]string{"-s", serial}, args...)

	return a.processes.Run(ctx, ProcessSpec{Path: a.adbPath, Args: argv, Timeout: timeout, Stdout: log})
}

// Install installs (or reinstalls) an apk, granting runtime permissions.
func (a *LocalAdbClient) Install(ctx context.Context, serial, apkPath string, timeout time.Duration, log io.Writer) (m.ExecutionResult, error) {
	return a.run(ctx, serial, timeout, log, "install", "-r", "-g", apkPath)
}

// Uninstall removes a package.
func (a *LocalAdbClient) Uninstall(ctx context.Context, serial, packageName string, log io.Writer) (m.ExecutionResult, error) {
	return a.run(ctx, serial, 0, log, "uninstall", packageName)
}

// Instrument runs `am instrument -w` and writes the raw instrumentation output to log.
func (a *LocalAdbClient) Instrument(ctx context.Context, serial string, args InstrumentArgs, log io.Writer) (m.ExecutionResult, error) {
	argv := []string{"shell", "am", "instrument"}
	for _, k := range sortedKeys(args.Extras) {
		argv = append(argv, "-e", k, args.Extras[k])
	}

	argv = append(argv, "-w", args.Component())

	return a.run(ctx, serial, args.Timeout, log, argv...)
}

// ClearLogcat empties the device log buffers.
func (a *LocalAdbClient) ClearLogcat(ctx context.Context, serial string) error {
	var out bytes.Buffer

	result, err := a.run(ctx, serial, time.Minute, &out, "logcat", "-c")
	if err != nil {
		return err
	}

	if !result.Succeeded() {
		return fmt.Errorf("adb logcat -c failed: %s", strings.TrimSpace(out.String()))
	}

	return nil
}

// DumpLogcat writes the current device log to w.
func (a *LocalAdbClient) DumpLogcat(ctx context.Context, serial string, w io.Writer) error {
	result, err := a.run(ctx, serial, 5*time.Minute, w, "logcat", "-d")
	if err != nil {
		return err
	}

	if !result.Succeeded() {
		return fmt.Errorf("adb logcat -d exited with %d", result.Code(-1))
	}

	return nil
}
