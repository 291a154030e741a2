package adapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// TunnelBore keeps a TCP tunnel to a device open for the duration of a run.
type TunnelBore struct {
	mlaunch *Mlaunch

	mu   sync.Mutex
	proc *BackgroundProcess
}

// NewTunnelBore constructs a TunnelBore.
func NewTunnelBore(mlaunch *Mlaunch) *TunnelBore {
	return &TunnelBore{mlaunch: mlaunch}
}

// Open starts forwarding port on the host to the same port on the device. It returns at
// once; Ready is closed when the helper reports the tunnel is up.
func (t *TunnelBore) Open(ctx context.Context, deviceName string, port int, log io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.proc != nil {
		return errors.New("tunnel already open")
	}

	p := strconv.Itoa(port)
	args := []string{"--tcp-tunnel=" + p + ":" + p, "--devname", deviceName}

	slog.Info("Opening device tunnel", "device", deviceName, "port", port)
	t.proc = StartBackground(ctx, t.mlaunch, "tcp tunnel", args, log, "Tcp tunnel started")

	return nil
}

// Ready is closed once the tunnel accepts connections. It is nil before Open.
func (t *TunnelBore) Ready() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.proc == nil {
		return nil
	}

	return t.proc.Ready()
}

// Close stops the tunnel. Closing an unopened tunnel is a no-op.
func (t *TunnelBore) Close() error {
	t.mu.Lock()
	proc := t.proc
	t.mu.Unlock()

	if proc == nil {
		return nil
	}

	return proc.Stop()
}
