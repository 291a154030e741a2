package domain

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"harness.dev/pkg/harness/internal/adapter"
	m "harness.dev/pkg/harness/internal/model"
	"harness.dev/pkg/harness/pkg"
)

// ListenerRequest describes the run a listener is created for.
type ListenerRequest struct {
	Mode      m.RunMode
	Simulator bool
	// Tunnel is set for device runs that reach the host through a TCP tunnel.
	Tunnel bool
}

// ListenerFactory creates the result listener of a run.
type ListenerFactory interface {
	Create(run *RunContext, testLog pkg.FileLog, req ListenerRequest) (adapter.Listener, error)
}

type listenerFactory struct{}

// NewListenerFactory returns the factory that picks the transport from the run's
// TransportPolicy.
func NewListenerFactory() ListenerFactory {
	return listenerFactory{}
}

// chooseTransport: a tunnel always needs TCP. In auto mode watchOS simulators, which cannot
// be relied on to open sockets to the host, write to a file and everything else uses TCP.
func chooseTransport(policy TransportPolicy, req ListenerRequest) m.TransportKind {
	if req.Tunnel {
		return m.TransportTCP
	}

	switch policy {
	case TransportTCP:
		return m.TransportTCP
	case TransportFile:
		return m.TransportFile
	}

	if req.Simulator && req.Mode == m.RunModeWatchOS {
		return m.TransportFile
	}

	return m.TransportTCP
}

func (listenerFactory) Create(run *RunContext, testLog pkg.FileLog, req ListenerRequest) (adapter.Listener, error) {
	kind := chooseTransport(run.Config.Transport, req)

	switch kind {
	case m.TransportTCP:
		opts := adapter.TCPListenerOptions{
			Tunnel: req.Tunnel,
			Clock:  run.Clock,
		}
		if req.Simulator {
			opts.Address = "127.0.0.1"
		}

		return adapter.NewTCPListener(testLog, opts), nil
	case m.TransportFile:
		path := filepath.Join(run.Logs.Directory(), "test-results-"+uuid.NewString()+".log")
		return adapter.NewFileListener(path, testLog, run.Clock, run.Config.LogPumpInterval), nil
	default:
		return nil, fmt.Errorf("unsupported transport %q", kind)
	}
}
