package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"golang.org/x/sync/errgroup"

	m "harness.dev/pkg/harness/internal/model"
	"harness.dev/pkg/harness/pkg"
)

// TCPListenerOptions configures a TCPListener.
type TCPListenerOptions struct {
	// Address is the interface to bind. Empty binds every interface so devices on the
	// network can reach the host.
	Address string
	// Tunnel makes the listener connect to the local end of a device tunnel instead of
	// accepting a connection from the payload.
	Tunnel bool
	// RetryInterval is the delay between connection attempts in tunnel mode.
	RetryInterval time.Duration
	Clock         clock.Clock
}

// TCPListener receives the result stream over a single TCP connection.
type TCPListener struct {
	listenerState

	opts TCPListenerOptions

	lifecycle sync.Mutex
	port      int
	ln        net.Listener
	conn      net.Conn
	cancel    context.CancelFunc
	group     *errgroup.Group
	closeOnce sync.Once
	closeErr  error
}

// NewTCPListener constructs a TCPListener writing the received stream to testLog.
func NewTCPListener(testLog pkg.FileLog, opts TCPListenerOptions) *TCPListener {
	if opts.Clock == nil {
		opts.Clock = clock.NewClock()
	}

	if opts.RetryInterval <= 0 {
		opts.RetryInterval = time.Second
	}

	l := &TCPListener{opts: opts}
	l.init(testLog)

	return l
}

// Kind implements Listener.
func (l *TCPListener) Kind() m.TransportKind {
	return m.TransportTCP
}

// Initialize binds the port. In tunnel mode the port is only reserved: the socket is
// released again so the tunnel can bind it.
func (l *TCPListener) Initialize() (int, error) {
	l.lifecycle.Lock()
	defer l.lifecycle.Unlock()

	if l.port != 0 {
		return l.port, nil
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(l.opts.Address, "0"))
	if err != nil {
		slog.Error("Failed to bind listener", "address", l.opts.Address, "error", err)
		return 0, fmt.Errorf("failed to bind listener: %w", err)
	}

	addr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		_ = ln.Close()
		return 0, fmt.Errorf("unexpected listener address %v", ln.Addr())
	}

	l.port = addr.Port

	if l.opts.Tunnel {
		if err := ln.Close(); err != nil {
			return 0, fmt.Errorf("failed to release tunnel port: %w", err)
		}
	} else {
		l.ln = ln
	}

	slog.Debug("Listener initialized", "port", l.port, "tunnel", l.opts.Tunnel)

	return l.port, nil
}

// Start implements Listener. It never blocks; bind and accept failures surface through
// WaitConnected.
func (l *TCPListener) Start(ctx context.Context) {
	l.lifecycle.Lock()
	defer l.lifecycle.Unlock()

	if l.group != nil {
		return
	}

	ctx, l.cancel = context.WithCancel(ctx)
	l.group, ctx = errgroup.WithContext(ctx)

	if l.isCancelled() {
		return
	}

	if l.port == 0 || (!l.opts.Tunnel && l.ln == nil) {
		l.fail(errors.New("listener started before it was initialized"))
		return
	}

	ln := l.ln
	loopDone := make(chan struct{})

	l.group.Go(func() error {
		defer close(loopDone)

		if l.opts.Tunnel {
			return l.dialLoop(ctx)
		}

		return l.acceptLoop(ctx, ln)
	})

	l.group.Go(func() error {
		select {
		case <-ctx.Done():
		case <-loopDone:
		}

		l.closeSockets()

		return nil
	})
}

func (l *TCPListener) acceptLoop(ctx context.Context, ln net.Listener) error {
	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil || l.isCancelled() {
			return nil
		}

		slog.Error("Failed to accept connection", "port", l.port, "error", err)
		l.fail(fmt.Errorf("failed to accept connection: %w", err))

		return err
	}

	return l.receive(ctx, conn)
}

func (l *TCPListener) dialLoop(ctx context.Context) error {
	target := net.JoinHostPort("127.0.0.1", strconv.Itoa(l.port))

	for {
		var dialer net.Dialer

		conn, err := dialer.DialContext(ctx, "tcp", target)
		if err == nil {
			return l.receive(ctx, conn)
		}

		slog.Debug("Tunnel not ready yet", "target", target, "error", err)

		select {
		case <-ctx.Done():
			return nil
		case <-l.opts.Clock.After(l.opts.RetryInterval):
		}
	}
}

func (l *TCPListener) receive(ctx context.Context, conn net.Conn) error {
	l.lifecycle.Lock()
	l.conn = conn
	l.lifecycle.Unlock()

	slog.Info("Test payload connected", "remote", conn.RemoteAddr().String())
	l.markConnected()

	buf := make([]byte, 32*1024)
	received := 0

	for {
		n, err := conn.Read(buf)
		if n > 0 {
			received += n
			if _, werr := l.testLog.Write(buf[:n]); werr != nil {
				slog.Error("Failed to write test log", "error", werr)
			}
		}

		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) || received > 0 {
			slog.Debug("Result stream ended", "bytes", received, "error", err)
			l.markCompleted()

			return nil
		}

		if ctx.Err() != nil || l.isCancelled() {
			return nil
		}

		slog.Warn("Result connection failed before any data arrived", "error", err)

		return nil
	}
}

func (l *TCPListener) closeSockets() {
	l.lifecycle.Lock()
	defer l.lifecycle.Unlock()

	if l.ln != nil {
		_ = l.ln.Close()
		l.ln = nil
	}

	if l.conn != nil {
		_ = l.conn.Close()
		l.conn = nil
	}
}

// Cancel implements Listener.
func (l *TCPListener) Cancel() {
	l.markCancelled()

	l.lifecycle.Lock()
	cancel := l.cancel
	l.lifecycle.Unlock()

	if cancel != nil {
		cancel()
	}

	l.closeSockets()
}

// Close implements Listener.
func (l *TCPListener) Close() error {
	l.closeOnce.Do(func() {
		l.Cancel()

		l.lifecycle.Lock()
		group := l.group
		l.lifecycle.Unlock()

		if group != nil {
			if err := group.Wait(); err != nil && !errors.Is(err, net.ErrClosed) {
				l.closeErr = err
			}
		}
	})

	return l.closeErr
}
