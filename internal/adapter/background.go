package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// BackgroundProcess is a launch helper invocation that runs until it is stopped, such as a
// device tunnel or a device log stream.
type BackgroundProcess struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}
	ready  chan struct{}
	once   sync.Once

	mu  sync.Mutex
	err error
}

// StartBackground runs the helper with args until Stop. When readyMarker is not empty,
// Ready is closed once a line containing it is printed; otherwise Ready is closed at once.
func StartBackground(ctx context.Context, ml *Mlaunch, name string, args []string, log io.Writer, readyMarker string) *BackgroundProcess {
	ctx, cancel := context.WithCancel(ctx)

	p := &BackgroundProcess{
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
		ready:  make(chan struct{}),
	}

	if readyMarker == "" {
		p.markReady()
	}

	watcher := NewLineWriter(func(line string) {
		if readyMarker != "" && strings.Contains(line, readyMarker) {
			p.markReady()
		}
	})
	out := io.MultiWriter(orDiscard(log), watcher)

	slog.Debug("Starting background process", "name", name, "args", args)

	go func() {
		defer close(p.done)

		result, err := ml.Run(ctx, args, 0, out, out)

		p.mu.Lock()
		defer p.mu.Unlock()

		switch {
		case err != nil:
			p.err = err
		case ctx.Err() == nil && !result.Succeeded():
			p.err = fmt.Errorf("%s exited with %d", name, result.Code(-1))
		}

		if p.err != nil {
			slog.Error("Background process stopped", "name", name, "error", p.err)
		}
	}()

	return p
}

func (p *BackgroundProcess) markReady() {
	p.once.Do(func() { close(p.ready) })
}

// Ready is closed once the process reported it is up.
func (p *BackgroundProcess) Ready() <-chan struct{} {
	return p.ready
}

// Done is closed when the process exited.
func (p *BackgroundProcess) Done() <-chan struct{} {
	return p.done
}

// Stop terminates the process and waits for it. It returns the failure, if any, the process
// reported before it was stopped.
func (p *BackgroundProcess) Stop() error {
	p.cancel()
	<-p.done

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}
