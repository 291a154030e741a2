package adapter

import (
	"context"
	"errors"
	"strings"
	"sync"

	m "harness.dev/pkg/harness/internal/model"
	"harness.dev/pkg/harness/pkg"
)

// ErrListenerCancelled is returned by WaitConnected when the listener was cancelled before
// the test payload connected.
var ErrListenerCancelled = errors.New("listener cancelled")

// Listener is the host side endpoint a running test payload streams its results to.
//
// Initialize must be called before the port is embedded in launch arguments, and Start
// right after it. WaitConnected settles once the payload connects (or the listener fails or
// is cancelled); Completed is closed when the result stream ends normally.
type Listener interface {
	Kind() m.TransportKind
	// Initialize allocates the endpoint and returns the port (zero for file transport).
	Initialize() (int, error)
	Start(ctx context.Context)
	WaitConnected(ctx context.Context) error
	IsConnected() bool
	Completed() <-chan struct{}
	TestLog() pkg.FileLog
	// Cancel stops accepting or polling. It is idempotent.
	Cancel()
	// Close cancels and waits for the listener loop to exit. It is idempotent.
	Close() error
}

// listenerState holds the one-shot signals shared by every transport.
type listenerState struct {
	connected     chan struct{}
	connectOnce   sync.Once
	completed     chan struct{}
	completeOnce  sync.Once
	cancelled     chan struct{}
	cancelOnce    sync.Once
	mu            sync.Mutex
	failure       error
	testLog       pkg.FileLog
	markerPending strings.Builder
}

func (s *listenerState) init(testLog pkg.FileLog) {
	s.connected = make(chan struct{})
	s.completed = make(chan struct{})
	s.cancelled = make(chan struct{})
	s.testLog = testLog
}

func (s *listenerState) markConnected() {
	s.connectOnce.Do(func() { close(s.connected) })
}

func (s *listenerState) markCompleted() {
	s.completeOnce.Do(func() { close(s.completed) })
}

func (s *listenerState) fail(err error) {
	s.mu.Lock()
	if s.failure == nil {
		s.failure = err
	}
	s.mu.Unlock()

	s.markCancelled()
}

func (s *listenerState) markCancelled() {
	s.cancelOnce.Do(func() { close(s.cancelled) })
}

func (s *listenerState) isCancelled() bool {
	select {
	case <-s.cancelled:
		return true
	default:
		return false
	}
}

func (s *listenerState) failureErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.failure
}

// WaitConnected implements Listener.
func (s *listenerState) WaitConnected(ctx context.Context) error {
	select {
	case <-s.connected:
		return nil
	default:
	}

	select {
	case <-s.connected:
		return nil
	case <-s.cancelled:
		if err := s.failureErr(); err != nil {
			return err
		}

		return ErrListenerCancelled
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsConnected implements Listener.
func (s *listenerState) IsConnected() bool {
	select {
	case <-s.connected:
		return true
	default:
		return false
	}
}

// Completed implements Listener.
func (s *listenerState) Completed() <-chan struct{} {
	return s.completed
}

// TestLog implements Listener.
func (s *listenerState) TestLog() pkg.FileLog {
	return s.testLog
}

var completionMarkers = []string{"</assemblies>", "</test-run>", "</testsuites>"}

// IsCompletionLine reports whether a result stream line marks the end of the test run:
// a text summary ("Tests run: ...") or the end of an XML result document.
func IsCompletionLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "Tests run:") || hasXMLEnd(line)
}

func hasXMLEnd(text string) bool {
	for _, marker := range completionMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	return false
}

// scanForCompletion feeds result stream data through line splitting and reports whether a
// completion line was seen.
func (s *listenerState) scanForCompletion(data []byte) bool {
	s.markerPending.Write(data)
	text := s.markerPending.String()

	lastNewline := strings.LastIndexByte(text, '\n')
	if lastNewline < 0 {
		return hasXMLEnd(text)
	}

	complete, rest := text[:lastNewline], text[lastNewline+1:]
	s.markerPending.Reset()
	s.markerPending.WriteString(rest)

	for _, line := range strings.Split(complete, "\n") {
		if IsCompletionLine(line) {
			return true
		}
	}

	return hasXMLEnd(rest)
}
