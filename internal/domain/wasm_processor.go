package domain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	m "harness.dev/pkg/harness/internal/model"
	"harness.dev/pkg/harness/pkg"
)

var (
	resultXMLMarker = regexp.MustCompile(`STARTRESULTXML (\d+) (\S*) ENDRESULTXML`)
	wasmExit        = regexp.MustCompile(`WASM EXIT (-?\d+)`)
)

// consoleLevels maps console method tags to log levels.
var consoleLevels = map[string]slog.Level{
	"console.debug": slog.LevelDebug,
	"console.trace": slog.LevelDebug,
	"console.log":   slog.LevelInfo,
	"console.info":  slog.LevelInfo,
	"console.warn":  slog.LevelWarn,
	"console.error": slog.LevelError,
}

type consoleLine struct {
	text    string
	isError bool
}

// consoleRecord is a structured console message.
type consoleRecord struct {
	Method  string `json:"method"`
	Payload any    `json:"payload"`
}

// WasmMessageProcessor classifies console output of a WASM app. Lines are queued by Invoke
// and handled in order by a single consumer started with Start.
type WasmMessageProcessor struct {
	run         *RunContext
	console     pkg.FileLog
	resultsPath string
	patterns    []*regexp.Regexp
	// Symbolicate optionally rewrites lines before they are logged.
	Symbolicate func(line string) string

	mu       sync.Mutex
	queue    []consoleLine
	complete bool
	flushed  bool
	notify   chan struct{}
	done     chan struct{}
	runErr   error
	bypass   sync.Once

	resultsOnce sync.Once

	exitOnce   sync.Once
	exited     chan struct{}
	exitCode   int
	firstError string
}

// NewWasmMessageProcessor constructs a processor writing console output to console and
// decoded result documents to resultsPath. errorPatterns are regular expressions; the first
// line matching any of them is remembered.
func NewWasmMessageProcessor(run *RunContext, console pkg.FileLog, resultsPath string, errorPatterns []string) (*WasmMessageProcessor, error) {
	patterns := make([]*regexp.Regexp, 0, len(errorPatterns))

	for _, expr := range errorPatterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid error pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return &WasmMessageProcessor{
		run:         run,
		console:     console,
		resultsPath: resultsPath,
		patterns:    patterns,
		notify:      make(chan struct{}, 1),
		done:        make(chan struct{}),
		exited:      make(chan struct{}),
	}, nil
}

// Invoke queues a console line. After CompleteAndFlush lines are handled synchronously.
func (p *WasmMessageProcessor) Invoke(line string, isError bool) {
	p.mu.Lock()

	if p.flushed {
		p.mu.Unlock()
		p.bypass.Do(func() {
			slog.Warn("Console output arrived after flushing; logging it directly", "run", p.run.ID)
		})
		p.process(consoleLine{text: line, isError: isError})

		return
	}

	p.queue = append(p.queue, consoleLine{text: line, isError: isError})
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// Start runs the consumer until the queue is completed and drained or ctx is cancelled.
func (p *WasmMessageProcessor) Start(ctx context.Context) {
	go func() {
		defer close(p.done)

		err := p.consume(ctx)

		p.mu.Lock()
		p.runErr = err
		p.flushed = true
		dropped := len(p.queue)
		p.queue = nil
		p.mu.Unlock()

		if dropped > 0 {
			slog.Warn("Dropped queued console output", "run", p.run.ID, "lines", dropped, "error", err)
		}
	}()
}

func (p *WasmMessageProcessor) consume(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("console processing panicked: %v", r)
		}
	}()

	for {
		p.mu.Lock()
		batch := p.queue
		p.queue = nil

		// Later lines must take the synchronous path once the consumer is gone.
		if len(batch) == 0 && p.complete {
			p.flushed = true
			p.mu.Unlock()

			return nil
		}
		p.mu.Unlock()

		for _, line := range batch {
			p.process(line)
		}

		if len(batch) > 0 {
			continue
		}

		select {
		case <-p.notify:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// CompleteAndFlush stops accepting queued lines and waits up to timeout for the queue to
// drain.
func (p *WasmMessageProcessor) CompleteAndFlush(timeout time.Duration) m.ExitCode {
	p.mu.Lock()
	p.complete = true
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}

	timer := p.run.Clock.NewTimer(timeout)
	defer timer.Stop()

	status := m.ExitSuccess

	select {
	case <-p.done:
		p.mu.Lock()
		if p.runErr != nil {
			slog.Error("Failed to process console output", "run", p.run.ID, "error", p.runErr)
			status = m.ExitGeneralFailure
		}
		p.mu.Unlock()
	case <-timer.C():
		slog.Error("Timed out flushing console output", "run", p.run.ID, "timeout", timeout)
		status = m.ExitTimedOut
	}

	p.mu.Lock()
	p.flushed = true
	p.mu.Unlock()

	return status
}

// Exited is closed when the app printed its exit sentinel.
func (p *WasmMessageProcessor) Exited() <-chan struct{} {
	return p.exited
}

// ExitCode returns the code from the exit sentinel.
func (p *WasmMessageProcessor) ExitCode() (int, bool) {
	select {
	case <-p.exited:
		return p.exitCode, true
	default:
		return 0, false
	}
}

// FirstError returns the first line that matched an error pattern.
func (p *WasmMessageProcessor) FirstError() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.firstError
}

func (p *WasmMessageProcessor) process(line consoleLine) {
	text, method := line.text, ""

	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		var record consoleRecord
		if err := json.Unmarshal([]byte(text), &record); err == nil {
			method = record.Method
			text = payloadText(record.Payload, text)
		}
	}

	if match := resultXMLMarker.FindStringSubmatch(text); match != nil {
		p.writeResults(match[1], match[2])
		return
	}

	if strings.Contains(text, "WASM EXIT") {
		p.signalExit(text)
	}

	switch {
	case strings.HasPrefix(text, "[PASS]"), strings.HasPrefix(text, "[SKIP]"):
		p.emit(slog.LevelDebug, text)
	case strings.HasPrefix(text, "[FAIL]"):
		p.emit(slog.LevelError, text)
	default:
		p.matchErrorPatterns(text)

		if p.Symbolicate != nil {
			text = p.Symbolicate(text)
		}

		level := slog.LevelInfo
		if line.isError {
			level = slog.LevelError
		}

		if l, ok := consoleLevels[method]; ok {
			level = l
		}

		p.emit(level, text)
	}
}

func payloadText(payload any, raw string) string {
	switch v := payload.(type) {
	case nil:
		return raw
	case string:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return raw
		}

		return string(data)
	}
}

func (p *WasmMessageProcessor) emit(level slog.Level, text string) {
	if p.console != nil {
		if err := p.console.WriteLine("%s", text); err != nil {
			slog.Debug("Failed to write console log", "error", err)
		}
	}

	slog.Log(context.Background(), level, text, "run", p.run.ID, "source", "wasm")
}

func (p *WasmMessageProcessor) matchErrorPatterns(text string) {
	for _, re := range p.patterns {
		if !re.MatchString(text) {
			continue
		}

		p.mu.Lock()
		first := p.firstError == ""
		if first {
			p.firstError = text
		}
		p.mu.Unlock()

		if first {
			slog.Error("Console output matched an error pattern", "run", p.run.ID, "pattern", re.String(), "line", text)
		}

		return
	}
}

func (p *WasmMessageProcessor) signalExit(text string) {
	code := 0
	if match := wasmExit.FindStringSubmatch(text); match != nil {
		code, _ = strconv.Atoi(match[1])
	}

	fired := false

	p.exitOnce.Do(func() {
		p.exitCode = code
		fired = true
		close(p.exited)
	})

	if fired {
		slog.Info("App exited", "run", p.run.ID, "code", code)
	} else {
		slog.Debug("Ignoring repeated exit sentinel", "run", p.run.ID, "line", text)
	}
}

func (p *WasmMessageProcessor) writeResults(declared, encoded string) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		slog.Error("Failed to decode result document", "run", p.run.ID, "error", err)
		return
	}

	if err := os.WriteFile(p.resultsPath, data, 0o640); err != nil {
		slog.Error("Failed to write result document", "run", p.run.ID, "path", p.resultsPath, "error", err)
		return
	}

	if n, err := strconv.Atoi(declared); err != nil || n != len(data) {
		slog.Warn("Result document length mismatch", "run", p.run.ID, "declared", declared, "decoded", len(data))
	} else {
		slog.Info("Wrote result document", "run", p.run.ID, "path", p.resultsPath, "bytes", len(data))
	}

	p.resultsOnce.Do(func() { p.run.Logs.AddFile(p.resultsPath, "Test results") })
}
