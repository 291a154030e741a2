package adapter

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	m "harness.dev/pkg/harness/internal/model"
)

// ConsoleFunc receives one console line from the browser; isError marks error level output.
type ConsoleFunc func(line string, isError bool)

// Browser runs a headless browser against a URL and streams its console output.
type Browser interface {
	Run(ctx context.Context, url string, timeout time.Duration, onConsole ConsoleFunc) (m.ExecutionResult, error)
}

// ChromeBrowser drives a Chromium based browser in headless mode with console logging
// routed to stderr.
type ChromeBrowser struct {
	Path      string
	Args      []string
	Processes ProcessManager
	// Log receives the raw browser output.
	Log io.Writer
}

// NewChromeBrowser constructs a ChromeBrowser.
func NewChromeBrowser(path string, processes ProcessManager, log io.Writer) *ChromeBrowser {
	if path == "" {
		path = "google-chrome"
	}

	return &ChromeBrowser{Path: path, Processes: processes, Log: log}
}

var chromeConsole = regexp.MustCompile(`:(INFO|WARNING|ERROR|VERBOSE\d*):CONSOLE\(\d+\)\] "(.*)", source: `)

// ParseConsoleLine extracts the console message from a browser log line.
func ParseConsoleLine(raw string) (string, bool, bool) {
	match := chromeConsole.FindStringSubmatch(raw)
	if match == nil {
		return "", false, false
	}

	msg := match[2]
	if unquoted, err := strconv.Unquote(`"` + msg + `"`); err == nil {
		msg = unquoted
	}

	return msg, match[1] == "ERROR", true
}

// Run implements Browser.
func (b *ChromeBrowser) Run(ctx context.Context, url string, timeout time.Duration, onConsole ConsoleFunc) (m.ExecutionResult, error) {
	args := []string{
		"--headless=new",
		"--disable-gpu",
		"--no-sandbox",
		"--no-first-run",
		"--enable-logging=stderr",
		"--v=0",
	}
	args = append(args, b.Args...)
	args = append(args, url)

	lines := NewLineWriter(func(raw string) {
		if msg, isError, ok := ParseConsoleLine(raw); ok {
			onConsole(msg, isError)
		}
	})
	defer lines.Flush()

	stderr := io.MultiWriter(orDiscard(b.Log), lines)

	slog.Info("Starting browser", "path", b.Path, "url", url)

	return b.Processes.Run(ctx, ProcessSpec{
		Path:    b.Path,
		Args:    args,
		Timeout: timeout,
		Stdout:  orDiscard(b.Log),
		Stderr:  stderr,
	})
}
