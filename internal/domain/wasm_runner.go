package domain

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"

	"harness.dev/pkg/harness/internal/adapter"
	m "harness.dev/pkg/harness/internal/model"
)

// WasmRunArgs describes a browser run of a WASM app.
type WasmRunArgs struct {
	// AppDir is served over HTTP; Page is loaded from it.
	AppDir string
	Page   string
	// Args are passed to the app as repeated "arg" query parameters.
	Args             []string
	ErrorPatterns    []string
	ExpectedExitCode int
}

// WasmBrowserRunner runs a WASM app in a headless browser and turns its console output into
// an exit code.
type WasmBrowserRunner struct {
	run     *RunContext
	browser adapter.Browser
}

// NewWasmBrowserRunner constructs a WasmBrowserRunner.
func NewWasmBrowserRunner(run *RunContext, browser adapter.Browser) *WasmBrowserRunner {
	return &WasmBrowserRunner{run: run, browser: browser}
}

// Run serves the app, drives the browser until the app exits or the run times out and
// resolves the exit code.
func (r *WasmBrowserRunner) Run(ctx context.Context, args WasmRunArgs) (m.ExitCode, error) {
	server, err := adapter.StartStaticServer(args.AppDir)
	if err != nil {
		slog.Error("Failed to serve app", "run", r.run.ID, "dir", args.AppDir, "error", err)
		return m.ExitGeneralFailure, fmt.Errorf("failed to serve %s: %w", args.AppDir, err)
	}

	defer func() {
		if err := server.Close(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("Failed to stop http server", "run", r.run.ID, "error", err)
		}
	}()

	console, err := r.run.Logs.Create("wasm-console.log", "Browser console")
	if err != nil {
		return m.ExitGeneralFailure, fmt.Errorf("failed to create console log: %w", err)
	}

	resultsPath := filepath.Join(r.run.Logs.Directory(), "testResults.xml")

	processor, err := NewWasmMessageProcessor(r.run, console, resultsPath, args.ErrorPatterns)
	if err != nil {
		return m.ExitInvalidArguments, err
	}

	processor.Start(ctx)

	browserCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The browser keeps running after the app exits.
	go func() {
		select {
		case <-processor.Exited():
			cancel()
		case <-browserCtx.Done():
		}
	}()

	target := pageURL(server.URL(), args.Page, args.Args)
	slog.Info("Running app in browser", "run", r.run.ID, "url", target)

	result, err := r.browser.Run(browserCtx, target, r.run.Config.Timeout, processor.Invoke)
	if err != nil {
		slog.Error("Failed to run browser", "run", r.run.ID, "error", err)
		processor.CompleteAndFlush(r.run.Config.FlushTimeout)

		return m.ExitGeneralFailure, fmt.Errorf("failed to run browser: %w", err)
	}

	flush := processor.CompleteAndFlush(r.run.Config.FlushTimeout)

	code, exited := processor.ExitCode()

	switch {
	case !exited && result.TimedOut:
		slog.Error("App did not exit in time", "run", r.run.ID, "timeout", r.run.Config.Timeout)
		return m.ExitTimedOut, nil
	case !exited:
		slog.Error("Browser exited without an app exit code", "run", r.run.ID, "browser_exit_code", result.Code(-1))
		return m.ExitReturnCodeNotSet, nil
	case flush != m.ExitSuccess:
		return flush, nil
	case processor.FirstError() != "":
		slog.Error("App output matched an error pattern", "run", r.run.ID, "line", processor.FirstError())
		return m.ExitGeneralFailure, nil
	case code != args.ExpectedExitCode:
		slog.Error("App exited with unexpected code", "run", r.run.ID, "code", code, "expected", args.ExpectedExitCode)
		return m.ExitTestsFailed, nil
	default:
		slog.Info("App exited with expected code", "run", r.run.ID, "code", code)
		return m.ExitSuccess, nil
	}
}

func pageURL(base, page string, args []string) string {
	if page == "" {
		page = "index.html"
	}

	u := base + page
	if len(args) == 0 {
		return u
	}

	query := url.Values{"arg": args}

	return u + "?" + query.Encode()
}
