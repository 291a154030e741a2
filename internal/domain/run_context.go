// Package domain holds the orchestration of test runs: device selection, listeners, crash
// capture, verdict resolution and streamed log processing.
package domain

import (
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/google/uuid"

	"harness.dev/pkg/harness/internal/adapter"
)

// TransportPolicy is the configured listener transport choice.
type TransportPolicy string

// Transport policies.
const (
	TransportAuto TransportPolicy = "auto"
	TransportTCP  TransportPolicy = "tcp"
	TransportFile TransportPolicy = "file"
)

// CleanupPolicy says what to do with a simulator after a run.
type CleanupPolicy int

// Cleanup policies.
const (
	CleanupNone CleanupPolicy = iota
	// CleanupReset erases and reboots the simulators used by the run.
	CleanupReset
	// CleanupKillAll stops every simulator process.
	CleanupKillAll
)

// RunConfig carries the timing and policy knobs of a single run.
type RunConfig struct {
	// Timeout bounds the whole test execution.
	Timeout time.Duration
	// LaunchTimeout bounds how long the payload may take to connect to the listener.
	LaunchTimeout time.Duration
	// CrashPollInterval is the crash snapshot polling period.
	CrashPollInterval time.Duration
	// CrashGrace bounds how long crash capture keeps looking for new reports at the end.
	CrashGrace time.Duration
	// LogPumpInterval is the file transport polling period.
	LogPumpInterval time.Duration
	Transport       TransportPolicy
	Cleanup         CleanupPolicy
	// XMLOutput asks the payload for an XML result document instead of a text summary.
	XMLOutput bool
	// XMLFormat names the result XML flavour requested from the payload.
	XMLFormat string
	// FlushTimeout bounds draining of streamed console output.
	FlushTimeout time.Duration
	// ResultDrainTimeout bounds how long a finished run waits for the listener to receive
	// the rest of the result stream.
	ResultDrainTimeout time.Duration
}

// DefaultRunConfig returns the defaults used when nothing is configured.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Timeout:            15 * time.Minute,
		LaunchTimeout:      5 * time.Minute,
		CrashPollInterval:  time.Second,
		CrashGrace:         5 * time.Second,
		LogPumpInterval:    100 * time.Millisecond,
		Transport:          TransportAuto,
		XMLFormat:          "xUnit",
		FlushTimeout:       2 * time.Minute,
		ResultDrainTimeout: 5 * time.Second,
	}
}

// RunContext is the state owned by one run. Nothing in it is shared across runs.
type RunContext struct {
	ID     string
	Logs   adapter.Logs
	Clock  clock.Clock
	Config RunConfig
}

// NewRunContext creates a RunContext with a fresh run id. A nil clock means the real one.
func NewRunContext(logs adapter.Logs, clk clock.Clock, cfg RunConfig) *RunContext {
	if clk == nil {
		clk = clock.NewClock()
	}

	return &RunContext{
		ID:     uuid.NewString(),
		Logs:   logs,
		Clock:  clk,
		Config: cfg,
	}
}
