package model

import "strings"

// ExecutionResult is what a finished external process invocation produced.
type ExecutionResult struct {
	// ExitCode is nil when the process never reported one (killed, timed out, cancelled).
	ExitCode *int
	TimedOut bool
	// Stdout and Stderr are the paths of the logs the output was captured to.
	Stdout string
	Stderr string
}

// Succeeded reports whether the process exited with code zero and did not time out.
func (r ExecutionResult) Succeeded() bool {
	return !r.TimedOut && r.ExitCode != nil && *r.ExitCode == 0
}

// Code returns the exit code or fallback when it is absent.
func (r ExecutionResult) Code(fallback int) int {
	if r.ExitCode == nil {
		return fallback
	}

	return *r.ExitCode
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// TestVerdict classifies the outcome of a run. Values are bit flags so that the composite
// groups can be tested with a mask.
type TestVerdict uint16

const (
	// VerdictNotStarted is the zero value.
	VerdictNotStarted TestVerdict = 0
	VerdictLaunching  TestVerdict = 1 << iota
	VerdictRunning
	VerdictSucceeded
	VerdictFailed
	VerdictCrashed
	VerdictTimedOut
	VerdictHarnessException
	VerdictLaunchFailure
	VerdictDeviceNotFound
)

const (
	// VerdictInProgress groups the states before a run is decided.
	VerdictInProgress = VerdictNotStarted | VerdictLaunching | VerdictRunning
	// VerdictFailure groups every unsuccessful outcome.
	VerdictFailure = VerdictFailed | VerdictCrashed | VerdictTimedOut | VerdictHarnessException |
		VerdictLaunchFailure | VerdictDeviceNotFound
	// VerdictFinished groups every terminal outcome; failures are finished too.
	VerdictFinished = VerdictSucceeded | VerdictFailure
)

var verdictNames = map[TestVerdict]string{
	VerdictNotStarted:       "NotStarted",
	VerdictLaunching:        "Launching",
	VerdictRunning:          "Running",
	VerdictSucceeded:        "Succeeded",
	VerdictFailed:           "Failed",
	VerdictCrashed:          "Crashed",
	VerdictTimedOut:         "TimedOut",
	VerdictHarnessException: "HarnessException",
	VerdictLaunchFailure:    "LaunchFailure",
	VerdictDeviceNotFound:   "DeviceNotFound",
}

func (v TestVerdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}

	return "Unknown"
}

// IsInProgress reports whether the run is not decided yet.
func (v TestVerdict) IsInProgress() bool {
	return v == VerdictNotStarted || v&VerdictInProgress != 0
}

// IsFailure reports whether v is an unsuccessful outcome.
func (v TestVerdict) IsFailure() bool {
	return v&VerdictFailure != 0
}

// IsFinished reports whether v is terminal.
func (v TestVerdict) IsFinished() bool {
	return v&VerdictFinished != 0
}

// RunResult is the single final classification of a run plus a human readable message.
type RunResult struct {
	Verdict TestVerdict
	Message string
}

// ExitCode maps the verdict to the process exit code reported by the CLI.
func (r RunResult) ExitCode() ExitCode {
	switch r.Verdict {
	case VerdictSucceeded:
		return ExitSuccess
	case VerdictFailed:
		return ExitTestsFailed
	case VerdictCrashed:
		return ExitAppCrash
	case VerdictTimedOut:
		return ExitTimedOut
	case VerdictLaunchFailure:
		return ExitAppLaunchFailure
	case VerdictDeviceNotFound:
		return ExitDeviceNotFound
	default:
		return ExitGeneralFailure
	}
}

func (r RunResult) String() string {
	if strings.TrimSpace(r.Message) == "" {
		return r.Verdict.String()
	}

	return r.Verdict.String() + ": " + r.Message
}
