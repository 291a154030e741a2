package domain

import (
	"fmt"

	m "harness.dev/pkg/harness/internal/model"
)

// LookupStatus tags the outcome of a device lookup.
type LookupStatus int

// Lookup outcomes.
const (
	LookupFound LookupStatus = iota
	LookupNotFound
	LookupFailed
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not found"
	default:
		return "failed"
	}
}

// DeviceLookup is the result of resolving a target to a device. NotFound is an expected
// outcome, distinct from Failed which carries the fault in Err.
type DeviceLookup struct {
	Status  LookupStatus
	Primary m.Device
	// Companion is only set for watch targets.
	Companion *m.Device
	Err       error
}

// Found returns a successful lookup.
func Found(primary m.Device, companion *m.Device) DeviceLookup {
	return DeviceLookup{Status: LookupFound, Primary: primary, Companion: companion}
}

// NotFound returns a lookup that matched nothing.
func NotFound(format string, args ...any) DeviceLookup {
	return DeviceLookup{Status: LookupNotFound, Err: fmt.Errorf(format, args...)}
}

// Failed returns a lookup that could not be carried out.
func Failed(err error) DeviceLookup {
	return DeviceLookup{Status: LookupFailed, Err: err}
}

// ExitCode maps a failed lookup to the CLI exit code.
func (l DeviceLookup) ExitCode(failure m.ExitCode) m.ExitCode {
	switch l.Status {
	case LookupFound:
		return m.ExitSuccess
	case LookupNotFound:
		return m.ExitDeviceNotFound
	default:
		return failure
	}
}
