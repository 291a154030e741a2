// Package controller renders device inventories and run outcomes for the terminal.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "harness.dev/pkg/harness/internal/model"
)

// Outcome is the final line of a command.
type Outcome struct {
	// Command names what ran, e.g. "apple test".
	Command string
	Code    m.ExitCode
	// Result is set for app runs.
	Result *m.RunResult
	// Manifest is the path of the artifact manifest, if one was written.
	Manifest string
}

// DeviceGroup is one category of an inventory listing.
type DeviceGroup struct {
	Title   string
	Devices []m.Device
}

// UI defines how commands report to the user.
// Implementations can use different output methods (plain text, styled text).
type UI interface {
	DisplaySimulators(ctx context.Context, groups []DeviceGroup) error
	DisplayDevices(ctx context.Context, devices []m.Device) error
	DisplayUDIDs(ctx context.Context, devices []m.Device) error
	DisplayOutcome(ctx context.Context, outcome Outcome) error
}

// NewUI returns the UI for cmd's output. Styling is only applied on a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
