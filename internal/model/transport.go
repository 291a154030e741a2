package model

// TransportKind is how a running test payload streams its results back to the host.
type TransportKind string

// Transport kinds.
const (
	TransportTCP  TransportKind = "tcp"
	TransportFile TransportKind = "file"
)

// RunMode tells the listener factory what kind of target is being run.
type RunMode int

// Run modes.
const (
	RunModeIOS RunMode = iota
	RunModeTvOS
	RunModeWatchOS
	RunModeMacCatalyst
)
