package model

import "strings"

// DeviceState is the power/boot state of a device.
type DeviceState string

// Known device states. Anything the tools report that is not listed maps to DeviceStateUnknown.
const (
	DeviceStateShutdown DeviceState = "Shutdown"
	DeviceStateBooting  DeviceState = "Booting"
	DeviceStateBooted   DeviceState = "Booted"
	DeviceStateUnknown  DeviceState = "Unknown"
)

// ParseDeviceState accepts the names and the numeric codes used by the simulator tooling
// (1 = Shutdown, 2 = Booting, 3 = Booted).
func ParseDeviceState(value string) DeviceState {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "shutdown", "1":
		return DeviceStateShutdown
	case "booting", "2":
		return DeviceStateBooting
	case "booted", "3":
		return DeviceStateBooted
	default:
		return DeviceStateUnknown
	}
}

// DeviceKind tells simulators, Apple hardware and Android targets apart.
type DeviceKind string

// Device kinds.
const (
	KindSimulator DeviceKind = "simulator"
	KindHardware  DeviceKind = "hardware"
	KindAndroid   DeviceKind = "android"
)

// Device is a handle to a simulator, an Apple device or an Android device/emulator.
// Devices come from a point-in-time inventory load and are not live-updated.
type Device struct {
	Name string
	// UDID is the simulator/device UDID or the adb serial.
	UDID string
	Kind DeviceKind
	// Runtime is the simulator runtime identifier (empty for hardware).
	Runtime string
	// OSVersion is the OS version reported for the device or derived from its runtime.
	OSVersion string
	// DeviceType is the simulator device type identifier, the hardware device class or the
	// Android product model.
	DeviceType string
	State      DeviceState
	// CompanionUDID links a watch to its paired phone (and the phone back to the watch).
	CompanionUDID string
	Architecture  string
	// APILevel is only set for Android devices.
	APILevel int
	// DataPath and LogPath are simulator directories on the host.
	DataPath string
	LogPath  string
	// USB is true for hardware connected by cable rather than over the network.
	USB bool
}

// IsSimulator reports whether the device is a simulator.
func (d Device) IsSimulator() bool {
	return d.Kind == KindSimulator
}

func (d Device) String() string {
	if d.OSVersion == "" {
		return d.Name + " (" + d.UDID + ")"
	}

	return d.Name + " " + d.OSVersion + " (" + d.UDID + ")"
}
