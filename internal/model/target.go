// Package model defines the data structures shared by device discovery, app runs and reporting.
package model

import (
	"fmt"
	"slices"
	"strings"
)

// Platform identifies the kind of target a test payload runs on.
type Platform string

const (
	// PlatformIOSSimulator64 is a 64-bit iOS simulator.
	PlatformIOSSimulator64 Platform = "ios-simulator-64"
	// PlatformIOSSimulator32 is a 32-bit iOS simulator.
	PlatformIOSSimulator32 Platform = "ios-simulator-32"
	// PlatformTvOSSimulator is a tvOS simulator.
	PlatformTvOSSimulator Platform = "tvos-simulator"
	// PlatformWatchOSSimulator is a watchOS simulator paired with an iOS companion.
	PlatformWatchOSSimulator Platform = "watchos-simulator"
	// PlatformXrOSSimulator is a visionOS (headset) simulator.
	PlatformXrOSSimulator Platform = "xros-simulator"
	// PlatformIOSDevice is physical iOS hardware.
	PlatformIOSDevice Platform = "ios-device"
	// PlatformTvOSDevice is physical tvOS hardware.
	PlatformTvOSDevice Platform = "tvos-device"
	// PlatformWatchOSDevice is physical watchOS hardware.
	PlatformWatchOSDevice Platform = "watchos-device"
)

// OSFamily groups platforms by operating system.
type OSFamily string

// Known OS families.
const (
	FamilyIOS     OSFamily = "iOS"
	FamilyTvOS    OSFamily = "tvOS"
	FamilyWatchOS OSFamily = "watchOS"
	FamilyXrOS    OSFamily = "xrOS"
)

var platforms = map[Platform]OSFamily{
	PlatformIOSSimulator64:   FamilyIOS,
	PlatformIOSSimulator32:   FamilyIOS,
	PlatformTvOSSimulator:    FamilyTvOS,
	PlatformWatchOSSimulator: FamilyWatchOS,
	PlatformXrOSSimulator:    FamilyXrOS,
	PlatformIOSDevice:        FamilyIOS,
	PlatformTvOSDevice:       FamilyTvOS,
	PlatformWatchOSDevice:    FamilyWatchOS,
}

// Platforms returns every known platform in name order.
func Platforms() []Platform {
	list := make([]Platform, 0, len(platforms))
	for p := range platforms {
		list = append(list, p)
	}

	slices.Sort(list)

	return list
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	_, ok := platforms[p]
	return ok
}

// Family returns the OS family of the platform.
func (p Platform) Family() OSFamily {
	return platforms[p]
}

// IsSimulator reports whether the platform is a simulator rather than hardware.
func (p Platform) IsSimulator() bool {
	return strings.HasSuffix(string(p), "-simulator") || strings.Contains(string(p), "-simulator-")
}

// IsWatch reports whether the platform needs a companion phone.
func (p Platform) IsWatch() bool {
	return p.Family() == FamilyWatchOS
}

// TargetDescriptor identifies what kind of device or simulator a run needs.
type TargetDescriptor struct {
	Platform Platform
	// OSVersion is empty when any version is acceptable.
	OSVersion string
	// MinVersion selects the lowest available runtime instead of the highest.
	MinVersion bool
}

func (t TargetDescriptor) String() string {
	if t.OSVersion == "" {
		return string(t.Platform)
	}

	return string(t.Platform) + "_" + t.OSVersion
}

// ParseTarget parses "<platform>[_<version>]", e.g. "ios-simulator-64_14.2".
// The version, when present, must be a dotted numeric version.
func ParseTarget(value string) (TargetDescriptor, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return TargetDescriptor{}, fmt.Errorf("empty target")
	}

	name, version, _ := strings.Cut(value, "_")

	target := TargetDescriptor{Platform: Platform(name)}
	if !target.Platform.Valid() {
		return TargetDescriptor{}, fmt.Errorf("unknown target platform %q", name)
	}

	if version != "" {
		if _, err := ParseVersion(version); err != nil {
			return TargetDescriptor{}, fmt.Errorf("target %q: %w", value, err)
		}

		target.OSVersion = version
	}

	return target, nil
}
