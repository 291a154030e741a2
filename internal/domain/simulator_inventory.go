package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"harness.dev/pkg/harness/internal/adapter"
	m "harness.dev/pkg/harness/internal/model"
)

const listingTimeout = 2 * time.Minute

// SimRuntime is an installed simulator runtime.
type SimRuntime struct {
	Name       string `xml:"Name"`
	Identifier string `xml:"Identifier"`
}

// SimDeviceType is a simulator hardware model.
type SimDeviceType struct {
	Name          string `xml:"Name"`
	Identifier    string `xml:"Identifier"`
	ProductFamily string `xml:"ProductFamilyId"`
	Supports64Bit bool   `xml:"Supports64Bits"`
}

// SimDevicePair links a watch simulator (gizmo) to its phone (companion).
type SimDevicePair struct {
	UDID      string `xml:"UDID,attr"`
	Companion string `xml:"Companion"`
	Gizmo     string `xml:"Gizmo"`
}

type simDeviceXML struct {
	UDID       string `xml:"UDID,attr"`
	Name       string `xml:"Name,attr"`
	Runtime    string `xml:"SimRuntime"`
	DeviceType string `xml:"SimDeviceType"`
	DataPath   string `xml:"DataPath"`
	LogPath    string `xml:"LogPath"`
	State      string `xml:"State"`
}

type simListingXML struct {
	Runtimes    []SimRuntime    `xml:"Simulator>SupportedRuntimes>SimRuntime"`
	DeviceTypes []SimDeviceType `xml:"Simulator>SupportedDeviceTypes>SimDeviceType"`
	Devices     []simDeviceXML  `xml:"Simulator>AvailableDevices>SimDevice"`
	Pairs       []SimDevicePair `xml:"Simulator>AvailableDevicePairs>SimDevicePair"`
}

// FindOptions tune FindSimulators.
type FindOptions struct {
	// RetryCount is how many extra attempts are made when loading or creating fails.
	RetryCount int
	// CreateIfMissing creates a simulator when none matches.
	CreateIfMissing bool
	// WaitForBoot boots the selected simulators before returning.
	WaitForBoot bool
}

// SimulatorInventory knows the simulators available on the host.
type SimulatorInventory interface {
	// LoadDevices refreshes the snapshot. Without force an already loaded snapshot is kept.
	LoadDevices(ctx context.Context, log io.Writer, force bool) error
	Simulators() []m.Device
	Runtimes() []SimRuntime
	DeviceTypes() []SimDeviceType
	Pairs() []SimDevicePair
	FindSimulators(ctx context.Context, target m.TargetDescriptor, log io.Writer, opts FindOptions) DeviceLookup
}

type simulatorInventory struct {
	mlaunch    *adapter.Mlaunch
	control    adapter.SimulatorControl
	scratchDir string

	mu      sync.RWMutex
	loaded  bool
	listing simListingXML
	devices []m.Device
}

// NewSimulatorInventory constructs a SimulatorInventory.
func NewSimulatorInventory(mlaunch *adapter.Mlaunch, control adapter.SimulatorControl, scratchDir string) SimulatorInventory {
	return &simulatorInventory{mlaunch: mlaunch, control: control, scratchDir: scratchDir}
}

func (s *simulatorInventory) LoadDevices(ctx context.Context, log io.Writer, force bool) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if loaded && !force {
		return nil
	}

	var listing simListingXML
	if err := loadToolXML(ctx, s.mlaunch, "--listsim", s.scratchDir, log, &listing); err != nil {
		return err
	}

	devices := make([]m.Device, 0, len(listing.Devices))
	for _, d := range listing.Devices {
		devices = append(devices, simulatorFromXML(d, listing.Pairs))
	}

	s.mu.Lock()
	s.listing = listing
	s.devices = devices
	s.loaded = true
	s.mu.Unlock()

	slog.Info("Loaded simulators", "devices", len(devices), "runtimes", len(listing.Runtimes), "pairs", len(listing.Pairs))

	return nil
}

func simulatorFromXML(d simDeviceXML, pairs []SimDevicePair) m.Device {
	device := m.Device{
		Name:       d.Name,
		UDID:       d.UDID,
		Kind:       m.KindSimulator,
		Runtime:    d.Runtime,
		OSVersion:  RuntimeVersion(d.Runtime),
		DeviceType: d.DeviceType,
		State:      m.ParseDeviceState(d.State),
		DataPath:   d.DataPath,
		LogPath:    d.LogPath,
	}

	for _, p := range pairs {
		switch d.UDID {
		case p.Gizmo:
			device.CompanionUDID = p.Companion
		case p.Companion:
			device.CompanionUDID = p.Gizmo
		}
	}

	return device
}

func (s *simulatorInventory) Simulators() []m.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]m.Device(nil), s.devices...)
}

func (s *simulatorInventory) Runtimes() []SimRuntime {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]SimRuntime(nil), s.listing.Runtimes...)
}

func (s *simulatorInventory) DeviceTypes() []SimDeviceType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]SimDeviceType(nil), s.listing.DeviceTypes...)
}

func (s *simulatorInventory) Pairs() []SimDevicePair {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]SimDevicePair(nil), s.listing.Pairs...)
}

const (
	runtimePrefix    = "com.apple.CoreSimulator.SimRuntime."
	deviceTypePrefix = "com.apple.CoreSimulator.SimDeviceType."
)

var runtimeFamilies = map[m.OSFamily]string{
	m.FamilyIOS:     runtimePrefix + "iOS-",
	m.FamilyTvOS:    runtimePrefix + "tvOS-",
	m.FamilyWatchOS: runtimePrefix + "watchOS-",
	m.FamilyXrOS:    runtimePrefix + "xrOS-",
}

type deviceTypeKey struct {
	platform   m.Platform
	minVersion bool
}

var simulatorDeviceTypes = map[deviceTypeKey]string{
	{m.PlatformIOSSimulator64, false}:   deviceTypePrefix + "iPhone-X",
	{m.PlatformIOSSimulator64, true}:    deviceTypePrefix + "iPhone-6s",
	{m.PlatformIOSSimulator32, false}:   deviceTypePrefix + "iPhone-5",
	{m.PlatformIOSSimulator32, true}:    deviceTypePrefix + "iPhone-5",
	{m.PlatformTvOSSimulator, false}:    deviceTypePrefix + "Apple-TV-1080p",
	{m.PlatformTvOSSimulator, true}:     deviceTypePrefix + "Apple-TV-1080p",
	{m.PlatformWatchOSSimulator, false}: deviceTypePrefix + "Apple-Watch-Series-3-38mm",
	{m.PlatformWatchOSSimulator, true}:  deviceTypePrefix + "Apple-Watch-38mm",
	{m.PlatformXrOSSimulator, false}:    deviceTypePrefix + "Apple-Vision-Pro",
	{m.PlatformXrOSSimulator, true}:     deviceTypePrefix + "Apple-Vision-Pro",
}

// companionDeviceTypes is the phone model paired with a watch simulator.
var companionDeviceTypes = map[bool]string{
	false: deviceTypePrefix + "iPhone-X",
	true:  deviceTypePrefix + "iPhone-6s",
}

// SimulatorDeviceType returns the device type identifier used for a target.
func SimulatorDeviceType(target m.TargetDescriptor) (string, bool) {
	t, ok := simulatorDeviceTypes[deviceTypeKey{target.Platform, target.MinVersion}]
	return t, ok
}

// RuntimeVersion extracts the dotted version from a runtime identifier
// ("com.apple.CoreSimulator.SimRuntime.iOS-14-2" gives "14.2").
func RuntimeVersion(runtime string) string {
	idx := strings.LastIndexByte(runtime, '.')
	name := runtime[idx+1:]

	dash := strings.IndexByte(name, '-')
	if dash < 0 {
		return ""
	}

	return strings.ReplaceAll(name[dash+1:], "-", ".")
}

// RuntimeIdentifier builds the runtime identifier for a family and dotted version.
func RuntimeIdentifier(family m.OSFamily, version string) string {
	return runtimeFamilies[family] + strings.ReplaceAll(version, ".", "-")
}

// SelectSimulator picks one simulator among duplicates: Booted, then Booting, then
// Shutdown, then the first in discovery order.
func SelectSimulator(candidates []m.Device) (m.Device, bool) {
	if len(candidates) == 0 {
		return m.Device{}, false
	}

	for _, state := range []m.DeviceState{m.DeviceStateBooted, m.DeviceStateBooting, m.DeviceStateShutdown} {
		for _, d := range candidates {
			if d.State == state {
				return d, true
			}
		}
	}

	return candidates[0], true
}

func (s *simulatorInventory) FindSimulators(ctx context.Context, target m.TargetDescriptor, log io.Writer, opts FindOptions) DeviceLookup {
	if !target.Platform.IsSimulator() {
		return Failed(fmt.Errorf("%s is not a simulator target", target))
	}

	if target.OSVersion != "" {
		if _, err := m.ParseVersion(target.OSVersion); err != nil {
			return Failed(err)
		}
	}

	var lookup DeviceLookup

	for attempt := 0; attempt <= opts.RetryCount; attempt++ {
		if err := ctx.Err(); err != nil {
			return Failed(err)
		}

		lookup = s.findOnce(ctx, target, log, opts, attempt > 0)
		if lookup.Status != LookupFailed {
			break
		}

		slog.Warn("Simulator lookup failed", "target", target.String(), "attempt", attempt+1, "error", lookup.Err)
	}

	if lookup.Status != LookupFound || !opts.WaitForBoot {
		return lookup
	}

	return s.boot(ctx, lookup)
}

func (s *simulatorInventory) findOnce(ctx context.Context, target m.TargetDescriptor, log io.Writer, opts FindOptions, refresh bool) DeviceLookup {
	if err := s.LoadDevices(ctx, log, refresh); err != nil {
		return Failed(err)
	}

	deviceType, ok := SimulatorDeviceType(target)
	if !ok {
		return Failed(fmt.Errorf("no simulator device type for %s", target))
	}

	primary := s.resolve(ctx, target.Platform.Family(), deviceType, target, log, opts)
	if primary.Status != LookupFound || !target.Platform.IsWatch() {
		return primary
	}

	companionTarget := m.TargetDescriptor{Platform: m.PlatformIOSSimulator64, MinVersion: target.MinVersion}
	companion := s.resolveCompanion(ctx, primary.Primary, companionTarget, log, opts)

	if companion.Status != LookupFound {
		return companion
	}

	device := companion.Primary
	primary.Primary.CompanionUDID = device.UDID

	return Found(primary.Primary, &device)
}

func (s *simulatorInventory) resolveCompanion(ctx context.Context, watch m.Device, target m.TargetDescriptor, log io.Writer, opts FindOptions) DeviceLookup {
	if watch.CompanionUDID != "" {
		for _, d := range s.Simulators() {
			if d.UDID == watch.CompanionUDID {
				return Found(d, nil)
			}
		}
	}

	return s.resolve(ctx, m.FamilyIOS, companionDeviceTypes[target.MinVersion], target, log, opts)
}

func (s *simulatorInventory) resolve(ctx context.Context, family m.OSFamily, deviceType string, target m.TargetDescriptor, log io.Writer, opts FindOptions) DeviceLookup {
	candidates, err := s.matching(family, deviceType, target)
	if err != nil {
		return Failed(err)
	}

	if device, ok := SelectSimulator(candidates); ok {
		return Found(device, nil)
	}

	if !opts.CreateIfMissing {
		return NotFound("no %s simulator (%s) available", target, deviceType)
	}

	runtime, ok := s.runtimeFor(family, target)
	if !ok {
		return NotFound("no %s runtime installed for %s", family, target)
	}

	name := strings.TrimPrefix(deviceType, deviceTypePrefix) + " " + RuntimeVersion(runtime)

	udid, err := s.control.Create(ctx, name, deviceType, runtime)
	if err != nil {
		return Failed(fmt.Errorf("failed to create simulator: %w", err))
	}

	if err := s.LoadDevices(ctx, log, true); err != nil {
		return Failed(err)
	}

	for _, d := range s.Simulators() {
		if d.UDID == udid {
			return Found(d, nil)
		}
	}

	return Failed(fmt.Errorf("created simulator %s is not listed", udid))
}

// matching returns the simulators of deviceType for the target's family, restricted to one
// runtime version: the requested one, or the highest (lowest with MinVersion) available.
func (s *simulatorInventory) matching(family m.OSFamily, deviceType string, target m.TargetDescriptor) ([]m.Device, error) {
	prefix := runtimeFamilies[family]

	var want m.Version

	if target.OSVersion != "" {
		v, err := m.ParseVersion(target.OSVersion)
		if err != nil {
			return nil, err
		}

		want = v
	}

	byVersion := map[string][]m.Device{}

	var versions []m.Version

	for _, d := range s.Simulators() {
		if d.DeviceType != deviceType || !strings.HasPrefix(d.Runtime, prefix) {
			continue
		}

		v, err := m.ParseVersion(d.OSVersion)
		if err != nil {
			slog.Debug("Skipping simulator with unparsable runtime", "udid", d.UDID, "runtime", d.Runtime)
			continue
		}

		if want != nil && !v.Equal(want) {
			continue
		}

		key := v.Canonical()
		if _, seen := byVersion[key]; !seen {
			versions = append(versions, v)
		}

		byVersion[key] = append(byVersion[key], d)
	}

	if len(versions) == 0 {
		return nil, nil
	}

	sort.SliceStable(versions, func(i, j int) bool { return versions[i].Compare(versions[j]) < 0 })

	pick := versions[len(versions)-1]
	if target.MinVersion {
		pick = versions[0]
	}

	return byVersion[pick.Canonical()], nil
}

func (s *simulatorInventory) runtimeFor(family m.OSFamily, target m.TargetDescriptor) (string, bool) {
	prefix := runtimeFamilies[family]
	runtimes := s.Runtimes()

	if target.OSVersion != "" {
		exact := RuntimeIdentifier(family, target.OSVersion)
		for _, r := range runtimes {
			if r.Identifier == exact {
				return exact, true
			}
		}
	}

	var (
		best        string
		bestVersion m.Version
	)

	for _, r := range runtimes {
		if !strings.HasPrefix(r.Identifier, prefix) {
			continue
		}

		v, err := m.ParseVersion(RuntimeVersion(r.Identifier))
		if err != nil {
			continue
		}

		if target.OSVersion != "" {
			if want, err := m.ParseVersion(target.OSVersion); err == nil && v.Equal(want) {
				return r.Identifier, true
			}

			continue
		}

		better := bestVersion == nil || v.Compare(bestVersion) > 0
		if target.MinVersion {
			better = bestVersion == nil || v.Compare(bestVersion) < 0
		}

		if better {
			best, bestVersion = r.Identifier, v
		}
	}

	return best, best != ""
}

func (s *simulatorInventory) boot(ctx context.Context, lookup DeviceLookup) DeviceLookup {
	devices := []*m.Device{&lookup.Primary}
	if lookup.Companion != nil {
		devices = append(devices, lookup.Companion)
	}

	for _, d := range devices {
		if d.State == m.DeviceStateBooted {
			continue
		}

		if err := s.control.Boot(ctx, d.UDID); err != nil {
			return Failed(fmt.Errorf("failed to boot %s: %w", d, err))
		}

		d.State = m.DeviceStateBooted
	}

	return lookup
}
