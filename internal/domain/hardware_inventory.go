package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"harness.dev/pkg/harness/internal/adapter"
	m "harness.dev/pkg/harness/internal/model"
)

type hardwareDeviceXML struct {
	UDID            string `xml:"DeviceIdentifier"`
	Class           string `xml:"DeviceClass"`
	Companion       string `xml:"CompanionIdentifier"`
	Name            string `xml:"Name"`
	ProductVersion  string `xml:"ProductVersion"`
	ProductType     string `xml:"ProductType"`
	InterfaceType   string `xml:"InterfaceType"`
	UsableForDebug  string `xml:"IsUsableForDebugging"`
	CPUArchitecture string `xml:"CPUArchitecture"`
}

type hardwareListingXML struct {
	Devices []hardwareDeviceXML `xml:"Device"`
}

// DeviceCategory partitions an inventory for display and selection.
type DeviceCategory string

// Device categories.
const (
	CategoryIOS64   DeviceCategory = "iOS 64-bit"
	CategoryIOS32   DeviceCategory = "iOS 32-bit"
	CategoryTvOS    DeviceCategory = "tvOS"
	CategoryWatchOS DeviceCategory = "watchOS"
	CategoryXrOS    DeviceCategory = "xrOS"
	CategoryOther   DeviceCategory = "other"
)

// HardwareInventory knows the Apple devices connected to the host.
type HardwareInventory interface {
	LoadDevices(ctx context.Context, log io.Writer, force bool) error
	Devices() []m.Device
	// FindDevice resolves a device target. name optionally narrows the search to a device
	// name or UDID.
	FindDevice(ctx context.Context, target m.TargetDescriptor, name string, log io.Writer) DeviceLookup
}

type hardwareInventory struct {
	mlaunch    *adapter.Mlaunch
	scratchDir string

	mu      sync.RWMutex
	loaded  bool
	devices []m.Device
}

// NewHardwareInventory constructs a HardwareInventory.
func NewHardwareInventory(mlaunch *adapter.Mlaunch, scratchDir string) HardwareInventory {
	return &hardwareInventory{mlaunch: mlaunch, scratchDir: scratchDir}
}

func (h *hardwareInventory) LoadDevices(ctx context.Context, log io.Writer, force bool) error {
	h.mu.RLock()
	loaded := h.loaded
	h.mu.RUnlock()

	if loaded && !force {
		return nil
	}

	var listing hardwareListingXML
	if err := loadToolXML(ctx, h.mlaunch, "--listdev", h.scratchDir, log, &listing); err != nil {
		return err
	}

	devices := make([]m.Device, 0, len(listing.Devices))

	for _, d := range listing.Devices {
		if strings.EqualFold(strings.TrimSpace(d.UsableForDebug), "false") {
			slog.Info("Skipping device not usable for debugging", "name", d.Name, "udid", d.UDID)
			continue
		}

		devices = append(devices, m.Device{
			Name:          d.Name,
			UDID:          d.UDID,
			Kind:          m.KindHardware,
			OSVersion:     d.ProductVersion,
			DeviceType:    d.Class,
			State:         m.DeviceStateBooted,
			CompanionUDID: d.Companion,
			Architecture:  d.CPUArchitecture,
			USB:           strings.EqualFold(d.InterfaceType, "usb"),
		})
	}

	h.mu.Lock()
	h.devices = devices
	h.loaded = true
	h.mu.Unlock()

	slog.Info("Loaded devices", "count", len(devices))

	return nil
}

func (h *hardwareInventory) Devices() []m.Device {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]m.Device(nil), h.devices...)
}

// HardwareFamily maps a device class to its OS family.
func HardwareFamily(class string) (m.OSFamily, bool) {
	switch strings.ToLower(class) {
	case "iphone", "ipad", "ipod":
		return m.FamilyIOS, true
	case "appletv":
		return m.FamilyTvOS, true
	case "watch":
		return m.FamilyWatchOS, true
	case "realitydevice":
		return m.FamilyXrOS, true
	default:
		return "", false
	}
}

func (h *hardwareInventory) FindDevice(ctx context.Context, target m.TargetDescriptor, name string, log io.Writer) DeviceLookup {
	if target.Platform.IsSimulator() {
		return Failed(fmt.Errorf("%s is not a device target", target))
	}

	var want m.Version

	if target.OSVersion != "" {
		v, err := m.ParseVersion(target.OSVersion)
		if err != nil {
			return Failed(err)
		}

		want = v
	}

	if err := h.LoadDevices(ctx, log, false); err != nil {
		return Failed(err)
	}

	family := target.Platform.Family()

	var candidates []m.Device

	for _, d := range h.Devices() {
		if f, ok := HardwareFamily(d.DeviceType); !ok || f != family {
			continue
		}

		if name != "" && d.Name != name && d.UDID != name {
			continue
		}

		if want != nil {
			v, err := m.ParseVersion(d.OSVersion)
			if err != nil || !v.Equal(want) {
				continue
			}
		}

		candidates = append(candidates, d)
	}

	if len(candidates) == 0 {
		return NotFound("no connected %s device matches %s", family, describeName(target, name))
	}

	selected := candidates[0]
	for _, d := range candidates {
		if d.USB {
			selected = d
			break
		}
	}

	if !target.Platform.IsWatch() {
		return Found(selected, nil)
	}

	for _, d := range h.Devices() {
		if d.UDID == selected.CompanionUDID {
			companion := d
			return Found(selected, &companion)
		}
	}

	return NotFound("watch %s has no connected companion device", selected)
}

func describeName(target m.TargetDescriptor, name string) string {
	if name == "" {
		return target.String()
	}

	return fmt.Sprintf("%s named %q", target, name)
}

// Categorize partitions devices (simulators or hardware) by OS family and bitness.
func Categorize(devices []m.Device) map[DeviceCategory][]m.Device {
	out := map[DeviceCategory][]m.Device{}

	for _, d := range devices {
		cat := categoryOf(d)
		out[cat] = append(out[cat], d)
	}

	return out
}

func categoryOf(d m.Device) DeviceCategory {
	var family m.OSFamily

	if d.IsSimulator() {
		for f, prefix := range runtimeFamilies {
			if strings.HasPrefix(d.Runtime, prefix) {
				family = f
			}
		}
	} else {
		family, _ = HardwareFamily(d.DeviceType)
	}

	switch family {
	case m.FamilyIOS:
		if d.Architecture == "armv7" || d.Architecture == "armv7s" || d.DeviceType == deviceTypePrefix+"iPhone-5" {
			return CategoryIOS32
		}

		return CategoryIOS64
	case m.FamilyTvOS:
		return CategoryTvOS
	case m.FamilyWatchOS:
		return CategoryWatchOS
	case m.FamilyXrOS:
		return CategoryXrOS
	default:
		return CategoryOther
	}
}
