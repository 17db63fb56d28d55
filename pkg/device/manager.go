package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/labelforge/labelforge/pkg/errors"
)

// Device describes a detected printer device node.
type Device struct {
	Path         string
	Manufacturer string
	Product      string
	Serial       string
}

// String returns a short human-readable identifier.
func (d Device) String() string {
	if d.Product != "" {
		return fmt.Sprintf("%s (%s)", d.Product, d.Path)
	}
	return d.Path
}

// matches reports whether every pattern occurs in one of the device's
// descriptive fields, case-insensitively.
func (d Device) matches(patterns []string) bool {
	haystack := strings.ToLower(strings.Join(
		[]string{d.Manufacturer, d.Product, d.Serial, d.Path}, " "))
	for _, p := range patterns {
		if !strings.Contains(haystack, strings.ToLower(p)) {
			return false
		}
	}
	return true
}

// defaultDeviceGlob matches USB printer-class device nodes on Linux.
const defaultDeviceGlob = "/dev/usb/lp*"

// Manager discovers printer device nodes.
type Manager struct {
	glob string
}

// NewManager creates a manager scanning the default device glob.
func NewManager() *Manager {
	return &Manager{glob: defaultDeviceGlob}
}

// NewManagerWithGlob creates a manager scanning a custom glob, used in tests
// and for unusual udev setups.
func NewManagerWithGlob(glob string) *Manager {
	return &Manager{glob: glob}
}

// Scan enumerates candidate device nodes. It fails when nothing is found.
func (m *Manager) Scan() ([]Device, error) {
	paths, err := filepath.Glob(m.glob)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNoDevices, err, "cannot scan for devices")
	}
	var devices []Device
	for _, p := range paths {
		devices = append(devices, describe(p))
	}
	if len(devices) == 0 {
		return nil, errors.New(errors.ErrCodeNoDevices,
			"no supported devices found (scanned %s)", m.glob)
	}
	return devices, nil
}

// Select filters scanned devices by substring patterns. With no patterns all
// devices match.
func (m *Manager) Select(patterns []string) ([]Device, error) {
	devices, err := m.Scan()
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return devices, nil
	}
	var matched []Device
	for _, d := range devices {
		if d.matches(patterns) {
			matched = append(matched, d)
		}
	}
	if len(matched) == 0 {
		return nil, errors.New(errors.ErrCodeNoDevices,
			"no device matches %q", strings.Join(patterns, " "))
	}
	return matched, nil
}

// describe fills in USB descriptor strings from sysfs when available.
func describe(path string) Device {
	d := Device{Path: path}
	sys := filepath.Join("/sys/class/usbmisc", filepath.Base(path), "device", "..")
	d.Manufacturer = readSysAttr(sys, "manufacturer")
	d.Product = readSysAttr(sys, "product")
	d.Serial = readSysAttr(sys, "serial")
	return d
}

func readSysAttr(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// NewJobID returns a unique identifier correlating the log lines of one
// print job.
func NewJobID() string {
	return uuid.NewString()
}

// Open opens a device node as a labeler transport.
func Open(d Device) (Transport, error) {
	f, err := os.OpenFile(d.Path, os.O_WRONLY, 0)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDeviceWrite, err, "cannot open %s", d.Path)
	}
	return f, nil
}
