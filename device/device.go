// Package device identifies Apple hardware from raw model identifiers
// (e.g. "iPhone14,2") and describes the identified models.
//
// A Device is either a known hardware model, a simulator running another
// Device, or an unknown identifier. Resolving never fails: identifiers
// missing from the catalog resolve to an unknown Device that carries the
// original string.
package device

type kind int

const (
	kindUnknown kind = iota
	kindModel
	kindSimulator
)

// Device is a known hardware model, a simulator of a Device, or an
// unrecognized identifier.
//
// Devices are compared by display name. Use Equal rather than ==.
// The zero value is an unknown device with an empty identifier.
type Device struct {
	kind       kind
	model      Model
	inner      *Device
	identifier string
}

// New returns the Device for a known model.
// An invalid model returns an unknown Device named after m.
func New(m Model) Device {
	if !m.Valid() {
		return Unknown(m.String())
	}
	return Device{kind: kindModel, model: m}
}

// Simulator wraps d as a simulator device.
func Simulator(d Device) Device {
	inner := d
	return Device{kind: kindSimulator, inner: &inner}
}

// Unknown returns an unknown device carrying the raw identifier.
func Unknown(identifier string) Device {
	return Device{kind: kindUnknown, identifier: identifier}
}

// String returns the human readable name of d.
// Simulators are named "Simulator (<name>)" and unknown devices are
// named by their raw identifier.
func (d Device) String() string {
	switch d.kind {
	case kindModel:
		return d.model.String()
	case kindSimulator:
		return "Simulator (" + d.inner.String() + ")"
	}
	return d.identifier
}

// Equal reports whether d and o have the same display name.
func (d Device) Equal(o Device) bool {
	return d.String() == o.String()
}

// Model returns the model of d if d is a known, non-simulator device.
func (d Device) Model() (Model, bool) {
	return d.model, d.kind == kindModel
}

// Inner returns the device wrapped by a simulator.
func (d Device) Inner() (Device, bool) {
	if d.kind != kindSimulator {
		return Device{}, false
	}
	return *d.inner, true
}

// UnknownIdentifier returns the raw identifier of an unknown device.
func (d Device) UnknownIdentifier() (string, bool) {
	return d.identifier, d.kind == kindUnknown
}

// IsUnknown reports whether d is an unrecognized identifier.
// A simulator of an unknown device is not itself unknown.
func (d Device) IsUnknown() bool {
	return d.kind == kindUnknown
}

// Real unwraps any simulator wrapping and returns the underlying device.
// Devices that are not simulators are returned as-is.
func (d Device) Real() Device {
	for d.kind == kindSimulator {
		d = *d.inner
	}
	return d
}

// RealDevice returns the real device underlying d.
func RealDevice(d Device) Device {
	return d.Real()
}

// IsOneOf reports whether d is equal to any of devices.
func (d Device) IsOneOf(devices []Device) bool {
	name := d.String()
	for _, o := range devices {
		if o.String() == name {
			return true
		}
	}
	return false
}

// spec returns the catalog row for the real device underlying d.
func (d Device) spec() (*modelSpec, bool) {
	r := d.Real()
	if r.kind != kindModel {
		return nil, false
	}
	return &models[r.model], true
}

// Name returns the display name of the real device underlying d.
func (d Device) Name() string {
	return d.Real().String()
}

// Identifiers returns the raw identifiers the real device is known by.
// Unknown devices return their own raw identifier.
func (d Device) Identifiers() []string {
	s, ok := d.spec()
	if !ok {
		if id, ok := d.Real().UnknownIdentifier(); ok && id != "" {
			return []string{id}
		}
		return nil
	}
	return append([]string(nil), s.identifiers...)
}

// Family returns the product family of d, or an empty Family.
func (d Device) Family() Family {
	s, ok := d.spec()
	if !ok {
		return ""
	}
	return s.family
}

// Diagonal returns the screen diagonal in inches, or -1 if the device
// has no screen or is unknown.
func (d Device) Diagonal() float64 {
	s, ok := d.spec()
	if !ok || s.diagonal == 0 {
		return -1
	}
	return s.diagonal
}

// ScreenRatio returns the screen aspect ratio, or -1 by -1 if the device
// has no screen or is unknown.
func (d Device) ScreenRatio() Ratio {
	s, ok := d.spec()
	if !ok || s.ratio.Width == 0 {
		return Ratio{Width: -1, Height: -1}
	}
	return s.ratio
}

// PPI returns the pixel density of the screen.
func (d Device) PPI() (int, bool) {
	s, ok := d.spec()
	if !ok || s.ppi <= 0 {
		return 0, false
	}
	return s.ppi, true
}

// CPU returns the system-on-chip of d or CPUUnknown.
func (d Device) CPU() CPU {
	s, ok := d.spec()
	if !ok {
		return CPUUnknown
	}
	return s.cpu
}

// Cameras returns the rear camera types of d.
func (d Device) Cameras() []CameraType {
	s, ok := d.spec()
	if !ok {
		return nil
	}
	return append([]CameraType(nil), s.cameras...)
}

// HasCamera reports whether d has a rear camera of type t.
func (d Device) HasCamera(t CameraType) bool {
	for _, c := range d.Cameras() {
		if c == t {
			return true
		}
	}
	return false
}

// Ratio is a screen aspect ratio.
type Ratio struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Info is a flattened, JSON-friendly description of a device.
type Info struct {
	Name        string       `json:"name"`
	Model       string       `json:"model,omitempty"`
	Identifiers []string     `json:"identifiers,omitempty"`
	Family      Family       `json:"family,omitempty"`
	Simulator   bool         `json:"simulator"`
	Unknown     bool         `json:"unknown"`
	Diagonal    float64      `json:"diagonal"`
	ScreenRatio Ratio        `json:"screen_ratio"`
	PPI         int          `json:"ppi,omitempty"`
	CPU         CPU          `json:"cpu"`
	Cameras     []CameraType `json:"cameras,omitempty"`
	Groups      []string     `json:"groups,omitempty"`
}

// Info describes d.
// Name is the display name of d itself (including any simulator
// wrapping) while Model is the name of the real device.
func (d Device) Info() Info {
	r := d.Real()
	info := Info{
		Name:        d.String(),
		Identifiers: d.Identifiers(),
		Family:      d.Family(),
		Simulator:   d.kind == kindSimulator,
		Unknown:     r.kind == kindUnknown,
		Diagonal:    d.Diagonal(),
		ScreenRatio: d.ScreenRatio(),
		CPU:         d.CPU(),
		Cameras:     d.Cameras(),
	}
	if r.kind == kindModel {
		info.Model = r.String()
	}
	info.PPI, _ = d.PPI()
	for _, g := range groups {
		if g.Contains(d) {
			info.Groups = append(info.Groups, g.Name())
		}
	}
	return info
}
