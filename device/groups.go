package device

import "sort"

// Group is a named, static set of devices sharing a capability.
// A Group contains its member devices and simulators of those members.
type Group struct {
	name       string
	devices    []Device
	simulators []Device
	names      map[string]struct{}
}

func newGroup(name string, devices, simulators []Device) *Group {
	g := &Group{
		name:       name,
		devices:    devices,
		simulators: simulators,
		names:      make(map[string]struct{}, len(devices)+len(simulators)),
	}
	for _, d := range devices {
		g.names[d.String()] = struct{}{}
	}
	for _, d := range simulators {
		g.names[d.String()] = struct{}{}
	}
	return g
}

// modelGroup builds a group of every catalog model matching f along with
// simulators of each.
func modelGroup(name string, f func(*modelSpec) bool) *Group {
	var devices, sims []Device
	for _, m := range Models() {
		if f(&models[m]) {
			d := New(m)
			devices = append(devices, d)
			sims = append(sims, Simulator(d))
		}
	}
	return newGroup(name, devices, sims)
}

func familyGroup(name string, f Family) *Group {
	return modelGroup(name, func(s *modelSpec) bool { return s.family == f })
}

func featureGroup(name string, f feature) *Group {
	return modelGroup(name, func(s *modelSpec) bool { return s.has(f) })
}

func cameraGroup(name string, t CameraType) *Group {
	return modelGroup(name, func(s *modelSpec) bool {
		for _, c := range s.cameras {
			if c == t {
				return true
			}
		}
		return false
	})
}

// Name returns the group name, e.g. "face-id".
func (g *Group) Name() string {
	return g.name
}

// Devices returns the real devices in g.
func (g *Group) Devices() []Device {
	return append([]Device(nil), g.devices...)
}

// Simulators returns simulators of the real devices in g.
func (g *Group) Simulators() []Device {
	return append([]Device(nil), g.simulators...)
}

// Contains reports whether d is one of the devices of g or a simulator of
// one of them.
func (g *Group) Contains(d Device) bool {
	_, ok := g.names[d.String()]
	return ok
}

var (
	GroupPods     = familyGroup("pods", FamilyPod)
	GroupPhones   = familyGroup("phones", FamilyPhone)
	GroupPads     = familyGroup("pads", FamilyPad)
	GroupTVs      = familyGroup("tvs", FamilyTV)
	GroupWatches  = familyGroup("watches", FamilyWatch)
	GroupHomePods = familyGroup("homepods", FamilyHomePod)
	GroupVision   = familyGroup("vision", FamilyVision)

	GroupPlusSized = featureGroup("plus-sized", featPlusSized)
	GroupPadPros   = modelGroup("pad-pros", func(s *modelSpec) bool {
		return s.family == FamilyPad && s.has(featPro)
	})
	GroupMinis = modelGroup("minis", func(s *modelSpec) bool {
		return s.family == FamilyPad && s.has(featMini)
	})

	GroupTouchID   = featureGroup("touch-id", featTouchID)
	GroupFaceID    = featureGroup("face-id", featFaceID)
	GroupBiometric = modelGroup("biometric", func(s *modelSpec) bool {
		return s.has(featTouchID) || s.has(featFaceID)
	})
	GroupSensorHousing   = featureGroup("sensor-housing", featSensorHousing)
	GroupDynamicIsland   = featureGroup("dynamic-island", featDynamicIsland)
	GroupRoundedCorners  = featureGroup("rounded-display-corners", featRoundedCorners)
	Group3DTouch         = featureGroup("3d-touch", feat3DTouch)
	GroupWirelessCharger = featureGroup("wireless-charging", featWirelessCharging)
	Group5G              = featureGroup("5g", feat5G)
	GroupLidar           = featureGroup("lidar", featLidar)
	GroupApplePencil     = modelGroup("apple-pencil", func(s *modelSpec) bool {
		return s.has(featPencil) || s.has(featPencil2) || s.has(featPencilPro)
	})
	GroupApplePencil1   = featureGroup("apple-pencil-1", featPencil)
	GroupApplePencil2   = featureGroup("apple-pencil-2", featPencil2)
	GroupApplePencilPro = featureGroup("apple-pencil-pro", featPencilPro)
	GroupSmartKeyboard  = featureGroup("smart-keyboard", featSmartKeyboard)
	GroupUSBC           = featureGroup("usb-c", featUSBC)

	GroupTelephoto = cameraGroup("telephoto", CameraTelephoto)
	GroupUltraWide = cameraGroup("ultra-wide", CameraUltraWide)

	GroupRealDevices = modelGroup("real-devices", func(*modelSpec) bool { return true })
	GroupSimulators  = newGroup("simulators", nil, GroupRealDevices.Simulators())
)

// groups is the registry of named groups in listing order.
var groups = []*Group{
	GroupPods, GroupPhones, GroupPads, GroupTVs, GroupWatches, GroupHomePods, GroupVision,
	GroupPlusSized, GroupPadPros, GroupMinis,
	GroupTouchID, GroupFaceID, GroupBiometric,
	GroupSensorHousing, GroupDynamicIsland, GroupRoundedCorners,
	Group3DTouch, GroupWirelessCharger, Group5G, GroupLidar,
	GroupApplePencil, GroupApplePencil1, GroupApplePencil2, GroupApplePencilPro,
	GroupSmartKeyboard, GroupUSBC,
	GroupTelephoto, GroupUltraWide,
	GroupRealDevices, GroupSimulators,
}

// Groups returns every named group.
func Groups() []*Group {
	return append([]*Group(nil), groups...)
}

// GroupNames returns the sorted names of every group.
func GroupNames() []string {
	ret := make([]string, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, g.name)
	}
	sort.Strings(ret)
	return ret
}

// GroupByName returns the group with the given name.
func GroupByName(name string) (*Group, bool) {
	for _, g := range groups {
		if g.name == name {
			return g, true
		}
	}
	return nil, false
}

// AllSimulators returns a simulator of every real device.
func AllSimulators() []Device {
	return GroupSimulators.Simulators()
}

// IsSimulator reports whether d is a simulator of a known device.
// A simulator of an unknown identifier is not reported as a simulator;
// use Inner to detect the wrapping itself.
func (d Device) IsSimulator() bool { return GroupSimulators.Contains(d) }

func (d Device) IsPod() bool     { return GroupPods.Contains(d) }
func (d Device) IsPhone() bool   { return GroupPhones.Contains(d) }
func (d Device) IsPad() bool     { return GroupPads.Contains(d) }
func (d Device) IsTV() bool      { return GroupTVs.Contains(d) }
func (d Device) IsWatch() bool   { return GroupWatches.Contains(d) }
func (d Device) IsHomePod() bool { return GroupHomePods.Contains(d) }
func (d Device) IsVision() bool  { return GroupVision.Contains(d) }

func (d Device) IsPlusSized() bool { return GroupPlusSized.Contains(d) }
func (d Device) IsPadPro() bool    { return GroupPadPros.Contains(d) }
func (d Device) IsPadMini() bool   { return GroupMinis.Contains(d) }

// IsTouchIDCapable reports whether d has a Touch ID sensor.
func (d Device) IsTouchIDCapable() bool { return GroupTouchID.Contains(d) }

// IsFaceIDCapable reports whether d has a Face ID camera system.
func (d Device) IsFaceIDCapable() bool { return GroupFaceID.Contains(d) }

// HasBiometricSensor reports whether d has either Touch ID or Face ID.
func (d Device) HasBiometricSensor() bool { return GroupBiometric.Contains(d) }

// HasSensorHousing reports whether d has a display notch.
func (d Device) HasSensorHousing() bool { return GroupSensorHousing.Contains(d) }

func (d Device) HasDynamicIsland() bool         { return GroupDynamicIsland.Contains(d) }
func (d Device) HasRoundedDisplayCorners() bool { return GroupRoundedCorners.Contains(d) }
func (d Device) Has3DTouchSupport() bool        { return Group3DTouch.Contains(d) }
func (d Device) SupportsWirelessCharging() bool { return GroupWirelessCharger.Contains(d) }
func (d Device) Has5GSupport() bool             { return Group5G.Contains(d) }
func (d Device) HasLidarSensor() bool           { return GroupLidar.Contains(d) }

// IsApplePencilCapable reports whether d supports any Apple Pencil.
func (d Device) IsApplePencilCapable() bool { return GroupApplePencil.Contains(d) }

func (d Device) SupportsApplePencil1() bool      { return GroupApplePencil1.Contains(d) }
func (d Device) SupportsApplePencil2() bool      { return GroupApplePencil2.Contains(d) }
func (d Device) SupportsApplePencilPro() bool    { return GroupApplePencilPro.Contains(d) }
func (d Device) HasSmartKeyboardConnector() bool { return GroupSmartKeyboard.Contains(d) }
func (d Device) HasUSBCConnectivity() bool       { return GroupUSBC.Contains(d) }
func (d Device) HasTelephotoCamera() bool        { return GroupTelephoto.Contains(d) }
func (d Device) HasUltraWideCamera() bool        { return GroupUltraWide.Contains(d) }
