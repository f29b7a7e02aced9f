package device

import "strconv"

// Model is a known Apple hardware model.
type Model int

// Family is an Apple product family.
type Family string

const (
	FamilyPod     Family = "pod"
	FamilyPhone   Family = "phone"
	FamilyPad     Family = "pad"
	FamilyTV      Family = "tv"
	FamilyWatch   Family = "watch"
	FamilyHomePod Family = "homepod"
	FamilyVision  Family = "vision"
)

// CameraType is a kind of rear camera.
type CameraType string

const (
	CameraWide      CameraType = "wide"
	CameraTelephoto CameraType = "telephoto"
	CameraUltraWide CameraType = "ultra_wide"
)

type feature uint32

const (
	featTouchID feature = 1 << iota
	featFaceID
	featSensorHousing
	featDynamicIsland
	featRoundedCorners
	feat3DTouch
	featWirelessCharging
	feat5G
	featLidar
	featPencil
	featPencil2
	featPencilPro
	featSmartKeyboard
	featUSBC
	featPlusSized
	featPro
	featMini
)

// modelSpec is one row of the catalog.
type modelSpec struct {
	name        string
	identifiers []string
	family      Family
	diagonal    float64
	ratio       Ratio
	ppi         int
	cpu         CPU
	cameras     []CameraType
	features    feature
}

func (s *modelSpec) has(f feature) bool {
	return s.features&f == f
}

// Valid reports whether m is a model in the catalog.
func (m Model) Valid() bool {
	return m > 0 && int(m) < len(models) && models[m].name != ""
}

// String returns the display name of m, e.g. "iPhone 13 Pro".
func (m Model) String() string {
	if !m.Valid() {
		return "Model(" + strconv.Itoa(int(m)) + ")"
	}
	return models[m].name
}

// Identifiers returns the raw identifiers that resolve to m.
func (m Model) Identifiers() []string {
	if !m.Valid() {
		return nil
	}
	return append([]string(nil), models[m].identifiers...)
}

// Device returns the Device for m.
func (m Model) Device() Device {
	return New(m)
}

// Models returns every model in the catalog in declaration order.
func Models() []Model {
	var ret []Model
	for i := range models {
		if m := Model(i); m.Valid() {
			ret = append(ret, m)
		}
	}
	return ret
}
