// Package mdm defines types for the core MDM protocol.
package mdm

// Checkin contains fields for MDM checkin messages.
type Checkin struct {
	MessageType string
}

// Enrollment contains various enrollment identifier fields.
type Enrollment struct {
	UDID             string `plist:",omitempty"`
	UserID           string `plist:",omitempty"`
	UserShortName    string `plist:",omitempty"`
	UserLongName     string `plist:",omitempty"`
	EnrollmentID     string `plist:",omitempty"`
	EnrollmentUserID string `plist:",omitempty"`
}

// ID returns the UDID or, for user-channel and BYOD enrollments, the
// EnrollmentID.
func (e *Enrollment) ID() string {
	if e.UDID != "" {
		return e.UDID
	}
	return e.EnrollmentID
}

// Authenticate Checkin Message. MessageType field should be "Authenticate".
// ProductName carries the raw hardware identifier, e.g. "iPhone14,2".
// See https://developer.apple.com/documentation/devicemanagement/authenticaterequest
type Authenticate struct {
	Checkin
	Enrollment
	BuildVersion string `plist:",omitempty"`
	DeviceName   string
	IMEI         string `plist:",omitempty"`
	MEID         string `plist:",omitempty"`
	Model        string
	ModelName    string
	OSVersion    string `plist:",omitempty"`
	ProductName  string `plist:",omitempty"`
	SerialNumber string `plist:",omitempty"`
	Topic        string
}

// TokenUpdate Checkin Message. MessageType field should be "TokenUpdate".
// See https://developer.apple.com/documentation/devicemanagement/tokenupdaterequest
type TokenUpdate struct {
	Checkin
	Enrollment
	AwaitingConfiguration bool `plist:",omitempty"`
	NotOnConsole          bool
	PushMagic             string
	Token                 []byte
	Topic                 string
	UnlockToken           []byte
}

// CheckOut Checkin Message. MessageType field should be "CheckOut".
// See https://developer.apple.com/documentation/devicemanagement/checkoutrequest
type CheckOut struct {
	Checkin
	Enrollment
	Topic string
}

// Context carries the MDM URL parameters of a webhook event.
type Context struct {
	Params map[string]string
}

// NewCheckinFromMessageType creates a new checkin struct given a message type.
func NewCheckinFromMessageType(messageType string) interface{} {
	switch messageType {
	case "Authenticate":
		return new(Authenticate)
	case "TokenUpdate":
		return new(TokenUpdate)
	case "CheckOut":
		return new(CheckOut)
	default:
		return nil
	}
}
