// Package logkeys defines static logging keys for consistent structured logging output.
package logkeys

const (
	Message = "msg"
	Error   = "err"

	// an MDM enrollment ID. i.e. a UDID, EnrollmentID, etc.
	EnrollmentID = "id"

	// when logging multiple enrollment IDs only the first is logged.
	FirstEnrollmentID = "id_first"

	CommandUUID = "command_uuid"
	RequestType = "request_type"

	// a raw hardware identifier, e.g. "iPhone14,2"
	Identifier = "identifier"
	// the resolved display name of a device
	Device = "device"
	// where inventory values came from
	Source = "source"
	Group  = "group"

	// a context-dependent numerical count/length of something
	GenericCount = "count"
)
