package http

import (
	"net/http"

	nanohttp "github.com/micromdm/nanodevice/http"
	"github.com/micromdm/nanodevice/utils/uuid"

	"github.com/jessepeterson/mdmcommands"
	"github.com/micromdm/plist"
)

// DeviceInformationQueries are the DeviceInformation queries needed to
// record a device in inventory.
var DeviceInformationQueries = []string{
	"ProductName",
	"SerialNumber",
	"DeviceName",
	"OSVersion",
	"BuildVersion",
	"UDID",
}

// NewDeviceInformationCommand returns an XML plist DeviceInformation MDM
// command querying DeviceInformationQueries.
func NewDeviceInformationCommand(ider uuid.IDer) ([]byte, error) {
	cmd := mdmcommands.NewDeviceInformationCommand(ider.ID())
	cmd.Command.Queries = DeviceInformationQueries
	return plist.Marshal(cmd)
}

// DeviceInformationCommandHandler returns an HTTP handler that generates
// a new DeviceInformation command for every request.
func DeviceInformationCommandHandler(ider uuid.IDer) http.HandlerFunc {
	return nanohttp.PlistHandler(func() ([]byte, error) {
		return NewDeviceInformationCommand(ider)
	})
}
