package http

import (
	"net/http"

	"github.com/micromdm/nanodevice/utils/uuid"

	"github.com/micromdm/nanolib/log"
)

// Mux can register HTTP handlers.
// Ostensibly this supports flow router.
type Mux interface {
	// Handle registers the handler for the given pattern.
	Handle(pattern string, handler http.Handler, methods ...string)
}

// HandleAPIv1 registers the catalog API handlers into mux.
// API endpoint paths are prepended with prefix.
// The counter may be nil.
func HandleAPIv1(prefix string, mux Mux, logger log.Logger, resolver Resolver, counter *ResolveCounter, ider uuid.IDer) {
	mux.Handle(
		prefix+"/device/:identifier",
		ResolveHandler(resolver, counter, logger.With("handler", "resolve-device")),
		"GET",
	)

	mux.Handle(
		prefix+"/devices",
		ListDevicesHandler(logger.With("handler", "list-devices")),
		"GET",
	)

	mux.Handle(
		prefix+"/groups",
		ListGroupsHandler(logger.With("handler", "list-groups")),
		"GET",
	)

	mux.Handle(
		prefix+"/command/deviceinformation",
		DeviceInformationCommandHandler(ider),
		"GET",
	)
}
