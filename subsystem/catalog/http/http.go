// Package http contains HTTP handlers for looking up devices in the catalog.
package http

import (
	"errors"
	"net/http"

	"github.com/micromdm/nanodevice/device"
	"github.com/micromdm/nanodevice/http/api"
	"github.com/micromdm/nanodevice/logkeys"

	"github.com/alexedwards/flow"
	"github.com/micromdm/nanolib/log"
	"github.com/micromdm/nanolib/log/ctxlog"
)

var (
	ErrNoIdentifier = errors.New("no identifier provided")
	ErrNoGroup      = errors.New("group not found")
)

// Resolver resolves raw hardware identifiers.
type Resolver interface {
	Resolve(identifier string) device.Device
}

// ResolveHandler returns an HTTP handler that describes the device for
// the "identifier" route parameter. Unknown identifiers are not an error.
func ResolveHandler(resolver Resolver, observer *ResolveCounter, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		identifier := flow.Param(r.Context(), "identifier")
		if identifier == "" {
			logger.Info(logkeys.Message, "parameters", logkeys.Error, ErrNoIdentifier)
			api.JSONError(w, ErrNoIdentifier, http.StatusBadRequest)
			return
		}
		d := resolver.Resolve(identifier)
		if observer != nil {
			observer.Observe(d)
		}
		logger = logger.With(logkeys.Identifier, identifier, logkeys.Device, d.String())
		if d.Real().IsUnknown() {
			logger.Info(logkeys.Message, "unknown hardware identifier")
		} else {
			logger.Debug(logkeys.Message, "resolved device")
		}
		if err := api.JSON(w, d.Info()); err != nil {
			logger.Info(logkeys.Message, "encode response", logkeys.Error, err)
		}
	}
}

// ListDevicesHandler returns an HTTP handler that describes every catalog
// model, or only those in the group named by the "group" query parameter.
func ListDevicesHandler(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		var devices []device.Device
		if name := r.URL.Query().Get("group"); name != "" {
			logger = logger.With(logkeys.Group, name)
			g, ok := device.GroupByName(name)
			if !ok {
				logger.Info(logkeys.Message, "get group", logkeys.Error, ErrNoGroup)
				api.JSONError(w, ErrNoGroup, http.StatusNotFound)
				return
			}
			devices = g.Devices()
		} else {
			for _, m := range device.Models() {
				devices = append(devices, m.Device())
			}
		}
		infos := make([]device.Info, 0, len(devices))
		for _, d := range devices {
			infos = append(infos, d.Info())
		}
		logger.Debug(logkeys.Message, "listed devices", logkeys.GenericCount, len(infos))
		if err := api.JSON(w, infos); err != nil {
			logger.Info(logkeys.Message, "encode response", logkeys.Error, err)
		}
	}
}

// ListGroupsHandler returns an HTTP handler that maps each group name to
// the display names of its real devices.
func ListGroupsHandler(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		ret := make(map[string][]string)
		for _, g := range device.Groups() {
			names := []string{}
			for _, d := range g.Devices() {
				names = append(names, d.String())
			}
			ret[g.Name()] = names
		}
		if err := api.JSON(w, ret); err != nil {
			logger.Info(logkeys.Message, "encode response", logkeys.Error, err)
		}
	}
}
