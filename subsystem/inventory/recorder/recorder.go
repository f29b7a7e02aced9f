// Package recorder resolves the hardware identifiers reported by enrolled
// devices and records the resolved model in inventory storage.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/micromdm/nanodevice/device"
	"github.com/micromdm/nanodevice/logkeys"
	"github.com/micromdm/nanodevice/mdm"
	"github.com/micromdm/nanodevice/subsystem/inventory/storage"

	"github.com/jessepeterson/mdmcommands"
	"github.com/micromdm/nanolib/log"
	"github.com/micromdm/nanolib/log/ctxlog"
	"github.com/micromdm/plist"
)

// SourceAuthenticate is the last_source value of inventory recorded from
// an Authenticate check-in.
const SourceAuthenticate = "Authenticate"

// Observer is notified of every resolved device.
type Observer interface {
	Observe(d device.Device)
}

// Recorder is an MDM event receiver that stores resolved device models.
type Recorder struct {
	store    storage.Storage
	resolver *device.Resolver
	logger   log.Logger
	observer Observer
	now      func() time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithResolver sets the resolver used for reported identifiers.
func WithResolver(resolver *device.Resolver) Option {
	return func(r *Recorder) {
		r.resolver = resolver
	}
}

// WithObserver sets an observer of resolved devices.
func WithObserver(o Observer) Option {
	return func(r *Recorder) {
		r.observer = o
	}
}

// New creates a new Recorder that stores inventory in store.
func New(store storage.Storage, opts ...Option) (*Recorder, error) {
	if store == nil {
		return nil, errors.New("nil storage")
	}
	r := &Recorder{
		store:    store,
		resolver: device.NewResolver(),
		logger:   log.NopLogger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// DeviceValues returns the inventory values describing d as resolved from
// the raw identifier.
func DeviceValues(identifier string, d device.Device) storage.Values {
	_, simulator := d.Inner()
	return storage.Values{
		storage.KeyProductName:  identifier,
		storage.KeyModel:        d.String(),
		storage.KeyModelFamily:  string(d.Family()),
		storage.KeyCPU:          d.CPU().String(),
		storage.KeySimulator:    simulator,
		storage.KeyUnknownModel: d.Real().IsUnknown(),
	}
}

func storeIfPresent[T any](v storage.Values, k string, p *T) {
	if p == nil {
		return
	}
	v[k] = *p
}

func storeIfNotEmpty(v storage.Values, k string, s string) {
	if s != "" {
		v[k] = s
	}
}

func (r *Recorder) resolve(ctx context.Context, identifier string) device.Device {
	d := r.resolver.Resolve(identifier)
	if r.observer != nil {
		r.observer.Observe(d)
	}
	if d.Real().IsUnknown() {
		ctxlog.Logger(ctx, r.logger).Info(
			logkeys.Message, "unknown hardware identifier",
			logkeys.Identifier, identifier,
		)
	}
	return d
}

// MDMCheckinEvent records the ProductName of Authenticate check-ins and
// removes inventory on CheckOut. Other check-ins are ignored.
func (r *Recorder) MDMCheckinEvent(ctx context.Context, id string, checkin interface{}, _ *mdm.Context) error {
	logger := ctxlog.Logger(ctx, r.logger).With(logkeys.EnrollmentID, id)
	switch m := checkin.(type) {
	case *mdm.Authenticate:
		if m.ProductName == "" {
			logger.Debug(logkeys.Message, "authenticate without product name")
			return nil
		}
		if id == "" {
			id = m.ID()
		}
		d := r.resolve(ctx, m.ProductName)
		v := DeviceValues(m.ProductName, d)
		storeIfNotEmpty(v, storage.KeySerialNumber, m.SerialNumber)
		storeIfNotEmpty(v, storage.KeyDeviceName, m.DeviceName)
		storeIfNotEmpty(v, storage.KeyOSVersion, m.OSVersion)
		storeIfNotEmpty(v, storage.KeyBuildVersion, m.BuildVersion)
		storeIfNotEmpty(v, storage.KeyUDID, m.UDID)
		v[storage.KeyLastSource] = SourceAuthenticate
		v[storage.KeyModified] = r.now()
		if err := r.store.StoreInventoryValues(ctx, id, v); err != nil {
			return fmt.Errorf("storing authenticate inventory: %w", err)
		}
		logger.Debug(
			logkeys.Message, "recorded device",
			logkeys.Source, SourceAuthenticate,
			logkeys.Device, d.String(),
		)
	case *mdm.CheckOut:
		if err := r.store.DeleteInventory(ctx, id); err != nil {
			return fmt.Errorf("deleting inventory: %w", err)
		}
		logger.Debug(logkeys.Message, "deleted inventory")
	}
	return nil
}

// reportProbe detects DeviceInformation command reports.
type reportProbe struct {
	Status         string
	QueryResponses *struct {
		ProductName string
	}
}

// MDMCommandResponseEvent records the ProductName of acknowledged
// DeviceInformation command reports. Other reports are ignored.
func (r *Recorder) MDMCommandResponseEvent(ctx context.Context, id string, uuid string, raw []byte, _ *mdm.Context) error {
	probe := new(reportProbe)
	if err := plist.Unmarshal(raw, probe); err != nil {
		return fmt.Errorf("unmarshal report: %w", err)
	}
	if probe.Status != "Acknowledged" || probe.QueryResponses == nil || probe.QueryResponses.ProductName == "" {
		return nil
	}
	identifier := probe.QueryResponses.ProductName

	resp := new(mdmcommands.DeviceInformationResponse)
	if err := plist.Unmarshal(raw, resp); err != nil {
		return fmt.Errorf("unmarshal device information: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return fmt.Errorf("device info response: %w", err)
	}

	d := r.resolve(ctx, identifier)
	v := DeviceValues(identifier, d)
	qr := resp.QueryResponses
	storeIfPresent(v, storage.KeySerialNumber, qr.SerialNumber)
	storeIfPresent(v, storage.KeyDeviceName, qr.DeviceName)
	storeIfPresent(v, storage.KeyOSVersion, qr.OSVersion)
	storeIfPresent(v, storage.KeyBuildVersion, qr.BuildVersion)
	storeIfPresent(v, storage.KeyUDID, resp.UDID)
	v[storage.KeyLastSource] = mdmcommands.DeviceInformationRequestType
	v[storage.KeyModified] = r.now()
	if err := r.store.StoreInventoryValues(ctx, id, v); err != nil {
		return fmt.Errorf("storing device information inventory: %w", err)
	}
	ctxlog.Logger(ctx, r.logger).Debug(
		logkeys.Message, "recorded device",
		logkeys.EnrollmentID, id,
		logkeys.CommandUUID, uuid,
		logkeys.Source, mdmcommands.DeviceInformationRequestType,
		logkeys.Device, d.String(),
	)
	return nil
}
