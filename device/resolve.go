package device

import (
	"fmt"
	"os"
	"strings"
)

// Platform is an Apple operating system family.
type Platform string

const (
	PlatformIOS      Platform = "iOS"
	PlatformTVOS     Platform = "tvOS"
	PlatformWatchOS  Platform = "watchOS"
	PlatformVisionOS Platform = "visionOS"
)

// SimulatorModelEnv names the environment variable a simulator uses to
// report the identifier of the model it simulates.
const SimulatorModelEnv = "SIMULATOR_MODEL_IDENTIFIER"

// Placeholder returns the identifier a simulator reports when it does not
// name the model it simulates.
func (p Platform) Placeholder() string {
	if p == PlatformVisionOS {
		return "xrOS"
	}
	return string(p)
}

// ParsePlatform parses a platform name, ignoring case.
// "xrOS" is accepted for visionOS.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ios":
		return PlatformIOS, nil
	case "tvos":
		return PlatformTVOS, nil
	case "watchos":
		return PlatformWatchOS, nil
	case "visionos", "xros":
		return PlatformVisionOS, nil
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

// IsSimulatorIdentifier reports whether identifier is one reported by a
// simulator host rather than by device hardware.
func IsSimulatorIdentifier(identifier string) bool {
	switch identifier {
	case "i386", "x86_64", "arm64":
		return true
	}
	return false
}

// Lookup returns the model for an exact identifier match.
func Lookup(identifier string) (Model, bool) {
	m, ok := byIdentifier[identifier]
	return m, ok
}

type config struct {
	platform  Platform
	lookupEnv func(string) (string, bool)
}

// Option configures a Resolver.
type Option func(*config)

// WithPlatform sets the platform whose placeholder is used for simulators
// that do not report a model. The default is iOS.
func WithPlatform(p Platform) Option {
	return func(c *config) {
		c.platform = p
	}
}

// WithLookupEnv sets the environment lookup used to find the simulated
// model. The default is os.LookupEnv.
func WithLookupEnv(f func(string) (string, bool)) Option {
	return func(c *config) {
		c.lookupEnv = f
	}
}

// WithSimulatorModel makes simulators resolve as the given identifier
// regardless of the environment.
func WithSimulatorModel(identifier string) Option {
	return WithLookupEnv(func(key string) (string, bool) {
		if key == SimulatorModelEnv {
			return identifier, true
		}
		return "", false
	})
}

// Resolver maps raw identifiers to Devices.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	platform  Platform
	lookupEnv func(string) (string, bool)
}

// NewResolver creates a new Resolver.
func NewResolver(opts ...Option) *Resolver {
	c := &config{
		platform:  PlatformIOS,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.lookupEnv == nil {
		c.lookupEnv = func(string) (string, bool) { return "", false }
	}
	return &Resolver{platform: c.platform, lookupEnv: c.lookupEnv}
}

// Platform returns the platform r was configured with.
func (r *Resolver) Platform() Platform {
	return r.platform
}

// Resolve maps identifier to a Device. It never fails: identifiers not in
// the catalog resolve to Unknown(identifier).
//
// Simulator identifiers resolve to Simulator wrapping the model named by
// the SIMULATOR_MODEL_IDENTIFIER environment variable, or the platform
// placeholder when it is unset. The simulated identifier is looked up
// directly and is never itself treated as a simulator.
func (r *Resolver) Resolve(identifier string) Device {
	if IsSimulatorIdentifier(identifier) {
		inner, ok := r.lookupEnv(SimulatorModelEnv)
		if !ok || inner == "" {
			inner = r.platform.Placeholder()
		}
		return Simulator(lookupDevice(inner))
	}
	return lookupDevice(identifier)
}

func lookupDevice(identifier string) Device {
	if m, ok := Lookup(identifier); ok {
		return New(m)
	}
	return Unknown(identifier)
}

var defaultResolver = NewResolver()

// Resolve maps identifier to a Device using the iOS platform and the
// process environment.
func Resolve(identifier string) Device {
	return defaultResolver.Resolve(identifier)
}
