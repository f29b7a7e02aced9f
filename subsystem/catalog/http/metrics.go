package http

import (
	"github.com/micromdm/nanodevice/device"

	"github.com/prometheus/client_golang/prometheus"
)

// ResolveCounter counts resolved devices by result: "known", "simulator"
// or "unknown".
type ResolveCounter struct {
	total *prometheus.CounterVec
}

// NewResolveCounter creates a new counter and registers it with reg.
func NewResolveCounter(reg prometheus.Registerer) *ResolveCounter {
	c := &ResolveCounter{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nanodevice",
				Name:      "resolve_total",
				Help:      "Total number of resolved hardware identifiers by result.",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(c.total)
	return c
}

// Result classifies d for counting.
func Result(d device.Device) string {
	switch {
	case d.Real().IsUnknown():
		return "unknown"
	case d.IsSimulator():
		return "simulator"
	}
	return "known"
}

// Observe counts d.
func (c *ResolveCounter) Observe(d device.Device) {
	c.total.WithLabelValues(Result(d)).Inc()
}
