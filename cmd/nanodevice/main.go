// Package main starts a NanoDevice server.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/micromdm/nanodevice/device"
	httpdev "github.com/micromdm/nanodevice/http"
	"github.com/micromdm/nanodevice/logkeys"
	"github.com/micromdm/nanodevice/mdm/foss"
	cataloghttp "github.com/micromdm/nanodevice/subsystem/catalog/http"
	invhttp "github.com/micromdm/nanodevice/subsystem/inventory/http"
	"github.com/micromdm/nanodevice/subsystem/inventory/recorder"
	"github.com/micromdm/nanodevice/utils/uuid"

	"github.com/alexedwards/flow"
	"github.com/micromdm/nanolib/envflag"
	nanohttp "github.com/micromdm/nanolib/http"
	"github.com/micromdm/nanolib/http/trace"
	"github.com/micromdm/nanolib/log/stdlogfmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// overridden by -ldflags -X
var version = "unknown"

const (
	apiUsername = "nanodevice"
	apiRealm    = "nanodevice"
)

func main() {
	var (
		flDebug    = flag.Bool("debug", false, "log debug messages")
		flListen   = flag.String("listen", ":9005", "HTTP listen address")
		flVersion  = flag.Bool("version", false, "print version and exit")
		flDumpWH   = flag.Bool("dump-webhook", false, "dump webhook input")
		flAPIKey   = flag.String("api", "", "API key for API endpoints")
		flStorage  = flag.String("storage", "file", "name of storage backend")
		flDSN      = flag.String("storage-dsn", "", "data source name (e.g. connection string or path)")
		flPlatform = flag.String("platform", "ios", "platform of simulator placeholders")
		flSimModel = flag.String("simulator-model", "", "hardware identifier of simulated devices")
		flMetrics  = flag.Bool("metrics", true, "serve Prometheus metrics at /metrics")
	)
	envflag.Parse("NANODEVICE_", []string{"version"})

	if *flVersion {
		fmt.Println(version)
		return
	}

	logger := stdlogfmt.New(stdlogfmt.WithDebugFlag(*flDebug))

	// configure device resolution
	platform, err := device.ParsePlatform(*flPlatform)
	if err != nil {
		logger.Info(logkeys.Message, "parse platform", logkeys.Error, err)
		os.Exit(1)
	}
	resOpts := []device.Option{device.WithPlatform(platform)}
	if *flSimModel != "" {
		resOpts = append(resOpts, device.WithSimulatorModel(*flSimModel))
	}
	resolver := device.NewResolver(resOpts...)

	// configure storage
	storage, err := parseStorage(*flStorage, *flDSN)
	if err != nil {
		logger.Info(logkeys.Message, "parse storage", logkeys.Error, err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	counter := cataloghttp.NewResolveCounter(reg)

	rec, err := recorder.New(
		storage.inventory,
		recorder.WithLogger(logger.With("service", "recorder")),
		recorder.WithResolver(resolver),
		recorder.WithObserver(counter),
	)
	if err != nil {
		logger.Info(logkeys.Message, "creating recorder", logkeys.Error, err)
		os.Exit(1)
	}

	mux := flow.New()

	mux.Handle("/version", nanohttp.NewJSONVersionHandler(version))

	if *flMetrics {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "GET")
	}

	var eventHandler foss.MDMEventReceiver = rec
	if *flDumpWH {
		eventHandler = foss.NewMDMEventDumper(eventHandler, os.Stdout)
	}
	var h http.Handler = foss.WebhookHandler(eventHandler, logger.With("handler", "webhook"))
	if *flDumpWH {
		h = httpdev.DumpHandler(h, os.Stdout)
	}

	mux.Handle("/webhook", h)

	if *flAPIKey != "" {
		mux.Group(func(mux *flow.Mux) {
			mux.Use(func(h http.Handler) http.Handler {
				return nanohttp.NewSimpleBasicAuthHandler(h, apiUsername, *flAPIKey, apiRealm)
			})

			cataloghttp.HandleAPIv1("/v1", mux, logger, resolver, counter, uuid.NewUUID())
			invhttp.HandleAPIv1("/v1", mux, logger, storage.inventory)
		})
	}

	// seed for newTraceID
	rand.Seed(time.Now().UnixNano())

	logger.Info(logkeys.Message, "starting server", "listen", *flListen, "platform", resolver.Platform())
	err = http.ListenAndServe(*flListen, trace.NewTraceLoggingHandler(mux, logger.With("handler", "log"), newTraceID))
	logs := []interface{}{logkeys.Message, "server shutdown"}
	if err != nil {
		logs = append(logs, logkeys.Error, err)
	}
	logger.Info(logs...)
}

// newTraceID generates a new HTTP trace ID for context logging.
// Currently this just makes a random string.
func newTraceID(_ *http.Request) string {
	b := make([]byte, 8)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
