package recorder

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/micromdm/nanodevice/device"
	"github.com/micromdm/nanodevice/mdm"
	"github.com/micromdm/nanodevice/subsystem/inventory/storage"
	"github.com/micromdm/nanodevice/subsystem/inventory/storage/inmem"
)

type countingObserver struct {
	seen []device.Device
}

func (o *countingObserver) Observe(d device.Device) {
	o.seen = append(o.seen, d)
}

func newRecorder(t *testing.T, opts ...Option) (*Recorder, storage.Storage) {
	t.Helper()
	s := inmem.New()
	r, err := New(s, opts...)
	if err != nil {
		t.Fatal(err)
	}
	r.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return r, s
}

func retrieve(t *testing.T, s storage.ReadStorage, id string) storage.Values {
	t.Helper()
	idVals, err := s.RetrieveInventory(context.Background(), &storage.SearchOptions{IDs: []string{id}})
	if err != nil {
		t.Fatal(err)
	}
	return idVals[id]
}

func TestAuthenticate(t *testing.T) {
	obs := &countingObserver{}
	r, s := newRecorder(t, WithObserver(obs))
	ctx := context.Background()

	auth := &mdm.Authenticate{
		Enrollment:   mdm.Enrollment{UDID: "UDID001"},
		ProductName:  "iPhone14,2",
		SerialNumber: "F2LXK0ABCD12",
		DeviceName:   "Test iPhone",
	}
	if err := r.MDMCheckinEvent(ctx, "UDID001", auth, nil); err != nil {
		t.Fatal(err)
	}

	v := retrieve(t, s, "UDID001")
	for k, want := range map[string]string{
		storage.KeyProductName:  "iPhone14,2",
		storage.KeyModel:        "iPhone 13 Pro",
		storage.KeyModelFamily:  "phone",
		storage.KeyCPU:          "A15 Bionic",
		storage.KeySerialNumber: "F2LXK0ABCD12",
		storage.KeyDeviceName:   "Test iPhone",
		storage.KeyLastSource:   SourceAuthenticate,
	} {
		if have, _ := v.String(k); have != want {
			t.Errorf("%s: have: %q, want: %q", k, have, want)
		}
	}
	if unk, _ := v.Bool(storage.KeyUnknownModel); unk {
		t.Error("expected known model")
	}
	if have, want := len(obs.seen), 1; have != want {
		t.Errorf("observed: have: %v, want: %v", have, want)
	}
}

func TestAuthenticateSimulator(t *testing.T) {
	r, s := newRecorder(t, WithResolver(device.NewResolver(device.WithSimulatorModel("iPhone14,5"))))
	ctx := context.Background()

	auth := &mdm.Authenticate{ProductName: "arm64"}
	if err := r.MDMCheckinEvent(ctx, "SIM001", auth, nil); err != nil {
		t.Fatal(err)
	}
	v := retrieve(t, s, "SIM001")
	if have, want := v[storage.KeyModel], "Simulator (iPhone 13)"; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
	if sim, _ := v.Bool(storage.KeySimulator); !sim {
		t.Error("expected simulator")
	}
}

func TestAuthenticateNoProductName(t *testing.T) {
	r, s := newRecorder(t)
	if err := r.MDMCheckinEvent(context.Background(), "UDID001", &mdm.Authenticate{}, nil); err != nil {
		t.Fatal(err)
	}
	if v := retrieve(t, s, "UDID001"); v != nil {
		t.Errorf("expected no inventory, have: %v", v)
	}
}

func TestCheckOut(t *testing.T) {
	r, s := newRecorder(t)
	ctx := context.Background()
	if err := r.MDMCheckinEvent(ctx, "UDID001", &mdm.Authenticate{ProductName: "iPhone3,1"}, nil); err != nil {
		t.Fatal(err)
	}
	if v := retrieve(t, s, "UDID001"); v == nil {
		t.Fatal("expected inventory")
	}
	if err := r.MDMCheckinEvent(ctx, "UDID001", &mdm.CheckOut{}, nil); err != nil {
		t.Fatal(err)
	}
	if v := retrieve(t, s, "UDID001"); v != nil {
		t.Errorf("expected inventory to be deleted, have: %v", v)
	}
}

func TestDeviceInformationReport(t *testing.T) {
	for _, test := range []struct {
		file    string
		model   string
		unknown bool
	}{
		{"testdata/devinfo.plist", "iPad Air (4th generation)", false},
		{"testdata/devinfo_unknown.plist", "iPad99,9", true},
	} {
		t.Run(test.file, func(t *testing.T) {
			r, s := newRecorder(t)
			raw, err := os.ReadFile(test.file)
			if err != nil {
				t.Fatal(err)
			}
			err = r.MDMCommandResponseEvent(context.Background(), "UDID002", "b6a0e9e4-6c1b-4b8f-9b5e-1f9d3c0e7a21", raw, nil)
			if err != nil {
				t.Fatal(err)
			}
			v := retrieve(t, s, "UDID002")
			if have, want := v[storage.KeyModel], test.model; have != want {
				t.Errorf("model: have: %v, want: %v", have, want)
			}
			if have, want := v[storage.KeyLastSource], "DeviceInformation"; have != want {
				t.Errorf("source: have: %v, want: %v", have, want)
			}
			if have, want := v[storage.KeyDeviceName], "Test iPad"; have != want {
				t.Errorf("device name: have: %v, want: %v", have, want)
			}
			if unk, _ := v.Bool(storage.KeyUnknownModel); unk != test.unknown {
				t.Errorf("unknown: have: %v, want: %v", unk, test.unknown)
			}
		})
	}
}

func TestOtherReportIgnored(t *testing.T) {
	r, s := newRecorder(t)
	raw, err := os.ReadFile("testdata/securityinfo.plist")
	if err != nil {
		t.Fatal(err)
	}
	if err = r.MDMCommandResponseEvent(context.Background(), "UDID002", "0c2f7d1e-55aa-4d0e-8f6b-3a9e2b1c4d5f", raw, nil); err != nil {
		t.Fatal(err)
	}
	if v := retrieve(t, s, "UDID002"); v != nil {
		t.Errorf("expected no inventory, have: %v", v)
	}
}

func TestDeviceValues(t *testing.T) {
	v := DeviceValues("banana", device.Resolve("banana"))
	if have, want := v[storage.KeyModel], "banana"; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
	if have, want := v[storage.KeyCPU], "unknown"; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
	if unk, _ := v.Bool(storage.KeyUnknownModel); !unk {
		t.Error("expected unknown model")
	}
}
