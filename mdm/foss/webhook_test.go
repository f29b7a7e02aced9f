package foss

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/micromdm/nanodevice/mdm"

	"github.com/micromdm/nanolib/log"
)

type event struct {
	resp  bool
	id    string
	uuid  string
	raw   []byte
	chkin interface{}
	ctx   *mdm.Context
}

type eventRecorder struct {
	events []event
}

func (r *eventRecorder) MDMCommandResponseEvent(ctx context.Context, id string, uuid string, raw []byte, mdmContext *mdm.Context) error {
	r.events = append(r.events, event{
		resp: true,
		id:   id,
		uuid: uuid,
		raw:  raw,
		ctx:  mdmContext,
	})
	return nil
}

func (r *eventRecorder) MDMCheckinEvent(ctx context.Context, id string, checkin interface{}, mdmContext *mdm.Context) error {
	r.events = append(r.events, event{
		resp:  false,
		id:    id,
		chkin: checkin,
		ctx:   mdmContext,
	})
	return nil
}

func serveFile(t *testing.T, h http.Handler, name string) *httptest.ResponseRecorder {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r, err := http.NewRequestWithContext(context.Background(), "POST", "/webhook", f)
	if err != nil {
		t.Fatal(err)
	}
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, r)
	return recorder
}

func TestWebhookAuthenticate(t *testing.T) {
	eventRec := &eventRecorder{}
	hf := WebhookHandler(eventRec, log.NopLogger)

	serveFile(t, hf, "testdata/authenticate.json")

	if have, want := len(eventRec.events), 1; have != want {
		t.Fatalf("have: %v, want: %v", have, want)
	}

	tEvent := eventRec.events[0]

	if have, want := tEvent.resp, false; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}

	udid := "00008110-000A1B2C3D4E5F60"

	if have, want := tEvent.id, udid; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}

	if tEvent.ctx != nil {
		t.Error("expected nil")
	}

	auth, ok := tEvent.chkin.(*mdm.Authenticate)
	if !ok || auth == nil {
		t.Fatal("incorrect type from parsed webhook")
	}
	if have, want := auth.ProductName, "iPhone14,2"; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
	if have, want := auth.ID(), udid; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
	if have, want := auth.SerialNumber, "F2LXK0ABCD12"; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
}

func TestWebhookAcknowledge(t *testing.T) {
	eventRec := &eventRecorder{}
	hf := WebhookHandler(eventRec, log.NopLogger)

	serveFile(t, hf, "testdata/acknowledge.json")

	if have, want := len(eventRec.events), 1; have != want {
		t.Fatalf("have: %v, want: %v", have, want)
	}

	tEvent := eventRec.events[0]

	if !tEvent.resp {
		t.Error("expected command response event")
	}
	if have, want := tEvent.uuid, "b6a0e9e4-6c1b-4b8f-9b5e-1f9d3c0e7a21"; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
	if tEvent.ctx == nil {
		t.Fatal("expected MDM context")
	}
	if have, want := tEvent.ctx.Params["tenant"], "acme"; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
	if !bytes.Contains(tEvent.raw, []byte("iPad13,2")) {
		t.Error("expected raw payload to contain product name")
	}
}

func TestWebhookIdle(t *testing.T) {
	eventRec := &eventRecorder{}
	hf := WebhookHandler(eventRec, log.NopLogger)

	rec := serveFile(t, hf, "testdata/idle.json")

	if have, want := rec.Code, http.StatusOK; have != want {
		t.Errorf("status: have: %v, want: %v", have, want)
	}
	if have, want := len(eventRec.events), 0; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
}

func TestWebhookBadBody(t *testing.T) {
	hf := WebhookHandler(&eventRecorder{}, log.NopLogger)
	r := httptest.NewRequest("POST", "/webhook", bytes.NewBufferString("{"))
	recorder := httptest.NewRecorder()
	hf.ServeHTTP(recorder, r)
	if have, want := recorder.Code, http.StatusBadRequest; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
}

func TestDumper(t *testing.T) {
	eventRec := &eventRecorder{}
	buf := new(bytes.Buffer)
	hf := WebhookHandler(NewMDMEventDumper(eventRec, buf), log.NopLogger)

	serveFile(t, hf, "testdata/acknowledge.json")

	if !bytes.Contains(buf.Bytes(), []byte("QueryResponses")) {
		t.Error("expected dumped command report")
	}
	if have, want := len(eventRec.events), 1; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
}
