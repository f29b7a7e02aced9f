package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDumpHandler(t *testing.T) {
	var seen []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = io.ReadAll(r.Body)
	})
	buf := new(bytes.Buffer)
	h := DumpHandler(next, buf)

	r := httptest.NewRequest("POST", "/webhook", strings.NewReader("hello"))
	h.ServeHTTP(httptest.NewRecorder(), r)

	if have, want := buf.String(), "hello\n"; have != want {
		t.Errorf("dump: have: %q, want: %q", have, want)
	}
	if have, want := string(seen), "hello"; have != want {
		t.Errorf("body: have: %q, want: %q", have, want)
	}
}
