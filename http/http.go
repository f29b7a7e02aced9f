// Package http includes handlers and utilties.
package http

import (
	"bytes"
	"io"
	"net/http"
)

// ReadAllAndReplaceBody reads all of r.Body and replaces it with a new byte buffer.
func ReadAllAndReplaceBody(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return b, err
	}
	defer r.Body.Close()
	r.Body = io.NopCloser(bytes.NewBuffer(b))
	return b, nil
}

// DumpHandler writes the body of each request to output, followed by a
// newline, before handing the request to next.
func DumpHandler(next http.Handler, output io.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			body, _ := ReadAllAndReplaceBody(r)
			output.Write(append(body, '\n'))
		}
		next.ServeHTTP(w, r)
	}
}

// PlistHandler returns a handler that writes the result of f as an XML
// property list. f is called for every request.
func PlistHandler(f func() ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		b, err := f()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-type", "application/xml")
		w.Write(b)
	}
}
