// Package api contains helpers for JSON HTTP API handlers.
package api

import (
	"encoding/json"
	"net/http"
)

// JSONError encodes err as a JSON error object to w.
// A statusCode less than 1 writes a 500 Internal Server Error.
func JSONError(w http.ResponseWriter, err error, statusCode int) {
	jsonErr := &struct {
		Err string `json:"error"`
	}{Err: err.Error()}
	if statusCode < 1 {
		statusCode = http.StatusInternalServerError
	}
	writeJSON(w, jsonErr, statusCode)
}

// JSON encodes v as JSON to w with a 200 OK status.
func JSON(w http.ResponseWriter, v interface{}) error {
	return writeJSON(w, v, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v interface{}, statusCode int) error {
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}
