// Package docs serves the machine-readable API documentation.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openapi []byte

// Handler serves the embedded OpenAPI document.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(openapi)
}
