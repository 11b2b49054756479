package handlers

import (
	"net/http"
)

// Banner serves the service banner at the API root.
func Banner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Student Journal Public API",
		"version": "1.0.0",
		"author":  "Rahul Pipaliya",
		"docs":    "/api-docs",
	})
}
