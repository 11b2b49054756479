package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rpipaliya/student-journal-api/internal/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeStoreError reports a persistence failure, passing the raw error text
// through unclassified.
func writeStoreError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"errors": err.Error()})
}

// writeMissing reports a record that passed existence validation but was gone
// by the time the handler loaded it.
func writeMissing(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"errors": []middleware.FieldError{{Field: field, Message: message}},
	})
}
