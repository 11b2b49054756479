package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rpipaliya/student-journal-api/internal/repository"
)

// FieldError is one failed validation rule, reported to the client in the
// errors array of a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule checks one field of the request. It may normalize the parsed body in
// place (trimming); it must never mutate store state.
type Rule func(r *http.Request, body url.Values) *FieldError

type contextKey int

const bodyKey contextKey = 0

// Body returns the parsed request body attached by Validate.
func Body(r *http.Request) url.Values {
	if v, ok := r.Context().Value(bodyKey).(url.Values); ok {
		return v
	}
	return url.Values{}
}

// Validate parses the request body and runs the rules in order. If any rule
// fails it responds 400 with every failure and the handler never runs.
func Validate(rules ...Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := parseBody(r)
			if err != nil {
				writeErrors(w, http.StatusBadRequest, []FieldError{{Field: "body", Message: "Invalid request body"}})
				return
			}

			var failed []FieldError
			for _, rule := range rules {
				if fieldErr := rule(r, body); fieldErr != nil {
					failed = append(failed, *fieldErr)
				}
			}
			if len(failed) > 0 {
				writeErrors(w, http.StatusBadRequest, failed)
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseBody accepts either a JSON object or a urlencoded form and normalizes
// both into form values, so rules and handlers read one shape.
func parseBody(r *http.Request) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		values := url.Values{}
		if r.Body == nil || r.ContentLength == 0 {
			return values, nil
		}
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		for key, value := range raw {
			switch v := value.(type) {
			case string:
				values.Set(key, v)
			case nil:
				// Treat explicit nulls as absent.
			default:
				values.Set(key, fmt.Sprint(v))
			}
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

// Required trims the field and fails when it is absent or empty.
func Required(field, message string) Rule {
	return func(r *http.Request, body url.Values) *FieldError {
		if !body.Has(field) {
			return &FieldError{Field: field, Message: message}
		}
		trimmed := strings.TrimSpace(body.Get(field))
		if trimmed == "" {
			return &FieldError{Field: field, Message: message}
		}
		body.Set(field, trimmed)
		return nil
	}
}

// Optional trims the field when present and never fails.
func Optional(field string) Rule {
	return func(r *http.Request, body url.Values) *FieldError {
		if body.Has(field) {
			body.Set(field, strings.TrimSpace(body.Get(field)))
		}
		return nil
	}
}

// ExistingEntryID fails unless the id path parameter names a stored entry.
func ExistingEntryID(entries repository.EntryRepository) Rule {
	return func(r *http.Request, body url.Values) *FieldError {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			return &FieldError{Field: "id", Message: "Entry does not exist"}
		}
		entry, err := entries.FindByID(r.Context(), id)
		if err != nil || entry == nil {
			return &FieldError{Field: "id", Message: "Entry does not exist"}
		}
		return nil
	}
}

// ExistingQuoteID fails unless the id path parameter names a stored quote.
func ExistingQuoteID(quotes repository.QuoteRepository) Rule {
	return func(r *http.Request, body url.Values) *FieldError {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			return &FieldError{Field: "id", Message: "Quote does not exist"}
		}
		quote, err := quotes.FindByID(r.Context(), id)
		if err != nil || quote == nil {
			return &FieldError{Field: "id", Message: "Quote does not exist"}
		}
		return nil
	}
}

func writeErrors(w http.ResponseWriter, status int, errs []FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"errors": errs})
}
