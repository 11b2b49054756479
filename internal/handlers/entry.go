package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rpipaliya/student-journal-api/internal/middleware"
	"github.com/rpipaliya/student-journal-api/internal/models"
	"github.com/rpipaliya/student-journal-api/internal/repository"
)

const opTimeout = 5 * time.Second

// EntryHandler serves the /entry resource.
type EntryHandler struct {
	entries repository.EntryRepository
	quotes  repository.QuoteRepository
}

func NewEntryHandler(entries repository.EntryRepository, quotes repository.QuoteRepository) *EntryHandler {
	return &EntryHandler{entries: entries, quotes: quotes}
}

// entryWithQuote is the read-time representation: the persisted entry plus
// its resolved quote, null when the lookup finds nothing or fails.
type entryWithQuote struct {
	models.Entry
	Quote *models.Quote `json:"quote"`
}

// attachQuote resolves the entry's quote best-effort. A failed or empty
// lookup renders quote as null rather than failing the request.
func (h *EntryHandler) attachQuote(ctx context.Context, entry models.Entry) entryWithQuote {
	quote, err := h.quotes.FindByID(ctx, entry.QuoteID)
	if err != nil {
		quote = nil
	}
	return entryWithQuote{Entry: entry, Quote: quote}
}

// List returns all entries, each with its quote attached. Quote resolution is
// sequential, one round-trip per entry.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	entries, err := h.entries.FindAll(ctx)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	result := make([]entryWithQuote, 0, len(entries))
	for _, entry := range entries {
		result = append(result, h.attachQuote(ctx, entry))
	}

	writeJSON(w, http.StatusOK, result)
}

// Get returns one entry with its quote attached. The id was checked by
// validation; a load that still comes back empty means the entry vanished in
// between, reported as 404.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMissing(w, "id", "Entry does not exist")
		return
	}

	entry, err := h.entries.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if entry == nil {
		writeMissing(w, "id", "Entry does not exist")
		return
	}

	writeJSON(w, http.StatusOK, h.attachQuote(ctx, *entry))
}

// Create saves the quote first, then the entry referencing it. The two saves
// are not atomic; a failure after the first leaves an orphaned quote, never a
// dangling reference.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	body := middleware.Body(r)
	now := time.Now()

	quote := &models.Quote{
		Quote:     body.Get("quote"),
		Author:    body.Get("author"),
		CreatedAt: now,
	}
	if err := h.quotes.Save(ctx, quote); err != nil {
		writeStoreError(w, err)
		return
	}

	entry := &models.Entry{
		Title:       body.Get("title"),
		Description: body.Get("description"),
		QuoteID:     quote.ID,
		CreatedBy:   body.Get("createdBy"),
		UpdatedBy:   body.Get("createdBy"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.entries.Save(ctx, entry); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Update applies a partial patch: title and description are only overwritten
// when present in the body, updatedBy is always required.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMissing(w, "id", "Entry does not exist")
		return
	}

	entry, err := h.entries.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if entry == nil {
		writeMissing(w, "id", "Entry does not exist")
		return
	}

	body := middleware.Body(r)
	if body.Has("title") {
		entry.Title = body.Get("title")
	}
	if body.Has("description") {
		entry.Description = body.Get("description")
	}
	entry.UpdatedBy = body.Get("updatedBy")
	entry.UpdatedAt = time.Now()

	if err := h.entries.Save(ctx, entry); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete removes the entry and returns its last representation.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMissing(w, "id", "Entry does not exist")
		return
	}

	entry, err := h.entries.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if entry == nil {
		writeMissing(w, "id", "Entry does not exist")
		return
	}

	if err := h.entries.Remove(ctx, entry); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}
