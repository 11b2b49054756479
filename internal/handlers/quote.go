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

// QuoteHandler serves the /quote resource. Quotes only support create and
// fetch-by-id; there is no update or delete endpoint.
type QuoteHandler struct {
	quotes repository.QuoteRepository
}

func NewQuoteHandler(quotes repository.QuoteRepository) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	body := middleware.Body(r)
	quote := &models.Quote{
		Quote:     body.Get("quote"),
		Author:    body.Get("author"),
		CreatedAt: time.Now(),
	}
	if err := h.quotes.Save(ctx, quote); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeMissing(w, "id", "Quote does not exist")
		return
	}

	quote, err := h.quotes.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if quote == nil {
		writeMissing(w, "id", "Quote does not exist")
		return
	}

	writeJSON(w, http.StatusOK, quote)
}
