package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/rpipaliya/student-journal-api/internal/docs"
	"github.com/rpipaliya/student-journal-api/internal/handlers"
	"github.com/rpipaliya/student-journal-api/internal/middleware"
	"github.com/rpipaliya/student-journal-api/internal/repository"
)

// SetupRoutes mounts the API on the router. Validation rules are declared
// here next to the routes they guard, in evaluation order.
func SetupRoutes(r *chi.Mux, entries repository.EntryRepository, quotes repository.QuoteRepository) {
	entryHandler := handlers.NewEntryHandler(entries, quotes)
	quoteHandler := handlers.NewQuoteHandler(quotes)

	r.Get("/", handlers.Banner)
	r.Get("/api-docs", docs.Handler)

	r.Route("/entry", func(r chi.Router) {
		r.Get("/", entryHandler.List)

		r.With(middleware.Validate(
			middleware.Required("title", "Title is required"),
			middleware.Required("description", "Description is required"),
			middleware.Required("createdBy", "Creator name is required"),
			middleware.Required("quote", "Quote is required"),
			middleware.Required("author", "Author is required"),
		)).Post("/", entryHandler.Create)

		r.With(middleware.Validate(
			middleware.ExistingEntryID(entries),
		)).Get("/{id}", entryHandler.Get)

		r.With(middleware.Validate(
			middleware.ExistingEntryID(entries),
			middleware.Optional("title"),
			middleware.Optional("description"),
			middleware.Required("updatedBy", "Updator name is required"),
		)).Put("/{id}", entryHandler.Update)

		r.With(middleware.Validate(
			middleware.ExistingEntryID(entries),
		)).Delete("/{id}", entryHandler.Delete)
	})

	r.Route("/quote", func(r chi.Router) {
		r.With(middleware.Validate(
			middleware.Required("quote", "Quote is required"),
			middleware.Required("author", "Author is required"),
		)).Post("/", quoteHandler.Create)

		r.With(middleware.Validate(
			middleware.ExistingQuoteID(quotes),
		)).Get("/{id}", quoteHandler.Get)
	})
}
