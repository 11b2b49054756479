// Package repositorytest provides in-memory repository fakes for tests.
package repositorytest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rpipaliya/student-journal-api/internal/models"
)

// EntryRepo is an in-memory EntryRepository with error injection. Entries are
// returned in insertion order.
type EntryRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	byID  map[primitive.ObjectID]models.Entry

	FindAllErr error
	FindErr    error
	SaveErr    error
	RemoveErr  error

	SaveCalls   int
	RemoveCalls int
}

func NewEntryRepo() *EntryRepo {
	return &EntryRepo{byID: map[primitive.ObjectID]models.Entry{}}
}

// Seed stores an entry directly, assigning an ID when missing.
func (f *EntryRepo) Seed(entry models.Entry) models.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if _, ok := f.byID[entry.ID]; !ok {
		f.order = append(f.order, entry.ID)
	}
	f.byID[entry.ID] = entry
	return entry
}

func (f *EntryRepo) FindAll(ctx context.Context) ([]models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FindAllErr != nil {
		return nil, f.FindAllErr
	}
	entries := make([]models.Entry, 0, len(f.order))
	for _, id := range f.order {
		entries = append(entries, f.byID[id])
	}
	return entries, nil
}

func (f *EntryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	entry, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (f *EntryRepo) Save(ctx context.Context, entry *models.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if _, ok := f.byID[entry.ID]; !ok {
		f.order = append(f.order, entry.ID)
	}
	f.byID[entry.ID] = *entry
	return nil
}

func (f *EntryRepo) Remove(ctx context.Context, entry *models.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RemoveCalls++
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	delete(f.byID, entry.ID)
	for i, id := range f.order {
		if id == entry.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the stored entry, if any.
func (f *EntryRepo) Get(id primitive.ObjectID) (models.Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.byID[id]
	return entry, ok
}

// QuoteRepo is an in-memory QuoteRepository with error injection.
type QuoteRepo struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]models.Quote

	FindErr error
	SaveErr error

	SaveCalls int
}

func NewQuoteRepo() *QuoteRepo {
	return &QuoteRepo{byID: map[primitive.ObjectID]models.Quote{}}
}

func (f *QuoteRepo) Seed(quote models.Quote) models.Quote {
	f.mu.Lock()
	defer f.mu.Unlock()
	if quote.ID.IsZero() {
		quote.ID = primitive.NewObjectID()
	}
	f.byID[quote.ID] = quote
	return quote
}

func (f *QuoteRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	quote, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &quote, nil
}

func (f *QuoteRepo) Save(ctx context.Context, quote *models.Quote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	if quote.ID.IsZero() {
		quote.ID = primitive.NewObjectID()
	}
	f.byID[quote.ID] = *quote
	return nil
}

// Get returns the stored quote, if any.
func (f *QuoteRepo) Get(id primitive.ObjectID) (models.Quote, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	quote, ok := f.byID[id]
	return quote, ok
}
