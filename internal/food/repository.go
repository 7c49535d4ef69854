package food

import (
	"context"
	"sort"
	"sync"
)

// Repository is the catalog and detail source for foods.
type Repository interface {
	// List returns every food without extras, ordered by id.
	List(ctx context.Context) ([]Food, error)
	// GetByID returns one food including its extras.
	GetByID(ctx context.Context, id int) (Food, error)
	// ListByIDs returns the foods whose id is in ids, in the order of ids.
	// Unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []int) ([]Food, error)
}

// InMemoryRepository is used by tests and by the database-less entry point.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[int]Food
}

func NewInMemoryRepository(seed []Food) *InMemoryRepository {
	r := &InMemoryRepository{storage: make(map[int]Food, len(seed))}
	for _, f := range seed {
		r.storage[f.ID] = f
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Food, 0, len(r.storage))
	for _, f := range r.storage {
		f.Extras = nil
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.storage[id]
	if !ok {
		return Food{}, ErrNotFound
	}
	extras := make([]Extra, len(f.Extras))
	copy(extras, f.Extras)
	f.Extras = extras
	return f, nil
}

func (r *InMemoryRepository) ListByIDs(ctx context.Context, ids []int) ([]Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Food, 0, len(ids))
	for _, id := range ids {
		if f, ok := r.storage[id]; ok {
			f.Extras = nil
			out = append(out, f)
		}
	}
	return out, nil
}

// Put inserts or replaces a food.
func (r *InMemoryRepository) Put(f Food) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[f.ID] = f
}
