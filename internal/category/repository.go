package category

import (
	"context"
	"sync"
)

// Repository provides access to categories.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
}

// InMemoryRepository keeps categories in seed order.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{items: make([]Category, 0, len(seed))}
	r.items = append(r.items, seed...)
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.items))
	copy(out, r.items)
	return out, nil
}
