package favorite

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/money"
)

// Saved is the snapshot of a food saved when it was favourited.
type Saved struct {
	FoodID       int         `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        money.Money `json:"price"`
	CategoryID   int         `json:"category"`
	ThumbnailURL string      `json:"thumbnail_url"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func fromFood(f food.Food, at time.Time) Saved {
	return Saved{
		FoodID:       f.ID,
		Name:         f.Name,
		Description:  f.Description,
		Price:        f.Price,
		CategoryID:   f.CategoryID,
		ThumbnailURL: f.ThumbnailURL,
		CreatedAt:    at,
	}
}

// Repository provides access to favorite storage. Add of an existing
// favourite and Remove of a missing one are no-ops.
type Repository interface {
	Exists(ctx context.Context, userID, foodID int) (bool, error)
	Add(ctx context.Context, userID int, fav Saved) error
	Remove(ctx context.Context, userID, foodID int) error
	// ListByUser returns the user's favourites, most recent first.
	ListByUser(ctx context.Context, userID int) ([]Saved, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[int]map[int]Saved
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[int]map[int]Saved)}
}

func (r *InMemoryRepository) Exists(ctx context.Context, userID, foodID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[userID][foodID]
	return ok, nil
}

func (r *InMemoryRepository) Add(ctx context.Context, userID int, fav Saved) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	favs, ok := r.users[userID]
	if !ok {
		favs = make(map[int]Saved)
		r.users[userID] = favs
	}
	if _, exists := favs[fav.FoodID]; !exists {
		favs[fav.FoodID] = fav
	}
	return nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, userID, foodID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users[userID], foodID)
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID int) ([]Saved, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Saved, 0, len(r.users[userID]))
	for _, f := range r.users[userID] {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].FoodID < out[j].FoodID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
