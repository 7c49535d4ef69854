package favorite

import (
	"context"
	"time"

	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/session"
)

// FoodSource loads the food a toggle is opened for.
type FoodSource interface {
	GetByID(ctx context.Context, id int) (food.Food, error)
}

// Key identifies the toggle of one detail screen.
type Key struct {
	UserID int
	FoodID int
}

// Registry holds the open toggles, one per (user, food).
type Registry struct {
	toggles *session.Registry[Key, *Toggle]
	store   Store
	foods   FoodSource
	opts    []Option
}

func NewRegistry(store Store, foods FoodSource, ttl time.Duration, opts ...Option) *Registry {
	return &Registry{
		toggles: session.New[Key, *Toggle](ttl),
		store:   store,
		foods:   foods,
		opts:    opts,
	}
}

// Run expires idle toggles until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	r.toggles.Run(ctx, interval)
}

// Open returns the toggle for (user, food), creating it and probing the
// store the first time.
func (r *Registry) Open(ctx context.Context, userID, foodID int) (*Toggle, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	key := Key{UserID: userID, FoodID: foodID}
	t, ok := r.toggles.Get(key)
	if !ok {
		f, err := r.foods.GetByID(ctx, foodID)
		if err != nil {
			return nil, err
		}
		t, _ = r.toggles.GetOrCreate(key, func() *Toggle {
			return NewToggle(r.store, userID, f, r.opts...)
		})
	}
	t.Probe(ctx)
	return t, nil
}

// Toggle flips an open toggle. A toggle that was never opened has not been
// probed either.
func (r *Registry) Toggle(ctx context.Context, userID, foodID int) (Snapshot, error) {
	t, ok := r.toggles.Get(Key{UserID: userID, FoodID: foodID})
	if !ok {
		return Snapshot{FoodID: foodID, State: Unknown}, ErrNotProbed
	}
	return t.Toggle(ctx)
}

// Close forgets the toggle. An in-flight store call still completes.
func (r *Registry) Close(userID, foodID int) {
	r.toggles.Delete(Key{UserID: userID, FoodID: foodID})
}

func (r *Registry) Len() int { return r.toggles.Len() }
