package favorite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wichananm65/food-order-backend/internal/food"
)

var (
	// ErrPending is returned when a toggle is issued while the previous one
	// has not settled yet.
	ErrPending = errors.New("favorite toggle already in flight")
	// ErrNotProbed is returned when a toggle is issued before the remote
	// status of the food is known.
	ErrNotProbed = errors.New("favorite status not probed yet")
)

// State of a favourite toggle.
type State int

const (
	Unknown State = iota
	NotFavorite
	Favorite
	Pending
)

func (s State) String() string {
	switch s {
	case NotFavorite:
		return "not_favorite"
	case Favorite:
		return "favorite"
	case Pending:
		return "pending"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Store is the remote favourite store the toggle reconciles with.
type Store interface {
	IsFavorite(ctx context.Context, userID, foodID int) (bool, error)
	Add(ctx context.Context, userID int, f food.Food) error
	Remove(ctx context.Context, userID, foodID int) error
}

// ToggleFailure is a failed add or remove. The toggle has already reverted
// its flag when one is recorded.
type ToggleFailure struct {
	Target State
	Err    error
}

func (e *ToggleFailure) Error() string {
	if e.Target == Favorite {
		return fmt.Sprintf("add favorite: %v", e.Err)
	}
	return fmt.Sprintf("remove favorite: %v", e.Err)
}

func (e *ToggleFailure) Unwrap() error { return e.Err }

// Notice is a transient message for the user.
type Notice struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const (
	NoticeAddFailed    = "favorite_add_failed"
	NoticeRemoveFailed = "favorite_remove_failed"
)

// Snapshot is what the presentation layer renders.
type Snapshot struct {
	FoodID     int      `json:"foodId"`
	State      State    `json:"state"`
	Target     *State   `json:"target,omitempty"`
	IsFavorite bool     `json:"isFavorite"`
	IsPending  bool     `json:"isPending"`
	Notices    []Notice `json:"notices,omitempty"`
}

type Option func(*Toggle)

// NotifyOnAddFailure controls whether a failed add leaves a notice.
func NotifyOnAddFailure(on bool) Option {
	return func(t *Toggle) { t.notifyAdd = on }
}

// NotifyOnRemoveFailure controls whether a failed remove leaves a notice.
func NotifyOnRemoveFailure(on bool) Option {
	return func(t *Toggle) { t.notifyRemove = on }
}

func WithClock(now func() time.Time) Option {
	return func(t *Toggle) { t.now = now }
}

// Toggle is the favourite flag of one food on one detail screen. The flag
// flips optimistically and the store call settles it in the background;
// a failed call reverts it.
type Toggle struct {
	store  Store
	userID int
	food   food.Food

	notifyAdd    bool
	notifyRemove bool
	now          func() time.Time

	mu          sync.Mutex
	state       State
	target      State
	settled     chan struct{}
	notices     []Notice
	lastFailure *ToggleFailure
}

// NewToggle starts in Unknown. By default a failed remove leaves a notice
// and a failed add only reverts the flag.
func NewToggle(store Store, userID int, f food.Food, opts ...Option) *Toggle {
	t := &Toggle{
		store:        store,
		userID:       userID,
		food:         f,
		notifyRemove: true,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Probe asks the store whether the food is already a favourite. A failed
// probe counts as "not a favourite". Results arriving after the toggle left
// Unknown are ignored.
func (t *Toggle) Probe(ctx context.Context) Snapshot {
	t.mu.Lock()
	if t.state != Unknown {
		defer t.mu.Unlock()
		return t.snapshotLocked()
	}
	t.mu.Unlock()

	fav, err := t.store.IsFavorite(ctx, t.userID, t.food.ID)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Unknown {
		if err == nil && fav {
			t.state = Favorite
		} else {
			t.state = NotFavorite
		}
	}
	return t.snapshotLocked()
}

// Toggle flips the flag and issues the store call. It returns the
// optimistic snapshot without waiting for the call. The call is not tied to
// ctx cancellation: once issued it always settles.
func (t *Toggle) Toggle(ctx context.Context) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var target State
	switch t.state {
	case Unknown:
		return t.snapshotLocked(), ErrNotProbed
	case Pending:
		return t.snapshotLocked(), ErrPending
	case NotFavorite:
		target = Favorite
	case Favorite:
		target = NotFavorite
	}

	prev := t.state
	done := make(chan struct{})
	t.state = Pending
	t.target = target
	t.settled = done

	go t.settle(context.WithoutCancel(ctx), prev, target, done)
	return t.snapshotLocked(), nil
}

func (t *Toggle) settle(ctx context.Context, prev, target State, done chan struct{}) {
	var err error
	if target == Favorite {
		err = t.store.Add(ctx, t.userID, t.food)
	} else {
		err = t.store.Remove(ctx, t.userID, t.food.ID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	defer close(done)
	t.settled = nil

	if err == nil {
		t.state = target
		t.lastFailure = nil
		return
	}

	t.state = prev
	t.lastFailure = &ToggleFailure{Target: target, Err: err}
	switch {
	case target == Favorite && t.notifyAdd:
		t.notices = append(t.notices, Notice{Kind: NoticeAddFailed, Message: "Não foi possível adicionar favorito", At: t.now()})
	case target == NotFavorite && t.notifyRemove:
		t.notices = append(t.notices, Notice{Kind: NoticeRemoveFailed, Message: "Não foi possível remover favorito", At: t.now()})
	}
}

// Wait blocks until the in-flight toggle, if any, has settled.
func (t *Toggle) Wait(ctx context.Context) error {
	t.mu.Lock()
	done := t.settled
	t.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current state without touching pending notices.
func (t *Toggle) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Consume returns the current state together with the pending notices and
// clears them, so each notice is shown once.
func (t *Toggle) Consume() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.snapshotLocked()
	s.Notices = t.notices
	t.notices = nil
	return s
}

// LastFailure is the failure of the most recent settlement, nil if it
// succeeded.
func (t *Toggle) LastFailure() *ToggleFailure {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastFailure
}

func (t *Toggle) snapshotLocked() Snapshot {
	s := Snapshot{FoodID: t.food.ID, State: t.state}
	switch t.state {
	case Favorite:
		s.IsFavorite = true
	case Pending:
		target := t.target
		s.Target = &target
		s.IsPending = true
		s.IsFavorite = target == Favorite
	}
	return s
}
