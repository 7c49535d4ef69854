package order

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/logging"
	"github.com/wichananm65/food-order-backend/internal/metrics"
	"github.com/wichananm65/food-order-backend/internal/money"
	"github.com/wichananm65/food-order-backend/internal/session"
	"go.uber.org/zap"
)

// FoodSource is the detail source drafts are started from.
type FoodSource interface {
	GetByID(ctx context.Context, id int) (food.Food, error)
}

// draftSession is one detail screen's draft. mu serialises mutations coming
// from concurrent requests of the same session. closed is set under mu once
// the draft is submitted or discarded; requests that looked the session up
// before that must not touch it.
type draftSession struct {
	id     string
	userID int
	mu     sync.Mutex
	closed bool
	draft  *Draft
}

// View is what the presentation layer renders after every change.
type View struct {
	ID             string      `json:"id"`
	Food           food.Food   `json:"food"`
	Quantity       int         `json:"quantity"`
	Extras         []Line      `json:"extras"`
	Total          money.Money `json:"total"`
	FormattedTotal string      `json:"formattedTotal"`
}

func viewOf(id string, d *Draft) View {
	f := d.Food()
	f.Extras = nil
	total := Total(d)
	return View{
		ID:             id,
		Food:           f,
		Quantity:       d.Quantity(),
		Extras:         d.Lines(),
		Total:          total,
		FormattedTotal: total.Format(),
	}
}

// Drafts keeps the open drafts of every user, keyed by a random id.
type Drafts struct {
	sessions *session.Registry[string, *draftSession]
	foods    FoodSource
	orders   *Service
	logger   *zap.Logger
}

func NewDrafts(foods FoodSource, orders *Service, ttl time.Duration, logger *zap.Logger) *Drafts {
	d := &Drafts{foods: foods, orders: orders, logger: logging.OrNop(logger)}
	d.sessions = session.New[string, *draftSession](ttl,
		session.WithEvictHook[string, *draftSession](func(string, *draftSession) {
			metrics.SetDraftSessions(d.sessions.Len())
		}),
	)
	return d
}

// Run expires idle drafts until ctx is done.
func (d *Drafts) Run(ctx context.Context, interval time.Duration) {
	d.sessions.Run(ctx, interval)
}

// Start loads the food and opens a draft for it.
func (d *Drafts) Start(ctx context.Context, userID, foodID int) (View, error) {
	if userID <= 0 {
		return View{}, ErrInvalidUser
	}
	f, err := d.foods.GetByID(ctx, foodID)
	if err != nil {
		return View{}, err
	}

	s := &draftSession{id: uuid.NewString(), userID: userID, draft: NewDraft(f)}
	d.sessions.Put(s.id, s)
	metrics.SetDraftSessions(d.sessions.Len())
	d.logger.Debug("draft started", zap.String("draft_id", s.id), zap.Int("food_id", foodID), zap.Int("user_id", userID))
	return viewOf(s.id, s.draft), nil
}

// acquire looks the session up and returns it locked. The caller must
// unlock it.
func (d *Drafts) acquire(userID int, id string) (*draftSession, error) {
	s, ok := d.sessions.Get(id)
	if !ok || s.userID != userID {
		return nil, ErrDraftNotFound
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	return s, nil
}

// close marks s as finished and drops it. s.mu must be held.
func (d *Drafts) close(s *draftSession) {
	s.closed = true
	d.sessions.Delete(s.id)
}

// Get returns the current view of a draft.
func (d *Drafts) Get(userID int, id string) (View, error) {
	s, err := d.acquire(userID, id)
	if err != nil {
		return View{}, err
	}
	defer s.mu.Unlock()
	return viewOf(s.id, s.draft), nil
}

// Apply runs one mutation against a draft. The returned view reflects the
// draft after the mutation, or the unchanged draft when op fails.
func (d *Drafts) Apply(userID int, id string, op func(*Draft) error) (View, error) {
	s, err := d.acquire(userID, id)
	if err != nil {
		return View{}, err
	}
	defer s.mu.Unlock()
	err = op(s.draft)
	return viewOf(s.id, s.draft), err
}

// Submit sends the draft to the order sink and discards it on success.
// The session lock is held for the whole call so no mutation can slip in
// between the snapshot and the discard. A repeated submit of the same draft
// reports ErrDraftNotFound.
func (d *Drafts) Submit(ctx context.Context, userID int, id string) (Order, error) {
	s, err := d.acquire(userID, id)
	if err != nil {
		return Order{}, err
	}
	defer s.mu.Unlock()

	created, err := d.orders.Submit(ctx, userID, s.draft)
	if err != nil {
		return Order{}, err
	}
	d.close(s)
	return created, nil
}

// Discard drops a draft, e.g. when its screen is left.
func (d *Drafts) Discard(userID int, id string) error {
	s, err := d.acquire(userID, id)
	if err != nil {
		return err
	}
	defer s.mu.Unlock()
	d.close(s)
	return nil
}

// Len reports how many drafts are open.
func (d *Drafts) Len() int { return d.sessions.Len() }
