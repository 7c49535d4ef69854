package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/logging"
	"github.com/wichananm65/food-order-backend/internal/metrics"
	"go.uber.org/zap"
)

var ErrInvalidUser = errors.New("invalid user")

// FoodLister resolves the current catalog entries of past orders.
type FoodLister interface {
	ListByIDs(ctx context.Context, ids []int) ([]food.Food, error)
}

// Service provides business logic for orders.
type Service struct {
	repo   Repository
	foods  FoodLister
	logger *zap.Logger
	now    func() time.Time
}

// NewService builds the order service. foods may be nil, in which case past
// orders are returned without catalog enrichment.
func NewService(r Repository, foods FoodLister, logger *zap.Logger) *Service {
	return &Service{repo: r, foods: foods, logger: logging.OrNop(logger), now: time.Now}
}

// Submit hands a snapshot of the draft to the order sink. The draft itself
// is never modified; on failure the caller still holds it and may retry.
func (s *Service) Submit(ctx context.Context, userID int, d *Draft) (Order, error) {
	if userID <= 0 {
		return Order{}, ErrInvalidUser
	}

	ord := Snapshot(d, userID)
	ord.Reference = uuid.NewString()
	ord.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, ord)
	metrics.RecordOrderSubmit(err)
	if err != nil {
		s.logger.Error("order submission failed",
			zap.Int("user_id", userID),
			zap.Int("food_id", ord.FoodID),
			zap.String("reference", ord.Reference),
			zap.Error(err))
		return Order{}, &SubmitError{Err: err}
	}

	s.logger.Info("order submitted",
		zap.Int("user_id", userID),
		zap.Int("order_id", created.ID),
		zap.String("total", created.Total.String()))
	return created, nil
}

// List returns the user's past orders with the current thumbnail of each
// food. Enrichment failures are logged and skipped.
func (s *Service) List(ctx context.Context, userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, &food.FetchError{Op: "orders", Err: err}
	}
	if s.foods == nil || len(orders) == 0 {
		return orders, nil
	}

	foods, err := s.foods.ListByIDs(ctx, foodIDs(orders))
	if err != nil {
		s.logger.Warn("could not enrich orders", zap.Int("user_id", userID), zap.Error(err))
		return orders, nil
	}
	byID := indexFoods(foods)
	for i := range orders {
		if f, ok := byID[orders[i].FoodID]; ok && f.ThumbnailURL != "" {
			orders[i].ThumbnailURL = f.ThumbnailURL
		}
	}
	return orders, nil
}
