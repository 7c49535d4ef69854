package favorite

import (
	"context"
	"errors"
	"time"

	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/logging"
	"github.com/wichananm65/food-order-backend/internal/metrics"
	"go.uber.org/zap"
)

var ErrInvalidUser = errors.New("invalid user")

// Service is the favourite store used by toggles. It also serves the
// favourites screen.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logging.OrNop(logger), now: time.Now}
}

func (s *Service) IsFavorite(ctx context.Context, userID, foodID int) (bool, error) {
	ok, err := s.repo.Exists(ctx, userID, foodID)
	if err != nil {
		s.logger.Warn("favorite probe failed", zap.Int("user_id", userID), zap.Int("food_id", foodID), zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (s *Service) Add(ctx context.Context, userID int, f food.Food) error {
	err := s.repo.Add(ctx, userID, fromFood(f, s.now().UTC()))
	metrics.RecordFavoriteToggle(Favorite.String(), err)
	if err != nil {
		s.logger.Warn("add favorite failed", zap.Int("user_id", userID), zap.Int("food_id", f.ID), zap.Error(err))
		return err
	}
	s.logger.Debug("favorite added", zap.Int("user_id", userID), zap.Int("food_id", f.ID))
	return nil
}

func (s *Service) Remove(ctx context.Context, userID, foodID int) error {
	err := s.repo.Remove(ctx, userID, foodID)
	metrics.RecordFavoriteToggle(NotFavorite.String(), err)
	if err != nil {
		s.logger.Warn("remove favorite failed", zap.Int("user_id", userID), zap.Int("food_id", foodID), zap.Error(err))
		return err
	}
	s.logger.Debug("favorite removed", zap.Int("user_id", userID), zap.Int("food_id", foodID))
	return nil
}

// Listed is a favourite as shown on the favourites screen.
type Listed struct {
	Saved
	FormattedPrice string `json:"formattedPrice"`
}

func (s *Service) List(ctx context.Context, userID int) ([]Listed, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, &food.FetchError{Op: "favorites", Err: err}
	}
	out := make([]Listed, 0, len(favs))
	for _, f := range favs {
		out = append(out, Listed{Saved: f, FormattedPrice: f.Price.Format()})
	}
	return out, nil
}
