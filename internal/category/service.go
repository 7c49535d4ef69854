package category

import (
	"context"

	"github.com/wichananm65/food-order-backend/internal/food"
)

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, &food.FetchError{Op: "categories", Err: err}
	}
	return items, nil
}
