package catalog

import (
	"context"

	"github.com/wichananm65/food-order-backend/internal/food"
)

// Source is the catalog read collaborator.
type Source interface {
	List(ctx context.Context) ([]food.Food, error)
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// List fetches the full catalog and derives the visible foods from it.
// Fetch failures are returned unchanged.
func (s *Service) List(ctx context.Context, f Filter) ([]food.Listed, error) {
	all, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := Visible(all, f)
	out := make([]food.Listed, 0, len(visible))
	for _, item := range visible {
		out = append(out, food.NewListed(item))
	}
	return out, nil
}
