package food

import (
	"context"
	"errors"
)

// Service is the read side used by the listing and detail screens.
// Repository failures come back as *FetchError; ErrNotFound is kept as is.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Food, error) {
	foods, err := s.repo.List(ctx)
	if err != nil {
		return nil, &FetchError{Op: "foods", Err: err}
	}
	return foods, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (Food, error) {
	if id <= 0 {
		return Food{}, ErrNotFound
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Food{}, ErrNotFound
		}
		return Food{}, &FetchError{Op: "food detail", Err: err}
	}
	return f, nil
}

func (s *Service) ListByIDs(ctx context.Context, ids []int) ([]Food, error) {
	foods, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, &FetchError{Op: "foods by id", Err: err}
	}
	return foods, nil
}
