package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/food-order-backend/internal/food"
)

type stubLister struct {
	foods []food.Food
	err   error
}

func (s stubLister) ListByIDs(ctx context.Context, ids []int) ([]food.Food, error) {
	return s.foods, s.err
}

func TestSubmitDoesNotTouchDraft(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil, nil)
	d := NewDraft(sampleFood())
	d.IncrementFood()

	ord, err := svc.Submit(context.Background(), 3, d)
	require.NoError(t, err)
	assert.Equal(t, 2, ord.Quantity)
	assert.Equal(t, "20.00", ord.Total.String())
	assert.False(t, ord.CreatedAt.IsZero())
	assert.Equal(t, 2, d.Quantity())
}

func TestSubmitRejectsAnonymous(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil, nil)
	_, err := svc.Submit(context.Background(), 0, NewDraft(sampleFood()))
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestListEnrichesThumbnails(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, stubLister{foods: []food.Food{{ID: 1, ThumbnailURL: "https://cdn/ao-molho.png"}}}, nil)
	_, err := svc.Submit(context.Background(), 3, NewDraft(sampleFood()))
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), 4, NewDraft(sampleFood()))
	require.NoError(t, err)

	orders, err := svc.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "https://cdn/ao-molho.png", orders[0].ThumbnailURL)
}

func TestListIgnoresEnrichmentFailure(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, stubLister{err: errors.New("catalog down")}, nil)
	_, err := svc.Submit(context.Background(), 3, NewDraft(sampleFood()))
	require.NoError(t, err)

	orders, err := svc.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
