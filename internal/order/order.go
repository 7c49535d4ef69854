package order

import (
	"time"

	"github.com/wichananm65/food-order-backend/internal/food"
	"github.com/wichananm65/food-order-backend/internal/money"
)

// Order is the snapshot of a submitted draft.
type Order struct {
	ID           int         `json:"id"`
	Reference    string      `json:"reference"`
	UserID       int         `json:"userId"`
	FoodID       int         `json:"food_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        money.Money `json:"price"`
	CategoryID   int         `json:"category"`
	Quantity     int         `json:"quantity"`
	Extras       []Line      `json:"extras"`
	Total        money.Money `json:"total"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// FormattedTotal is shown on the orders screen.
func (o Order) FormattedTotal() string { return o.Total.Format() }

// Snapshot freezes a draft into the order sent to the sink.
func Snapshot(d *Draft, userID int) Order {
	f := d.Food()
	return Order{
		UserID:       userID,
		FoodID:       f.ID,
		Name:         f.Name,
		Description:  f.Description,
		Price:        f.Price,
		CategoryID:   f.CategoryID,
		Quantity:     d.Quantity(),
		Extras:       d.Chosen(),
		Total:        Total(d),
		ThumbnailURL: f.ThumbnailURL,
	}
}

// foodIDs collects the distinct food ids of orders, keeping first-seen order.
func foodIDs(orders []Order) []int {
	seen := make(map[int]struct{}, len(orders))
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.FoodID]; ok {
			continue
		}
		seen[o.FoodID] = struct{}{}
		ids = append(ids, o.FoodID)
	}
	return ids
}

func indexFoods(foods []food.Food) map[int]food.Food {
	out := make(map[int]food.Food, len(foods))
	for _, f := range foods {
		out[f.ID] = f
	}
	return out
}
