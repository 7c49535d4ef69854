package order

import (
	"sort"

	"github.com/wichananm65/food-order-backend/internal/food"
)

// Draft is the not-yet-submitted composition of one food, its quantity and
// the chosen extras. The food quantity never drops below 1 and an extra
// quantity never drops below 0; decrementing at the floor is a no-op.
//
// A Draft belongs to a single screen session and is not safe for concurrent
// use on its own.
type Draft struct {
	food     food.Food
	quantity int
	extras   map[int]int
}

// NewDraft starts a draft with one unit of f and no extras.
func NewDraft(f food.Food) *Draft {
	return &Draft{
		food:     f,
		quantity: 1,
		extras:   make(map[int]int),
	}
}

func (d *Draft) Food() food.Food { return d.food }

func (d *Draft) Quantity() int { return d.quantity }

// ExtraQuantity returns the chosen quantity of an extra; absent means 0.
func (d *Draft) ExtraQuantity(extraID int) int { return d.extras[extraID] }

// ExtraQuantities returns a copy of the extra id -> quantity mapping.
func (d *Draft) ExtraQuantities() map[int]int {
	out := make(map[int]int, len(d.extras))
	for id, qty := range d.extras {
		out[id] = qty
	}
	return out
}

func (d *Draft) IncrementFood() {
	d.quantity++
}

func (d *Draft) DecrementFood() {
	if d.quantity > 1 {
		d.quantity--
	}
}

// IncrementExtra adds one unit of an extra of the draft's food.
func (d *Draft) IncrementExtra(extraID int) error {
	if _, ok := d.food.Extra(extraID); !ok {
		return &UnknownExtraError{FoodID: d.food.ID, ExtraID: extraID}
	}
	d.extras[extraID]++
	return nil
}

// DecrementExtra removes one unit of an extra, stopping at 0.
func (d *Draft) DecrementExtra(extraID int) error {
	if _, ok := d.food.Extra(extraID); !ok {
		return &UnknownExtraError{FoodID: d.food.ID, ExtraID: extraID}
	}
	if d.extras[extraID] > 0 {
		d.extras[extraID]--
	}
	return nil
}

// Line is one extra of the food together with its chosen quantity.
type Line struct {
	food.Extra
	Quantity int `json:"quantity"`
}

// Lines lists every extra of the food in menu order with its quantity,
// including the ones still at 0.
func (d *Draft) Lines() []Line {
	out := make([]Line, 0, len(d.food.Extras))
	for _, e := range d.food.Extras {
		out = append(out, Line{Extra: e, Quantity: d.extras[e.ID]})
	}
	return out
}

// Chosen lists only the extras with a positive quantity, ordered by id.
func (d *Draft) Chosen() []Line {
	out := make([]Line, 0, len(d.extras))
	for id, qty := range d.extras {
		if qty <= 0 {
			continue
		}
		e, _ := d.food.Extra(id)
		out = append(out, Line{Extra: e, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
