package order

import "github.com/wichananm65/food-order-backend/internal/money"

// Total is the running price of a draft:
//
//	food.Price*quantity + Σ extra.Value*extraQuantity
//
// Accumulation is exact, so the order the extras are visited in cannot change
// the result. Rounding to cents is left to formatting.
func Total(d *Draft) money.Money {
	total := d.food.Price.Times(d.quantity)
	for id, qty := range d.extras {
		if qty == 0 {
			continue
		}
		if e, ok := d.food.Extra(id); ok {
			total = total.Add(e.Value.Times(qty))
		}
	}
	return total
}
