package food

import "github.com/wichananm65/food-order-backend/internal/money"

// Food is a dish of the catalog. JSON tags follow the contract the mobile
// client already consumes (snake_case, `category` holds the category id).
type Food struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        money.Money `json:"price"`
	CategoryID   int         `json:"category"`
	ImageURL     string      `json:"image_url,omitempty"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
	Extras       []Extra     `json:"extras,omitempty"`
}

// Extra is an optional priced add-on that belongs to one Food.
type Extra struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Value money.Money `json:"value"`
}

// Extra looks up one of the food's extras by id.
func (f Food) Extra(id int) (Extra, bool) {
	for _, e := range f.Extras {
		if e.ID == id {
			return e, true
		}
	}
	return Extra{}, false
}

// Listed is the list-screen shape: the food plus its display price.
type Listed struct {
	Food
	FormattedPrice string `json:"formattedPrice"`
}

func NewListed(f Food) Listed {
	f.Extras = nil
	return Listed{Food: f, FormattedPrice: f.Price.Format()}
}
