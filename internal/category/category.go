package category

// Category groups foods on the listing screen.
type Category struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url,omitempty"`
}
