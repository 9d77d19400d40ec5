package category

// Category names a filter option. Shops and products reference categories
// by name, not by ID.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
