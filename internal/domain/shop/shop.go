package shop

// Shop is a storefront listed in the directory.
type Shop struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Contact     string `json:"contact"`
	ImageURL    string `json:"image_url"`
}

// Input carries the editable fields of a shop.
type Input struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Contact     string `json:"contact"`
	ImageURL    string `json:"image_url"`
}

// WithID builds the shop an admin write echoes back.
func (in Input) WithID(id string) Shop {
	return Shop{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Address:     in.Address,
		Contact:     in.Contact,
		ImageURL:    in.ImageURL,
	}
}

// Input returns the editable part of s.
func (s Shop) Input() Input {
	return Input{
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		Address:     s.Address,
		Contact:     s.Contact,
		ImageURL:    s.ImageURL,
	}
}
