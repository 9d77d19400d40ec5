package product

// Product is an item sold by a shop. ShopName duplicates the owning shop's
// name and must be kept equal to it by whoever writes the product.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	ShopID      string  `json:"shop_id"`
	ShopName    string  `json:"shop_name"`
}

// Input carries the editable fields of a product.
type Input struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	ShopID      string  `json:"shop_id"`
	ShopName    string  `json:"shop_name"`
}

// WithID builds the product an admin write echoes back.
func (in Input) WithID(id string) Product {
	return Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		ShopID:      in.ShopID,
		ShopName:    in.ShopName,
	}
}

// Input returns the editable part of p.
func (p Product) Input() Input {
	return Input{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		ShopID:      p.ShopID,
		ShopName:    p.ShopName,
	}
}

// ByShop returns the products owned by shopID in catalog order.
func ByShop(products []Product, shopID string) []Product {
	out := make([]Product, 0)
	for _, p := range products {
		if p.ShopID == shopID {
			out = append(out, p)
		}
	}
	return out
}
