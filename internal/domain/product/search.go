package product

import "strings"

// Search returns the products matching query and f, keeping their input
// order. The query is a case-insensitive substring looked up in the name,
// shop name and description; a blank query matches everything. Filters are
// applied in the order text, category, shop, price.
func Search(products []Product, query string, f Filter) []Product {
	results := make([]Product, len(products))
	copy(results, products)

	if strings.TrimSpace(query) != "" {
		term := strings.ToLower(query)
		results = keep(results, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.ShopName), term) ||
				strings.Contains(strings.ToLower(p.Description), term)
		})
	}

	if f.CategoryActive() {
		results = keep(results, func(p Product) bool { return p.Category == f.Category })
	}

	if f.ShopActive() {
		results = keep(results, func(p Product) bool { return p.ShopName == f.Shop })
	}

	if f.MinPrice != nil {
		lo := *f.MinPrice
		results = keep(results, func(p Product) bool { return p.Price >= lo })
	}
	if f.MaxPrice != nil {
		hi := *f.MaxPrice
		results = keep(results, func(p Product) bool { return p.Price <= hi })
	}

	return results
}

// keep filters ps in place.
func keep(ps []Product, pred func(Product) bool) []Product {
	out := ps[:0]
	for _, p := range ps {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
