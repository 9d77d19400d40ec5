package product

// All disables the category or shop filter.
const All = "all"

const (
	DefaultMinPrice float64 = 0
	DefaultMaxPrice float64 = 50000
)

// Filter is the conjunctive predicate applied by Search. A nil price bound
// imposes no constraint; an empty Category or Shop behaves like All.
type Filter struct {
	Category string   `json:"category"`
	Shop     string   `json:"shop"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// DefaultFilter is the filter a fresh storefront view starts with.
func DefaultFilter() Filter {
	return Filter{
		Category: All,
		Shop:     All,
		MinPrice: Price(DefaultMinPrice),
		MaxPrice: Price(DefaultMaxPrice),
	}
}

// Price returns a pointer to v, for filling price bounds.
func Price(v float64) *float64 {
	return &v
}

// CategoryActive reports whether the category predicate constrains anything.
func (f Filter) CategoryActive() bool {
	return f.Category != "" && f.Category != All
}

// ShopActive reports whether the shop predicate constrains anything.
func (f Filter) ShopActive() bool {
	return f.Shop != "" && f.Shop != All
}
