package fixture

import (
	"context"
	"fmt"
	"slices"

	domcategory "example.com/sector17-directory/internal/domain/category"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
)

// Dataset is the read-only catalog the fixture backend serves.
type Dataset struct {
	Shops      []domshop.Shop
	Products   []domproduct.Product
	Categories []domcategory.Category
}

// Clone returns a deep-enough copy of d: the slices are fresh, the
// elements are plain values.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Shops:      slices.Clone(d.Shops),
		Products:   slices.Clone(d.Products),
		Categories: slices.Clone(d.Categories),
	}
}

// LoadDataset reads a catalog snapshot once from the given repositories.
func LoadDataset(
	ctx context.Context,
	shops domshop.Repository,
	products domproduct.Repository,
	categories domcategory.Repository,
) (Dataset, error) {
	s, err := shops.List(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("load shops: %w", err)
	}
	p, err := products.List(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("load products: %w", err)
	}
	c, err := categories.List(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("load categories: %w", err)
	}
	return Dataset{Shops: s, Products: p, Categories: c}, nil
}
