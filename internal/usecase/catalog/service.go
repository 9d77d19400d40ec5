package catalog

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	domcategory "example.com/sector17-directory/internal/domain/category"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
	"example.com/sector17-directory/internal/gateway"
)

// FilterOptions populates the search filter controls.
type FilterOptions struct {
	Categories []string          `json:"categories"`
	Shops      []string          `json:"shops"`
	Defaults   domproduct.Filter `json:"defaults"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Shops      int `json:"shops"`
	Products   int `json:"products"`
	Categories int `json:"categories"`
}

type Service struct {
	reader gateway.Reader
}

func NewService(reader gateway.Reader) *Service {
	return &Service{reader: reader}
}

func (s *Service) Search(ctx context.Context, query string, f domproduct.Filter) (gateway.Result[[]domproduct.Product], error) {
	return s.reader.SearchProducts(ctx, query, f)
}

func (s *Service) Shops(ctx context.Context) (gateway.Result[[]domshop.Shop], error) {
	return s.reader.GetShops(ctx)
}

func (s *Service) ShopDetails(ctx context.Context, id string) (gateway.Result[gateway.ShopDetails], error) {
	return s.reader.GetShopByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) (gateway.Result[[]domcategory.Category], error) {
	return s.reader.GetCategories(ctx)
}

func (s *Service) Products(ctx context.Context) (gateway.Result[[]domproduct.Product], error) {
	return s.reader.GetProducts(ctx)
}

// FilterOptions lists category names and shop names, each in catalog order
// without duplicates.
func (s *Service) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	var (
		categories []domcategory.Category
		shops      []domshop.Shop
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = fetch(gctx, "categories", s.reader.GetCategories)
		return err
	})
	g.Go(func() (err error) {
		shops, err = fetch(gctx, "shops", s.reader.GetShops)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := &FilterOptions{
		Categories: make([]string, 0, len(categories)),
		Shops:      make([]string, 0, len(shops)),
		Defaults:   domproduct.DefaultFilter(),
	}
	for _, c := range categories {
		if !slices.Contains(opts.Categories, c.Name) {
			opts.Categories = append(opts.Categories, c.Name)
		}
	}
	for _, sh := range shops {
		if !slices.Contains(opts.Shops, sh.Name) {
			opts.Shops = append(opts.Shops, sh.Name)
		}
	}
	return opts, nil
}

// Dashboard counts shops, products and categories.
func (s *Service) Dashboard(ctx context.Context) (*Stats, error) {
	var (
		shops      []domshop.Shop
		products   []domproduct.Product
		categories []domcategory.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		shops, err = fetch(gctx, "shops", s.reader.GetShops)
		return err
	})
	g.Go(func() (err error) {
		products, err = fetch(gctx, "products", s.reader.GetProducts)
		return err
	})
	g.Go(func() (err error) {
		categories, err = fetch(gctx, "categories", s.reader.GetCategories)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Stats{
		Shops:      len(shops),
		Products:   len(products),
		Categories: len(categories),
	}, nil
}

func fetch[T any](ctx context.Context, what string, op func(context.Context) (gateway.Result[T], error)) (T, error) {
	res, err := op(ctx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get %s: %w", what, err)
	}
	v, err := res.Value()
	if err != nil {
		return v, fmt.Errorf("get %s: %w", what, err)
	}
	return v, nil
}
