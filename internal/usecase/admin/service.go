package admin

import (
	"context"
	"fmt"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
	"example.com/sector17-directory/internal/gateway"
)

// Catalog is what the admin console needs from the gateway.
type Catalog interface {
	GetShopByID(ctx context.Context, id string) (gateway.Result[gateway.ShopDetails], error)
	gateway.Writer
}

// Service runs admin writes. Every call takes the caller's session; a
// session without a token is refused before anything reaches the backend.
type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) CreateShop(ctx context.Context, sess domadmin.Session, in domshop.Input) (gateway.Result[domshop.Shop], error) {
	if !sess.Valid() {
		return gateway.Result[domshop.Shop]{}, domadmin.ErrNoSession
	}
	return s.catalog.AddShop(ctx, sess, in)
}

// UpdateShop saves the shop and, when its name changed, re-saves each of
// its products so their shop_name follows.
func (s *Service) UpdateShop(ctx context.Context, sess domadmin.Session, id string, in domshop.Input) (gateway.Result[domshop.Shop], error) {
	if !sess.Valid() {
		return gateway.Result[domshop.Shop]{}, domadmin.ErrNoSession
	}

	current, err := s.lookupShop(ctx, id)
	if err != nil {
		return gateway.Result[domshop.Shop]{}, err
	}

	res, err := s.catalog.UpdateShop(ctx, sess, id, in)
	if err != nil || !res.Success || current.Shop.Name == res.Data.Name {
		return res, err
	}

	for _, p := range current.Products {
		pin := p.Input()
		pin.ShopName = res.Data.Name
		pres, err := s.catalog.UpdateProduct(ctx, sess, p.ID, pin)
		if err != nil {
			return res, fmt.Errorf("rename shop %s: update product %s: %w", id, p.ID, err)
		}
		if !pres.Success {
			return res, fmt.Errorf("rename shop %s: update product %s: %w: %s", id, p.ID, domadmin.ErrOperationFailed, pres.Error)
		}
	}
	return res, nil
}

func (s *Service) DeleteShop(ctx context.Context, sess domadmin.Session, id string) (gateway.Ack, error) {
	if !sess.Valid() {
		return gateway.Ack{}, domadmin.ErrNoSession
	}
	return s.catalog.DeleteShop(ctx, sess, id)
}

// SaveProduct adds the product when id is empty and updates it otherwise.
// shop_name is always taken from the shop that shop_id names.
func (s *Service) SaveProduct(ctx context.Context, sess domadmin.Session, id string, in domproduct.Input) (gateway.Result[domproduct.Product], error) {
	if !sess.Valid() {
		return gateway.Result[domproduct.Product]{}, domadmin.ErrNoSession
	}

	owner, err := s.lookupShop(ctx, in.ShopID)
	if err != nil {
		return gateway.Result[domproduct.Product]{}, err
	}
	in.ShopName = owner.Shop.Name

	if id == "" {
		return s.catalog.AddProduct(ctx, sess, in)
	}
	return s.catalog.UpdateProduct(ctx, sess, id, in)
}

func (s *Service) DeleteProduct(ctx context.Context, sess domadmin.Session, id string) (gateway.Ack, error) {
	if !sess.Valid() {
		return gateway.Ack{}, domadmin.ErrNoSession
	}
	return s.catalog.DeleteProduct(ctx, sess, id)
}

func (s *Service) lookupShop(ctx context.Context, id string) (gateway.ShopDetails, error) {
	if id == "" {
		return gateway.ShopDetails{}, domshop.ErrShopNotFound
	}
	res, err := s.catalog.GetShopByID(ctx, id)
	if err != nil {
		return gateway.ShopDetails{}, fmt.Errorf("look up shop %s: %w", id, err)
	}
	details, err := res.Value()
	if err != nil {
		return gateway.ShopDetails{}, fmt.Errorf("look up shop %s: %w", id, err)
	}
	if details.Shop == nil {
		return gateway.ShopDetails{}, fmt.Errorf("%w: %s", domshop.ErrShopNotFound, id)
	}
	return details, nil
}
