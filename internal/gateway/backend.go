package gateway

import (
	"context"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	domcategory "example.com/sector17-directory/internal/domain/category"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
)

// Reader serves the public catalog reads.
type Reader interface {
	SearchProducts(ctx context.Context, query string, f domproduct.Filter) (Result[[]domproduct.Product], error)
	GetShops(ctx context.Context) (Result[[]domshop.Shop], error)
	GetShopByID(ctx context.Context, id string) (Result[ShopDetails], error)
	GetCategories(ctx context.Context) (Result[[]domcategory.Category], error)
	GetProducts(ctx context.Context) (Result[[]domproduct.Product], error)
}

// Authenticator checks admin credentials.
type Authenticator interface {
	AdminLogin(ctx context.Context, email, password string) (Result[domadmin.Session], error)
}

// Writer serves the admin mutations. The session is forwarded as-is; the
// backend decides what, if anything, to do with it.
type Writer interface {
	AddShop(ctx context.Context, sess domadmin.Session, in domshop.Input) (Result[domshop.Shop], error)
	UpdateShop(ctx context.Context, sess domadmin.Session, id string, in domshop.Input) (Result[domshop.Shop], error)
	DeleteShop(ctx context.Context, sess domadmin.Session, id string) (Ack, error)
	AddProduct(ctx context.Context, sess domadmin.Session, in domproduct.Input) (Result[domproduct.Product], error)
	UpdateProduct(ctx context.Context, sess domadmin.Session, id string, in domproduct.Input) (Result[domproduct.Product], error)
	DeleteProduct(ctx context.Context, sess domadmin.Session, id string) (Ack, error)
}

// Backend is one data-access strategy. Envelopes carry every expected
// outcome; a returned error means the operation itself was rejected
// (transport failure, undecodable response, cancelled context).
type Backend interface {
	Reader
	Authenticator
	Writer
	Name() string
}
