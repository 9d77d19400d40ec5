package gateway

import (
	"context"
	"log/slog"
	"time"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	domcategory "example.com/sector17-directory/internal/domain/category"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
	"example.com/sector17-directory/internal/infra/logger"
)

var _ Backend = (*Gateway)(nil)

// Gateway is the single seam every catalog read and admin write passes
// through. The backend strategy is chosen once, when the Gateway is built.
type Gateway struct {
	backend Backend
	logger  *slog.Logger
}

func New(backend Backend, l *slog.Logger) *Gateway {
	return &Gateway{backend: backend, logger: l}
}

// Name reports the backend strategy in use.
func (g *Gateway) Name() string {
	return g.backend.Name()
}

func (g *Gateway) SearchProducts(ctx context.Context, query string, f domproduct.Filter) (Result[[]domproduct.Product], error) {
	return call(ctx, g, "searchProducts", func() (Result[[]domproduct.Product], error) {
		return g.backend.SearchProducts(ctx, query, f)
	})
}

func (g *Gateway) GetShops(ctx context.Context) (Result[[]domshop.Shop], error) {
	return call(ctx, g, "getShops", func() (Result[[]domshop.Shop], error) {
		return g.backend.GetShops(ctx)
	})
}

func (g *Gateway) GetShopByID(ctx context.Context, id string) (Result[ShopDetails], error) {
	return call(ctx, g, "getShopById", func() (Result[ShopDetails], error) {
		return g.backend.GetShopByID(ctx, id)
	})
}

func (g *Gateway) GetCategories(ctx context.Context) (Result[[]domcategory.Category], error) {
	return call(ctx, g, "getCategories", func() (Result[[]domcategory.Category], error) {
		return g.backend.GetCategories(ctx)
	})
}

func (g *Gateway) GetProducts(ctx context.Context) (Result[[]domproduct.Product], error) {
	return call(ctx, g, "getProducts", func() (Result[[]domproduct.Product], error) {
		return g.backend.GetProducts(ctx)
	})
}

func (g *Gateway) AdminLogin(ctx context.Context, email, password string) (Result[domadmin.Session], error) {
	return call(ctx, g, "adminLogin", func() (Result[domadmin.Session], error) {
		return g.backend.AdminLogin(ctx, email, password)
	})
}

func (g *Gateway) AddShop(ctx context.Context, sess domadmin.Session, in domshop.Input) (Result[domshop.Shop], error) {
	return call(ctx, g, "addShop", func() (Result[domshop.Shop], error) {
		return g.backend.AddShop(ctx, sess, in)
	})
}

func (g *Gateway) UpdateShop(ctx context.Context, sess domadmin.Session, id string, in domshop.Input) (Result[domshop.Shop], error) {
	return call(ctx, g, "updateShop", func() (Result[domshop.Shop], error) {
		return g.backend.UpdateShop(ctx, sess, id, in)
	})
}

func (g *Gateway) DeleteShop(ctx context.Context, sess domadmin.Session, id string) (Ack, error) {
	return call(ctx, g, "deleteShop", func() (Ack, error) {
		return g.backend.DeleteShop(ctx, sess, id)
	})
}

func (g *Gateway) AddProduct(ctx context.Context, sess domadmin.Session, in domproduct.Input) (Result[domproduct.Product], error) {
	return call(ctx, g, "addProduct", func() (Result[domproduct.Product], error) {
		return g.backend.AddProduct(ctx, sess, in)
	})
}

func (g *Gateway) UpdateProduct(ctx context.Context, sess domadmin.Session, id string, in domproduct.Input) (Result[domproduct.Product], error) {
	return call(ctx, g, "updateProduct", func() (Result[domproduct.Product], error) {
		return g.backend.UpdateProduct(ctx, sess, id, in)
	})
}

func (g *Gateway) DeleteProduct(ctx context.Context, sess domadmin.Session, id string) (Ack, error) {
	return call(ctx, g, "deleteProduct", func() (Ack, error) {
		return g.backend.DeleteProduct(ctx, sess, id)
	})
}

// call runs one backend operation, recording metrics and logs. Errors are
// returned unchanged.
func call[T any](ctx context.Context, g *Gateway, op string, fn func() (Result[T], error)) (Result[T], error) {
	start := time.Now()
	res, err := fn()
	elapsed := time.Since(start)

	backend := g.backend.Name()
	operationDuration.WithLabelValues(backend, op).Observe(elapsed.Seconds())

	l := logger.WithContext(ctx, g.logger)
	switch {
	case err != nil:
		operationsTotal.WithLabelValues(backend, op, outcomeRejected).Inc()
		l.ErrorContext(ctx, "catalog operation rejected",
			slog.String("backend", backend),
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
	case !res.Success:
		operationsTotal.WithLabelValues(backend, op, outcomeFailure).Inc()
		l.InfoContext(ctx, "catalog operation failed",
			slog.String("backend", backend),
			slog.String("operation", op),
			slog.String("reason", res.Error),
		)
	default:
		operationsTotal.WithLabelValues(backend, op, outcomeSuccess).Inc()
		l.DebugContext(ctx, "catalog operation",
			slog.String("backend", backend),
			slog.String("operation", op),
			slog.Duration("duration", elapsed),
		)
	}
	return res, err
}
