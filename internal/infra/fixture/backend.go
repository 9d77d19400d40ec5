package fixture

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	domcategory "example.com/sector17-directory/internal/domain/category"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
	"example.com/sector17-directory/internal/gateway"
)

const Name = "fixture"

var _ gateway.Backend = (*Backend)(nil)

// Latency is the artificial delay applied before each kind of operation.
type Latency struct {
	Search      time.Duration
	Shops       time.Duration
	ShopDetails time.Duration
	Categories  time.Duration
	Products    time.Duration
	Login       time.Duration
	Write       time.Duration
}

// DefaultLatency emulates a slow network for UI work.
func DefaultLatency() Latency {
	return Latency{
		Search:      300 * time.Millisecond,
		Shops:       200 * time.Millisecond,
		ShopDetails: 200 * time.Millisecond,
		Categories:  100 * time.Millisecond,
		Products:    200 * time.Millisecond,
		Login:       500 * time.Millisecond,
		Write:       300 * time.Millisecond,
	}
}

type PasswordComparer interface {
	Compare(hash string, password string) error
}

type TokenGenerator interface {
	GenerateToken(email string) (string, error)
}

// Backend serves the catalog from a static dataset. Writes are simulated:
// they succeed and echo their input, but the dataset never changes, so the
// backend needs no locking.
type Backend struct {
	data        Dataset
	credentials []domadmin.Credential
	checker     PasswordComparer
	tokens      TokenGenerator
	latency     Latency
	now         func() time.Time
}

type Option func(*Backend)

func WithLatency(l Latency) Option {
	return func(b *Backend) { b.latency = l }
}

func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

func New(
	data Dataset,
	credentials []domadmin.Credential,
	checker PasswordComparer,
	tokens TokenGenerator,
	opts ...Option,
) *Backend {
	b := &Backend{
		data:        data.Clone(),
		credentials: slices.Clone(credentials),
		checker:     checker,
		tokens:      tokens,
		latency:     DefaultLatency(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Name() string {
	return Name
}

func (b *Backend) SearchProducts(ctx context.Context, query string, f domproduct.Filter) (gateway.Result[[]domproduct.Product], error) {
	if err := wait(ctx, b.latency.Search); err != nil {
		return gateway.Result[[]domproduct.Product]{}, err
	}
	return gateway.OK(domproduct.Search(b.data.Products, query, f)), nil
}

func (b *Backend) GetShops(ctx context.Context) (gateway.Result[[]domshop.Shop], error) {
	if err := wait(ctx, b.latency.Shops); err != nil {
		return gateway.Result[[]domshop.Shop]{}, err
	}
	return gateway.OK(slices.Clone(b.data.Shops)), nil
}

// GetShopByID answers an unknown id with a successful, empty payload.
func (b *Backend) GetShopByID(ctx context.Context, id string) (gateway.Result[gateway.ShopDetails], error) {
	if err := wait(ctx, b.latency.ShopDetails); err != nil {
		return gateway.Result[gateway.ShopDetails]{}, err
	}

	details := gateway.ShopDetails{Products: domproduct.ByShop(b.data.Products, id)}
	if i := slices.IndexFunc(b.data.Shops, func(s domshop.Shop) bool { return s.ID == id }); i >= 0 {
		s := b.data.Shops[i]
		details.Shop = &s
	}
	return gateway.OK(details), nil
}

func (b *Backend) GetCategories(ctx context.Context) (gateway.Result[[]domcategory.Category], error) {
	if err := wait(ctx, b.latency.Categories); err != nil {
		return gateway.Result[[]domcategory.Category]{}, err
	}
	return gateway.OK(slices.Clone(b.data.Categories)), nil
}

func (b *Backend) GetProducts(ctx context.Context) (gateway.Result[[]domproduct.Product], error) {
	if err := wait(ctx, b.latency.Products); err != nil {
		return gateway.Result[[]domproduct.Product]{}, err
	}
	return gateway.OK(slices.Clone(b.data.Products)), nil
}

func (b *Backend) AdminLogin(ctx context.Context, email, password string) (gateway.Result[domadmin.Session], error) {
	if err := wait(ctx, b.latency.Login); err != nil {
		return gateway.Result[domadmin.Session]{}, err
	}

	for _, c := range b.credentials {
		if c.Email != email {
			continue
		}
		if b.checker.Compare(c.PasswordHash, password) != nil {
			break
		}
		token, err := b.tokens.GenerateToken(c.Email)
		if err != nil {
			return gateway.Result[domadmin.Session]{}, fmt.Errorf("generate token: %w", err)
		}
		return gateway.OK(domadmin.Session{Token: token, Email: c.Email}), nil
	}
	return gateway.Fail[domadmin.Session](domadmin.InvalidCredentialsMessage), nil
}

func (b *Backend) AddShop(ctx context.Context, _ domadmin.Session, in domshop.Input) (gateway.Result[domshop.Shop], error) {
	if err := wait(ctx, b.latency.Write); err != nil {
		return gateway.Result[domshop.Shop]{}, err
	}
	return gateway.OK(in.WithID(b.nextID())), nil
}

func (b *Backend) UpdateShop(ctx context.Context, _ domadmin.Session, id string, in domshop.Input) (gateway.Result[domshop.Shop], error) {
	if err := wait(ctx, b.latency.Write); err != nil {
		return gateway.Result[domshop.Shop]{}, err
	}
	return gateway.OK(in.WithID(id)), nil
}

func (b *Backend) DeleteShop(ctx context.Context, _ domadmin.Session, _ string) (gateway.Ack, error) {
	if err := wait(ctx, b.latency.Write); err != nil {
		return gateway.Ack{}, err
	}
	return gateway.Ack{Success: true}, nil
}

func (b *Backend) AddProduct(ctx context.Context, _ domadmin.Session, in domproduct.Input) (gateway.Result[domproduct.Product], error) {
	if err := wait(ctx, b.latency.Write); err != nil {
		return gateway.Result[domproduct.Product]{}, err
	}
	return gateway.OK(in.WithID(b.nextID())), nil
}

func (b *Backend) UpdateProduct(ctx context.Context, _ domadmin.Session, id string, in domproduct.Input) (gateway.Result[domproduct.Product], error) {
	if err := wait(ctx, b.latency.Write); err != nil {
		return gateway.Result[domproduct.Product]{}, err
	}
	return gateway.OK(in.WithID(id)), nil
}

func (b *Backend) DeleteProduct(ctx context.Context, _ domadmin.Session, _ string) (gateway.Ack, error) {
	if err := wait(ctx, b.latency.Write); err != nil {
		return gateway.Ack{}, err
	}
	return gateway.Ack{Success: true}, nil
}

// nextID synthesizes an identity from the current time in milliseconds.
func (b *Backend) nextID() string {
	return strconv.FormatInt(b.now().UnixMilli(), 10)
}

// wait sleeps for d unless ctx ends first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
