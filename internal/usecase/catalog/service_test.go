package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domcategory "example.com/sector17-directory/internal/domain/category"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
	"example.com/sector17-directory/internal/gateway"
	"example.com/sector17-directory/internal/infra/fixture"
)

// mockReader serves canned envelopes. It is read-only so the service may
// call it from several goroutines.
type mockReader struct {
	shops      gateway.Result[[]domshop.Shop]
	products   gateway.Result[[]domproduct.Product]
	categories gateway.Result[[]domcategory.Category]
	details    gateway.Result[gateway.ShopDetails]
	shopsErr   error
}

func (m *mockReader) SearchProducts(_ context.Context, query string, f domproduct.Filter) (gateway.Result[[]domproduct.Product], error) {
	return gateway.OK(domproduct.Search(m.products.Data, query, f)), nil
}

func (m *mockReader) GetShops(context.Context) (gateway.Result[[]domshop.Shop], error) {
	return m.shops, m.shopsErr
}

func (m *mockReader) GetShopByID(context.Context, string) (gateway.Result[gateway.ShopDetails], error) {
	return m.details, nil
}

func (m *mockReader) GetCategories(context.Context) (gateway.Result[[]domcategory.Category], error) {
	return m.categories, nil
}

func (m *mockReader) GetProducts(context.Context) (gateway.Result[[]domproduct.Product], error) {
	return m.products, nil
}

func newSampleReader() *mockReader {
	data := fixture.Sample()
	return &mockReader{
		shops:      gateway.OK(data.Shops),
		products:   gateway.OK(data.Products),
		categories: gateway.OK(data.Categories),
	}
}

func TestDashboard(t *testing.T) {
	svc := NewService(newSampleReader())

	stats, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	require.Equal(t, &Stats{Shops: 6, Products: 15, Categories: 7}, stats)
}

func TestDashboard_FailureEnvelope(t *testing.T) {
	reader := newSampleReader()
	reader.products = gateway.Fail[[]domproduct.Product]("database offline")
	svc := NewService(reader)

	_, err := svc.Dashboard(context.Background())

	require.ErrorIs(t, err, gateway.ErrFailure)
	require.ErrorContains(t, err, "get products")
	require.ErrorContains(t, err, "database offline")
}

func TestDashboard_TransportError(t *testing.T) {
	boom := errors.New("connection reset")
	reader := newSampleReader()
	reader.shopsErr = boom
	svc := NewService(reader)

	_, err := svc.Dashboard(context.Background())

	require.ErrorIs(t, err, boom)
}

func TestFilterOptions(t *testing.T) {
	svc := NewService(newSampleReader())

	opts, err := svc.FilterOptions(context.Background())

	require.NoError(t, err)
	require.Equal(t, []string{"Clothing", "Electronics", "Food", "Books", "Footwear", "Accessories", "Home Decor"}, opts.Categories)
	require.Len(t, opts.Shops, 6)
	require.Equal(t, "Gupta Garments", opts.Shops[0])
	require.Equal(t, domproduct.DefaultFilter(), opts.Defaults)
}

func TestFilterOptions_Deduplicates(t *testing.T) {
	reader := &mockReader{
		shops: gateway.OK([]domshop.Shop{{ID: "1", Name: "Twin"}, {ID: "2", Name: "Twin"}}),
		categories: gateway.OK([]domcategory.Category{
			{ID: "1", Name: "Food"}, {ID: "2", Name: "Food"}, {ID: "3", Name: "Books"},
		}),
	}
	svc := NewService(reader)

	opts, err := svc.FilterOptions(context.Background())

	require.NoError(t, err)
	require.Equal(t, []string{"Twin"}, opts.Shops)
	require.Equal(t, []string{"Food", "Books"}, opts.Categories)
}

func TestFilterOptions_EmptyCatalog(t *testing.T) {
	reader := &mockReader{
		shops:      gateway.OK([]domshop.Shop{}),
		categories: gateway.OK([]domcategory.Category{}),
	}
	svc := NewService(reader)

	opts, err := svc.FilterOptions(context.Background())

	require.NoError(t, err)
	require.NotNil(t, opts.Shops)
	require.Empty(t, opts.Shops)
	require.Empty(t, opts.Categories)
}

func TestReadsPassThrough(t *testing.T) {
	reader := newSampleReader()
	reader.details = gateway.OK(gateway.ShopDetails{Products: []domproduct.Product{}})
	svc := NewService(reader)
	ctx := context.Background()

	res, err := svc.Search(ctx, "saree", domproduct.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, res.Data, 1)

	details, err := svc.ShopDetails(ctx, "999")
	require.NoError(t, err)
	require.True(t, details.Success)
	require.Nil(t, details.Data.Shop)

	shops, err := svc.Shops(ctx)
	require.NoError(t, err)
	require.Len(t, shops.Data, 6)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories.Data, 7)

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products.Data, 15)
}
