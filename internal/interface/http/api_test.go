package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
	"example.com/sector17-directory/internal/gateway"
	"example.com/sector17-directory/internal/infra/fixture"
	"example.com/sector17-directory/internal/infra/health"
	"example.com/sector17-directory/internal/infra/logger"
	"example.com/sector17-directory/internal/infra/remote"
	"example.com/sector17-directory/internal/infra/security"
	adminuc "example.com/sector17-directory/internal/usecase/admin"
	authuc "example.com/sector17-directory/internal/usecase/auth"
	cataloguc "example.com/sector17-directory/internal/usecase/catalog"
)

const testSecret = "test-secret"

type testEnv struct {
	router http.Handler
	tokens *security.JWTService
	health *health.Handler
}

func setupAPI(t *testing.T, burst int) *testEnv {
	t.Helper()
	hasher := security.NewBcryptService(bcrypt.MinCost)
	cred, err := hasher.Credential(fixture.DefaultAdminEmail, fixture.DefaultAdminPassword)
	require.NoError(t, err)

	tokens := security.NewJWTService(testSecret, time.Hour)
	backend := fixture.New(fixture.Sample(), []domadmin.Credential{cred}, hasher, tokens,
		fixture.WithLatency(fixture.Latency{}),
		fixture.WithClock(func() time.Time { return time.UnixMilli(1760000000000) }),
	)
	gw := gateway.New(backend, logger.Discard())
	h := health.NewHandler(gw.Name())

	api := NewAPI(Dependencies{
		CatalogService: cataloguc.NewService(gw),
		AdminService:   adminuc.NewService(gw),
		AuthService:    authuc.NewService(gw),
		TokenService:   tokens,
		Health:         h,
		Logger:         logger.Discard(),
		LoginRateRPS:   1,
		LoginRateBurst: burst,
	})
	return &testEnv{router: api.Router(), tokens: tokens, health: h}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, err := e.tokens.GenerateToken(fixture.DefaultAdminEmail)
	require.NoError(t, err)
	return token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) gateway.Result[T] {
	t.Helper()
	var res gateway.Result[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res), rec.Body.String())
	return res
}

func TestSearchProducts(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/api/products/search?q=saree", nil, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[[]domproduct.Product](t, rec)
	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	require.Equal(t, "2", res.Data[0].ID)
}

func TestSearchProducts_Filters(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/api/products/search?category=Food&minPrice=100&maxPrice=700", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[[]domproduct.Product](t, rec)
	for _, p := range res.Data {
		require.Equal(t, "Food", p.Category)
		require.GreaterOrEqual(t, p.Price, 100.0)
		require.LessOrEqual(t, p.Price, 700.0)
	}
}

func TestSearchProducts_NoMatchIsEmptyList(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/api/products/search?q=zzzz", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestSearchProducts_InvalidPriceReturns400(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/api/products/search?minPrice=cheap", nil, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	res := decode[any](t, rec)
	require.False(t, res.Success)
	require.Contains(t, res.Error, "minPrice")
}

func TestReadEndpoints(t *testing.T) {
	env := setupAPI(t, 10)
	tests := []struct {
		path    string
		wantLen int
	}{
		{path: "/api/shops", wantLen: 6},
		{path: "/api/products", wantLen: 15},
		{path: "/api/categories", wantLen: 7},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, nil, "")

			require.Equal(t, http.StatusOK, rec.Code)
			res := decode[[]map[string]any](t, rec)
			require.True(t, res.Success)
			require.Len(t, res.Data, tt.wantLen)
		})
	}
}

func TestGetShop(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/api/shops/3", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[gateway.ShopDetails](t, rec)
	require.Equal(t, "Sharma Sweets", res.Data.Shop.Name)
	require.Len(t, res.Data.Products, 3)
}

func TestGetShop_UnknownIsSuccess(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/api/shops/999", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"data":{"products":[]}}`, rec.Body.String())
}

func TestFilterOptions(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/api/filters", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[cataloguc.FilterOptions](t, rec)
	require.Len(t, res.Data.Categories, 7)
	require.Len(t, res.Data.Shops, 6)
	require.Equal(t, "all", res.Data.Defaults.Category)
}

func TestLogin(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@sector17.com", "password": "admin123",
	}, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[domadmin.Session](t, rec)
	require.True(t, res.Success)
	require.Equal(t, "admin@sector17.com", res.Data.Email)
	claims, err := env.tokens.ParseToken(res.Data.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@sector17.com", claims.Email)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name:       "wrong password",
			body:       map[string]string{"email": "admin@sector17.com", "password": "wrong"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid credentials",
		},
		{
			name:       "unknown email",
			body:       map[string]string{"email": "someone@sector17.com", "password": "admin123"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid credentials",
		},
		{
			name:       "malformed email",
			body:       map[string]string{"email": "admin", "password": "admin123"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password",
			body:       map[string]string{"email": "admin@sector17.com"},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupAPI(t, 10)

			rec := env.do(t, http.MethodPost, "/api/auth/login", tt.body, "")

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			res := decode[domadmin.Session](t, rec)
			require.False(t, res.Success)
			require.Empty(t, res.Data.Token)
			if tt.wantError != "" {
				require.Equal(t, tt.wantError, res.Error)
			}
		})
	}
}

func TestLogin_RateLimited(t *testing.T) {
	env := setupAPI(t, 2)
	body := map[string]string{"email": "admin@sector17.com", "password": "wrong"}

	require.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/api/auth/login", body, "").Code)
	require.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/api/auth/login", body, "").Code)
	rec := env.do(t, http.MethodPost, "/api/auth/login", body, "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.False(t, decode[any](t, rec).Success)
}

func TestWrites_RequireToken(t *testing.T) {
	env := setupAPI(t, 10)
	foreign, err := security.NewJWTService("other-secret", time.Hour).GenerateToken("admin@sector17.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{name: "no token", method: http.MethodPost, path: "/api/shops"},
		{name: "opaque token", method: http.MethodPut, path: "/api/shops/1", token: "mock_jwt_token_1760000000000"},
		{name: "foreign token", method: http.MethodDelete, path: "/api/products/1", token: foreign},
		{name: "stats", method: http.MethodGet, path: "/api/admin/stats"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, map[string]any{"name": "x", "category": "y"}, tt.token)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.False(t, decode[any](t, rec).Success)
		})
	}
}

func TestCreateShop(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodPost, "/api/shops", map[string]any{
		"name": "Chai Point", "category": "Food", "address": "SCO 40, Sector-17",
	}, env.adminToken(t))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	res := decode[domshop.Shop](t, rec)
	require.Equal(t, "1760000000000", res.Data.ID)
	require.Equal(t, "Chai Point", res.Data.Name)
}

func TestCreateShop_ValidationReturns400(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodPost, "/api/shops", map[string]any{"category": "Food"}, env.adminToken(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteShop(t *testing.T) {
	env := setupAPI(t, 10)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPut, "/api/shops/2", map[string]any{"name": "Tech Galaxy Pro", "category": "Electronics"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "2", decode[domshop.Shop](t, rec).Data.ID)

	rec = env.do(t, http.MethodPut, "/api/shops/999", map[string]any{"name": "Ghost", "category": "Food"}, token)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/shops/2", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[any](t, rec).Success)
}

func TestCreateProduct_ResolvesShopName(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodPost, "/api/products", map[string]any{
		"name": "Masala Chai", "price": 40, "category": "Food", "shop_id": "3", "shop_name": "whatever",
	}, env.adminToken(t))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	res := decode[domproduct.Product](t, rec)
	require.Equal(t, "Sharma Sweets", res.Data.ShopName)
	require.Equal(t, 40.0, res.Data.Price)
}

func TestProductWrites(t *testing.T) {
	env := setupAPI(t, 10)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/api/products", map[string]any{
		"name": "Ghost", "price": 1, "category": "Food", "shop_id": "999",
	}, token)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/products", map[string]any{
		"name": "Negative", "price": -1, "category": "Food", "shop_id": "3",
	}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/products/5", map[string]any{
		"name": "Kaju Katli (1kg)", "price": 900, "category": "Food", "shop_id": "3",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "5", decode[domproduct.Product](t, rec).Data.ID)

	rec = env.do(t, http.MethodDelete, "/api/products/5", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStats(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/api/admin/stats", nil, env.adminToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[cataloguc.Stats](t, rec)
	require.Equal(t, cataloguc.Stats{Shops: 6, Products: 15, Categories: 7}, res.Data)
}

func TestHealthAndMetrics(t *testing.T) {
	env := setupAPI(t, 10)

	rec := env.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"backend":"fixture"`)

	env.health.Register("snapshot", func(context.Context) error { return errors.New("gone") })
	rec = env.do(t, http.MethodGet, "/health/ready", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env.do(t, http.MethodGet, "/api/categories", nil, "")
	rec = env.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, "catalog_gateway_operations_total"))
	require.True(t, strings.Contains(body, "directory_http_requests_total"))
}

func TestCorrelationIDHeader(t *testing.T) {
	env := setupAPI(t, 10)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Correlation-ID"))

	rec = env.do(t, http.MethodGet, "/api/categories", nil, "")
	require.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

// The remote backend must be able to drive this server end to end.
func TestRemoteBackendRoundTrip(t *testing.T) {
	env := setupAPI(t, 10)
	srv := httptest.NewServer(env.router)
	defer srv.Close()
	rb := remote.New(srv.URL)
	ctx := context.Background()

	found, err := rb.SearchProducts(ctx, "shoes", domproduct.Filter{Category: "Footwear", Shop: "all", MaxPrice: domproduct.Price(3000)})
	require.NoError(t, err)
	require.True(t, found.Success)
	for _, p := range found.Data {
		require.Equal(t, "Footwear", p.Category)
	}

	details, err := rb.GetShopByID(ctx, "999")
	require.NoError(t, err)
	require.True(t, details.Success)
	require.Nil(t, details.Data.Shop)
	require.Empty(t, details.Data.Products)

	failed, err := rb.AdminLogin(ctx, "admin@sector17.com", "wrong")
	require.NoError(t, err)
	require.False(t, failed.Success)
	require.Equal(t, domadmin.InvalidCredentialsMessage, failed.Error)

	login, err := rb.AdminLogin(ctx, "admin@sector17.com", "admin123")
	require.NoError(t, err)
	require.True(t, login.Success)

	shop, err := rb.AddShop(ctx, login.Data, domshop.Input{Name: "Chai Point", Category: "Food"})
	require.NoError(t, err)
	require.True(t, shop.Success)
	require.Equal(t, "Chai Point", shop.Data.Name)

	denied, err := rb.DeleteShop(ctx, domadmin.Session{Token: "mock_jwt_token_1"}, "1")
	require.NoError(t, err)
	require.False(t, denied.Success)
	require.Equal(t, "unauthenticated", denied.Error)
}
