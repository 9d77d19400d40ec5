// Package remote talks to the directory HTTP API. Every response body is
// decoded as the catalog envelope and returned verbatim, whatever the HTTP
// status; only transport and decoding problems become Go errors.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	domcategory "example.com/sector17-directory/internal/domain/category"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
	"example.com/sector17-directory/internal/gateway"
)

const Name = "remote"

var _ gateway.Backend = (*Backend)(nil)

// Doer is the subset of *http.Client the backend needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Backend struct {
	apiBase string
	client  Doer
}

type Option func(*Backend)

func WithHTTPClient(c Doer) Option {
	return func(b *Backend) { b.client = c }
}

// New builds a backend for the API rooted at baseURL; requests go to
// <baseURL>/api/...
func New(baseURL string, opts ...Option) *Backend {
	b := &Backend{
		apiBase: strings.TrimRight(baseURL, "/") + "/api",
		client:  NewHTTPClient(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewHTTPClient returns a pooled client with no overall timeout. Callers
// bound requests through their context.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

func (b *Backend) Name() string {
	return Name
}

func (b *Backend) SearchProducts(ctx context.Context, query string, f domproduct.Filter) (gateway.Result[[]domproduct.Product], error) {
	var res gateway.Result[[]domproduct.Product]
	err := b.do(ctx, http.MethodGet, "/products/search?"+SearchParams(query, f).Encode(), nil, nil, &res)
	return res, err
}

func (b *Backend) GetShops(ctx context.Context) (gateway.Result[[]domshop.Shop], error) {
	var res gateway.Result[[]domshop.Shop]
	err := b.do(ctx, http.MethodGet, "/shops", nil, nil, &res)
	return res, err
}

func (b *Backend) GetShopByID(ctx context.Context, id string) (gateway.Result[gateway.ShopDetails], error) {
	var res gateway.Result[gateway.ShopDetails]
	err := b.do(ctx, http.MethodGet, "/shops/"+url.PathEscape(id), nil, nil, &res)
	return res, err
}

func (b *Backend) GetCategories(ctx context.Context) (gateway.Result[[]domcategory.Category], error) {
	var res gateway.Result[[]domcategory.Category]
	err := b.do(ctx, http.MethodGet, "/categories", nil, nil, &res)
	return res, err
}

func (b *Backend) GetProducts(ctx context.Context) (gateway.Result[[]domproduct.Product], error) {
	var res gateway.Result[[]domproduct.Product]
	err := b.do(ctx, http.MethodGet, "/products", nil, nil, &res)
	return res, err
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (b *Backend) AdminLogin(ctx context.Context, email, password string) (gateway.Result[domadmin.Session], error) {
	var res gateway.Result[domadmin.Session]
	err := b.do(ctx, http.MethodPost, "/auth/login", nil, loginBody{Email: email, Password: password}, &res)
	return res, err
}

func (b *Backend) AddShop(ctx context.Context, sess domadmin.Session, in domshop.Input) (gateway.Result[domshop.Shop], error) {
	var res gateway.Result[domshop.Shop]
	err := b.do(ctx, http.MethodPost, "/shops", &sess, in, &res)
	return res, err
}

func (b *Backend) UpdateShop(ctx context.Context, sess domadmin.Session, id string, in domshop.Input) (gateway.Result[domshop.Shop], error) {
	var res gateway.Result[domshop.Shop]
	err := b.do(ctx, http.MethodPut, "/shops/"+url.PathEscape(id), &sess, in, &res)
	return res, err
}

func (b *Backend) DeleteShop(ctx context.Context, sess domadmin.Session, id string) (gateway.Ack, error) {
	var res gateway.Ack
	err := b.do(ctx, http.MethodDelete, "/shops/"+url.PathEscape(id), &sess, nil, &res)
	return res, err
}

func (b *Backend) AddProduct(ctx context.Context, sess domadmin.Session, in domproduct.Input) (gateway.Result[domproduct.Product], error) {
	var res gateway.Result[domproduct.Product]
	err := b.do(ctx, http.MethodPost, "/products", &sess, in, &res)
	return res, err
}

func (b *Backend) UpdateProduct(ctx context.Context, sess domadmin.Session, id string, in domproduct.Input) (gateway.Result[domproduct.Product], error) {
	var res gateway.Result[domproduct.Product]
	err := b.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), &sess, in, &res)
	return res, err
}

func (b *Backend) DeleteProduct(ctx context.Context, sess domadmin.Session, id string) (gateway.Ack, error) {
	var res gateway.Ack
	err := b.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), &sess, nil, &res)
	return res, err
}

// SearchParams maps a query and filter onto the search endpoint's
// parameters. Inactive criteria are left out.
func SearchParams(query string, f domproduct.Filter) url.Values {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if f.CategoryActive() {
		params.Set("category", f.Category)
	}
	if f.ShopActive() {
		params.Set("shop", f.Shop)
	}
	if f.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	return params
}

func (b *Backend) do(ctx context.Context, method, path string, sess *domadmin.Session, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.apiBase+path, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response (status %d): %w", method, path, resp.StatusCode, err)
	}
	return nil
}
