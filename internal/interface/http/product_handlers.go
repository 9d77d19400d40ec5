package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/sector17-directory/internal/domain/product"
)

// parseSearch reads the search endpoint's parameters. Absent parameters
// leave the matching criterion inactive.
func parseSearch(q url.Values) (string, domproduct.Filter, error) {
	f := domproduct.Filter{
		Category: q.Get("category"),
		Shop:     q.Get("shop"),
	}
	for _, bound := range []struct {
		name string
		dst  **float64
	}{
		{name: "minPrice", dst: &f.MinPrice},
		{name: "maxPrice", dst: &f.MaxPrice},
	} {
		raw := q.Get(bound.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", f, fmt.Errorf("invalid %s %q", bound.name, raw)
		}
		*bound.dst = domproduct.Price(v)
	}
	return q.Get("q"), f, nil
}

func (a *API) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	query, filter, err := parseSearch(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	res, err := a.catalogSvc.Search(r.Context(), query, filter)
	respondResult(w, http.StatusOK, http.StatusBadGateway, res, err)
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := a.catalogSvc.Products(r.Context())
	respondResult(w, http.StatusOK, http.StatusBadGateway, res, err)
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	ShopID      string  `json:"shop_id" validate:"required"`
	ShopName    string  `json:"shop_name"`
}

func (req productRequest) input() domproduct.Input {
	return domproduct.Input{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		ShopID:      req.ShopID,
		ShopName:    req.ShopName,
	}
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	res, err := a.adminSvc.SaveProduct(r.Context(), getSession(r.Context()), "", req.input())
	respondResult(w, http.StatusCreated, http.StatusUnprocessableEntity, res, err)
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	res, err := a.adminSvc.SaveProduct(r.Context(), getSession(r.Context()), chi.URLParam(r, "id"), req.input())
	respondResult(w, http.StatusOK, http.StatusUnprocessableEntity, res, err)
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminSvc.DeleteProduct(r.Context(), getSession(r.Context()), chi.URLParam(r, "id"))
	respondResult(w, http.StatusOK, http.StatusUnprocessableEntity, res, err)
}
