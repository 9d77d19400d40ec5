package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domshop "example.com/sector17-directory/internal/domain/shop"
)

func (a *API) handleListShops(w http.ResponseWriter, r *http.Request) {
	res, err := a.catalogSvc.Shops(r.Context())
	respondResult(w, http.StatusOK, http.StatusBadGateway, res, err)
}

// handleGetShop answers an unknown id with 200 and no shop, like every
// backend does.
func (a *API) handleGetShop(w http.ResponseWriter, r *http.Request) {
	res, err := a.catalogSvc.ShopDetails(r.Context(), chi.URLParam(r, "id"))
	respondResult(w, http.StatusOK, http.StatusBadGateway, res, err)
}

type shopRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Contact     string `json:"contact"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

func (req shopRequest) input() domshop.Input {
	return domshop.Input{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		Contact:     req.Contact,
		ImageURL:    req.ImageURL,
	}
}

func (a *API) handleCreateShop(w http.ResponseWriter, r *http.Request) {
	var req shopRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	res, err := a.adminSvc.CreateShop(r.Context(), getSession(r.Context()), req.input())
	respondResult(w, http.StatusCreated, http.StatusUnprocessableEntity, res, err)
}

func (a *API) handleUpdateShop(w http.ResponseWriter, r *http.Request) {
	var req shopRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	res, err := a.adminSvc.UpdateShop(r.Context(), getSession(r.Context()), chi.URLParam(r, "id"), req.input())
	respondResult(w, http.StatusOK, http.StatusUnprocessableEntity, res, err)
}

func (a *API) handleDeleteShop(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminSvc.DeleteShop(r.Context(), getSession(r.Context()), chi.URLParam(r, "id"))
	respondResult(w, http.StatusOK, http.StatusUnprocessableEntity, res, err)
}
