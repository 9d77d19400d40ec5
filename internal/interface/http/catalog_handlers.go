package http

import (
	"net/http"

	"example.com/sector17-directory/internal/gateway"
)

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := a.catalogSvc.Categories(r.Context())
	respondResult(w, http.StatusOK, http.StatusBadGateway, res, err)
}

func (a *API) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := a.catalogSvc.FilterOptions(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gateway.OK(opts))
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.catalogSvc.Dashboard(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gateway.OK(stats))
}
