package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	domshop "example.com/sector17-directory/internal/domain/shop"
	"example.com/sector17-directory/internal/gateway"
	"example.com/sector17-directory/internal/infra/health"
	adminuc "example.com/sector17-directory/internal/usecase/admin"
	authuc "example.com/sector17-directory/internal/usecase/auth"
	cataloguc "example.com/sector17-directory/internal/usecase/catalog"
)

// API serves the directory over HTTP on the same routes the remote
// backend calls.
type API struct {
	catalogSvc *cataloguc.Service
	adminSvc   *adminuc.Service
	authSvc    *authuc.Service
	tokenSvc   authuc.TokenService
	health     *health.Handler
	logger     *slog.Logger
	validator  *validator.Validate
	loginLimit *visitorStore
}

type Dependencies struct {
	CatalogService *cataloguc.Service
	AdminService   *adminuc.Service
	AuthService    *authuc.Service
	TokenService   authuc.TokenService
	Health         *health.Handler
	Logger         *slog.Logger

	// Per client IP limits on POST /api/auth/login.
	LoginRateRPS   float64
	LoginRateBurst int
}

func NewAPI(deps Dependencies) *API {
	return &API{
		catalogSvc: deps.CatalogService,
		adminSvc:   deps.AdminService,
		authSvc:    deps.AuthService,
		tokenSvc:   deps.TokenService,
		health:     deps.Health,
		logger:     deps.Logger,
		validator:  validator.New(),
		loginLimit: newVisitorStore(deps.LoginRateRPS, deps.LoginRateBurst, loginVisitorTTL),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogging)
	r.Use(prometheusMetrics)
	r.Use(chimw.Recoverer)

	r.Get("/health", a.health.LivenessHandler())
	r.Get("/health/ready", a.health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(a.rateLimitLogin).Post("/auth/login", a.handleLogin)

		r.Get("/products/search", a.handleSearchProducts)
		r.Get("/products", a.handleListProducts)
		r.Get("/shops", a.handleListShops)
		r.Get("/shops/{id}", a.handleGetShop)
		r.Get("/categories", a.handleListCategories)
		r.Get("/filters", a.handleFilterOptions)

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)

			ar.Post("/shops", a.handleCreateShop)
			ar.Put("/shops/{id}", a.handleUpdateShop)
			ar.Delete("/shops/{id}", a.handleDeleteShop)

			ar.Post("/products", a.handleCreateProduct)
			ar.Put("/products/{id}", a.handleUpdateProduct)
			ar.Delete("/products/{id}", a.handleDeleteProduct)

			ar.Get("/admin/stats", a.handleStats)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondFailure(w, status, err.Error())
}

func respondFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, gateway.Fail[any](msg))
}

// respondResult writes a gateway envelope as is: okStatus when it succeeded,
// failStatus when the backend answered with a failure envelope.
func respondResult[T any](w http.ResponseWriter, okStatus, failStatus int, res gateway.Result[T], err error) {
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if !res.Success {
		writeJSON(w, failStatus, res)
		return
	}
	writeJSON(w, okStatus, res)
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domadmin.ErrInvalidCredentials):
		respondFailure(w, http.StatusUnauthorized, domadmin.InvalidCredentialsMessage)
	case errors.Is(err, domadmin.ErrNoSession):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domshop.ErrShopNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domadmin.ErrOperationFailed),
		errors.Is(err, gateway.ErrFailure):
		respondError(w, http.StatusBadGateway, err)
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
