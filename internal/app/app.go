package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"example.com/sector17-directory/internal/config"
	"example.com/sector17-directory/internal/gateway"
	"example.com/sector17-directory/internal/infra/health"
	"example.com/sector17-directory/internal/infra/security"
	httpapi "example.com/sector17-directory/internal/interface/http"
	adminuc "example.com/sector17-directory/internal/usecase/admin"
	authuc "example.com/sector17-directory/internal/usecase/auth"
	cataloguc "example.com/sector17-directory/internal/usecase/catalog"
)

// App is the directory API server with its dependencies wired.
type App struct {
	cfg        *config.Config
	log        *slog.Logger
	backend    *Backend
	httpServer *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	tokens := security.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration)

	backend, err := NewBackend(ctx, cfg, log, tokens)
	if err != nil {
		return nil, err
	}

	gw := gateway.New(backend, log)
	h := health.NewHandler(gw.Name())
	backend.RegisterChecks(h)

	api := httpapi.NewAPI(httpapi.Dependencies{
		CatalogService: cataloguc.NewService(gw),
		AdminService:   adminuc.NewService(gw),
		AuthService:    authuc.NewService(gw),
		TokenService:   tokens,
		Health:         h,
		Logger:         log,
		LoginRateRPS:   cfg.LoginRateRPS,
		LoginRateBurst: cfg.LoginRateBurst,
	})

	return &App{
		cfg:     cfg,
		log:     log,
		backend: backend,
		httpServer: &http.Server{
			Addr:         ":" + strconv.Itoa(cfg.HTTPPort),
			Handler:      api.Router(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err := <-errCh:
		a.backend.Close()
		return err
	}
	return a.Shutdown()
}

func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if err := a.backend.Close(); err != nil {
		return fmt.Errorf("close snapshot database: %w", err)
	}
	return nil
}
