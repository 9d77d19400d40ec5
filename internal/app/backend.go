package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"example.com/sector17-directory/internal/config"
	domadmin "example.com/sector17-directory/internal/domain/admin"
	"example.com/sector17-directory/internal/gateway"
	"example.com/sector17-directory/internal/infra/fixture"
	"example.com/sector17-directory/internal/infra/health"
	"example.com/sector17-directory/internal/infra/persistence/sqldb"
	"example.com/sector17-directory/internal/infra/remote"
	"example.com/sector17-directory/internal/infra/security"
)

// Backend is a constructed backend strategy plus whatever it holds open.
type Backend struct {
	gateway.Backend
	checks map[string]health.Checker
	db     *sql.DB
}

// Close releases the snapshot database, if any.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// RegisterChecks adds the backend's readiness checks to h.
func (b *Backend) RegisterChecks(h *health.Handler) {
	for name, c := range b.checks {
		h.Register(name, c)
	}
}

// NewBackend builds the strategy cfg selects. tokens issues the session
// tokens of fixture logins; nil keeps the opaque mock_jwt_token_ format.
func NewBackend(ctx context.Context, cfg *config.Config, log *slog.Logger, tokens fixture.TokenGenerator) (*Backend, error) {
	if cfg.Backend == config.BackendRemote {
		rb := remote.New(cfg.BackendURL)
		log.Info("catalog backend selected", slog.String("backend", rb.Name()), slog.String("url", cfg.BackendURL))
		return &Backend{
			Backend: rb,
			checks: map[string]health.Checker{
				"backend": func(ctx context.Context) error {
					_, err := rb.GetCategories(ctx)
					return err
				},
			},
		}, nil
	}

	b := &Backend{checks: map[string]health.Checker{}}
	data := fixture.Sample()
	if cfg.FixtureSource != config.SourceEmbedded {
		db, err := sqldb.Open(ctx, cfg.FixtureSource, cfg.FixtureDSN)
		if err != nil {
			return nil, fmt.Errorf("open fixture snapshot: %w", err)
		}
		data, err = fixture.LoadDataset(ctx,
			sqldb.NewShopRepository(db),
			sqldb.NewProductRepository(db),
			sqldb.NewCategoryRepository(db),
		)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("load fixture snapshot: %w", err)
		}
		b.db = db
		b.checks["snapshot"] = func(ctx context.Context) error { return sqldb.Ping(ctx, db) }
	}

	hasher := security.NewBcryptService(bcrypt.DefaultCost)
	cred, err := hasher.Credential(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		b.Close()
		return nil, err
	}
	if tokens == nil {
		tokens = security.NewOpaqueTokenService()
	}

	var opts []fixture.Option
	if !cfg.SimulateLatency {
		opts = append(opts, fixture.WithLatency(fixture.Latency{}))
	}
	b.Backend = fixture.New(data, []domadmin.Credential{cred}, hasher, tokens, opts...)

	log.Info("catalog backend selected",
		slog.String("backend", fixture.Name),
		slog.String("source", cfg.FixtureSource),
		slog.Int("shops", len(data.Shops)),
		slog.Int("products", len(data.Products)),
		slog.Bool("simulate_latency", cfg.SimulateLatency),
	)
	return b, nil
}
