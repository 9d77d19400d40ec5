package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/sector17-directory/internal/config"
	"example.com/sector17-directory/internal/infra/health"
	"example.com/sector17-directory/internal/infra/logger"
)

func fixtureConfig() *config.Config {
	return &config.Config{
		Backend:       config.BackendFixture,
		FixtureSource: config.SourceEmbedded,
		AdminEmail:    "admin@sector17.com",
		AdminPassword: "admin123",
	}
}

func TestNewBackend_Fixture(t *testing.T) {
	b, err := NewBackend(context.Background(), fixtureConfig(), logger.Discard(), nil)
	require.NoError(t, err)
	defer b.Close()

	require.Equal(t, "fixture", b.Name())

	res, err := b.AdminLogin(context.Background(), "admin@sector17.com", "admin123")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.True(t, strings.HasPrefix(res.Data.Token, "mock_jwt_token_"))

	shops, err := b.GetShops(context.Background())
	require.NoError(t, err)
	require.Len(t, shops.Data, 6)
}

func TestNewBackend_FixtureCustomCredentials(t *testing.T) {
	cfg := fixtureConfig()
	cfg.AdminEmail = "owner@sector17.com"
	cfg.AdminPassword = "s3cret!"

	b, err := NewBackend(context.Background(), cfg, logger.Discard(), nil)
	require.NoError(t, err)

	res, err := b.AdminLogin(context.Background(), "admin@sector17.com", "admin123")
	require.NoError(t, err)
	require.False(t, res.Success)

	res, err = b.AdminLogin(context.Background(), "owner@sector17.com", "s3cret!")
	require.NoError(t, err)
	require.True(t, res.Success)
}

func TestNewBackend_Remote(t *testing.T) {
	cfg := fixtureConfig()
	cfg.Backend = config.BackendRemote
	cfg.BackendURL = "http://127.0.0.1:1"

	b, err := NewBackend(context.Background(), cfg, logger.Discard(), nil)
	require.NoError(t, err)
	require.Equal(t, "remote", b.Name())

	h := health.NewHandler(b.Name())
	b.RegisterChecks(h)
	resp := h.Check(context.Background())
	require.Equal(t, health.StatusDown, resp.Status)
	require.Contains(t, resp.Checks, "backend")
}

func TestNewBackend_SnapshotUnreachable(t *testing.T) {
	cfg := fixtureConfig()
	cfg.FixtureSource = config.SourceMySQL
	cfg.FixtureDSN = "user:pass@tcp(127.0.0.1:1)/directory"

	_, err := NewBackend(context.Background(), cfg, logger.Discard(), nil)

	require.ErrorContains(t, err, "open fixture snapshot")
}
