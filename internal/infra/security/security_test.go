package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken("admin@sector17.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin@sector17.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("one-secret", time.Hour).GenerateToken("admin@sector17.com")
	require.NoError(t, err)

	_, err = NewJWTService("other-secret", time.Hour).ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	issued := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("admin@sector17.com")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret", time.Hour).ParseToken("mock_jwt_token_1700000000000")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestOpaqueTokenService(t *testing.T) {
	svc := NewOpaqueTokenService()
	svc.now = func() time.Time { return time.UnixMilli(1700000000123) }

	token, err := svc.GenerateToken("admin@sector17.com")
	require.NoError(t, err)
	require.Equal(t, "mock_jwt_token_1700000000123", token)
	require.True(t, strings.HasPrefix(token, opaqueTokenPrefix))
}

func TestBcryptService_Credential(t *testing.T) {
	svc := NewBcryptService(bcrypt.MinCost)

	cred, err := svc.Credential("admin@sector17.com", "admin123")
	require.NoError(t, err)
	require.Equal(t, "admin@sector17.com", cred.Email)
	require.NotEqual(t, "admin123", cred.PasswordHash)

	require.NoError(t, svc.Compare(cred.PasswordHash, "admin123"))
	require.Error(t, svc.Compare(cred.PasswordHash, "wrong"))
}

func TestNewBcryptService_DefaultCost(t *testing.T) {
	require.Equal(t, bcrypt.DefaultCost, NewBcryptService(0).cost)
}
