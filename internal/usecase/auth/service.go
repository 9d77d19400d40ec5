package auth

import (
	"context"
	"fmt"

	domadmin "example.com/sector17-directory/internal/domain/admin"
	"example.com/sector17-directory/internal/gateway"
)

// Claims is what a verified admin token says about its bearer.
type Claims struct {
	Email string
	Role  string
}

// TokenService issues and verifies admin tokens.
type TokenService interface {
	GenerateToken(email string) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	authenticator gateway.Authenticator
}

func NewService(authenticator gateway.Authenticator) *Service {
	return &Service{authenticator: authenticator}
}

// Login exchanges credentials for a session the caller keeps and passes to
// admin writes. The email is forwarded as given; the backend matches it
// exactly.
func (s *Service) Login(ctx context.Context, email, password string) (*domadmin.Session, error) {
	if email == "" || password == "" {
		return nil, domadmin.ErrInvalidCredentials
	}

	res, err := s.authenticator.AdminLogin(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: %s", domadmin.ErrInvalidCredentials, res.Error)
	}
	if !res.Data.Valid() {
		return nil, fmt.Errorf("%w: empty token", domadmin.ErrInvalidCredentials)
	}

	sess := res.Data
	return &sess, nil
}
