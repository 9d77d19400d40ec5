package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domadmin "example.com/sector17-directory/internal/domain/admin"
)

type BcryptService struct {
	cost int
}

func NewBcryptService(cost int) *BcryptService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

func (s *BcryptService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *BcryptService) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// Credential hashes password into a credential-list entry for email.
func (s *BcryptService) Credential(email, password string) (domadmin.Credential, error) {
	hash, err := s.Hash(password)
	if err != nil {
		return domadmin.Credential{}, fmt.Errorf("hash password for %s: %w", email, err)
	}
	return domadmin.Credential{Email: email, PasswordHash: hash}, nil
}
