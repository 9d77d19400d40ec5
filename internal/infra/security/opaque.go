package security

import (
	"strconv"
	"time"
)

const opaqueTokenPrefix = "mock_jwt_token_"

// OpaqueTokenService hands out unsigned, non-expiring session tokens of the
// form mock_jwt_token_<unix millis>. Nothing can verify them.
type OpaqueTokenService struct {
	now func() time.Time
}

func NewOpaqueTokenService() *OpaqueTokenService {
	return &OpaqueTokenService{now: time.Now}
}

func (s *OpaqueTokenService) GenerateToken(string) (string, error) {
	return opaqueTokenPrefix + strconv.FormatInt(s.now().UnixMilli(), 10), nil
}
