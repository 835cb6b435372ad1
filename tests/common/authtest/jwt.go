//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"checkout-core/internal/pkg/config"
	pkgjwt "checkout-core/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tokens are normally minted by the identity service; tests sign their own
// with the shared secret so the verifier accepts them.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return h.signToken(t, userID, role, time.Hour)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return h.signToken(t, userID, role, -time.Minute)
}

func (h *JWTHelper) signToken(t *testing.T, userID uuid.UUID, role string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := pkgjwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return signed
}
