package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/motionmatrix/factory-portal/internal/models"
)

// TokenManager issues signed JWTs for admin logins.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate issues a signed JWT carrying the reduced identity projection.
func (t *TokenManager) Generate(id models.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":        t.issuer,
		"sub":        fmt.Sprintf("%d", id.ID),
		"name":       id.Name,
		"email":      id.Email,
		"role":       id.Role,
		"department": id.Department,
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
		"exp":        now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}
