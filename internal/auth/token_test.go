package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motionmatrix/factory-portal/internal/models"
)

func TestGenerateCarriesIdentityClaims(t *testing.T) {
	manager := NewTokenManager("test-secret", "motionmatrix-portal", time.Hour)
	identity := models.Identity{
		ID: 1, Name: "Arif Rahman", Email: "admin@motionmatrix.com",
		Role: models.RoleAdmin, Department: models.DepartmentAdmin,
	}

	signed, err := manager.Generate(identity)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "motionmatrix-portal", claims["iss"])
	assert.Equal(t, "1", claims["sub"])
	assert.Equal(t, "admin@motionmatrix.com", claims["email"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	assert.Equal(t, models.DepartmentAdmin, claims["department"])
}

func TestGenerateRejectsWrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret", "motionmatrix-portal", time.Hour)
	signed, err := manager.Generate(models.Identity{ID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	assert.Error(t, err)
}
