package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanar_backend/internals/configs"
	"almanar_backend/internals/constants"
	"almanar_backend/internals/features/users/auth/model"
)

func TestGenerateAccessTokenClaims(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	defer func() { configs.JWTSecret = prev }()

	u := model.AdminUser{
		AdminUserID:    uuid.New(),
		AdminUserEmail: "admin@example.org",
		AdminUserRole:  constants.RoleCharityAdmin,
	}

	signed, err := GenerateAccessToken(u)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, u.AdminUserID.String(), claims["user_id"])
	assert.Equal(t, "admin@example.org", claims["email"])
	assert.Equal(t, constants.RoleCharityAdmin, claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), int64(exp), 5)
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = prev }()

	_, err := GenerateAccessToken(model.AdminUser{})
	assert.Error(t, err)
}
