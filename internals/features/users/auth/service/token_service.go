package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"almanar_backend/internals/configs"
	"almanar_backend/internals/features/users/auth/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

// GenerateAccessToken signs the claims the dashboards rely on: user_id,
// email and the role that routes the admin to their sector dashboard.
func GenerateAccessToken(u model.AdminUser) (string, error) {
	return signToken(u, configs.JWTSecret, accessTTLDefault)
}

func GenerateRefreshToken(u model.AdminUser) (string, error) {
	return signToken(u, configs.JWTRefreshSecret, refreshTTLDefault)
}

func signToken(u model.AdminUser, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is empty")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": u.AdminUserID.String(),
		"email":   u.AdminUserEmail,
		"role":    u.AdminUserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseRefreshToken verifies a refresh token's signature and expiry and
// returns its claims. Tokens signed with the access secret do not pass.
func ParseRefreshToken(signed string) (jwt.MapClaims, error) {
	if configs.JWTRefreshSecret == "" {
		return nil, fmt.Errorf("jwt refresh secret is empty")
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return nil, err
	}
	return claims, nil
}
