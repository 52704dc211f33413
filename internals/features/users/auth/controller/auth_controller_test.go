package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"almanar_backend/internals/configs"
	"almanar_backend/internals/features/users/auth/model"
	authService "almanar_backend/internals/features/users/auth/service"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = ""
		configs.JWTRefreshSecret = ""
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.AdminUser{}))

	ctrl := NewAuthController(db)
	app := fiber.New()
	app.Post("/refresh-token", ctrl.RefreshToken)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, active bool) model.AdminUser {
	t.Helper()
	u := model.AdminUser{
		AdminUserName:     "Operator",
		AdminUserEmail:    "operator@example.org",
		AdminUserPassword: "unused-hash",
		AdminUserIsActive: active,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func postRefresh(t *testing.T, app *fiber.App, token string) (int, []byte) {
	t.Helper()
	body, err := json.Marshal(fiber.Map{"refresh_token": token})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/refresh-token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	app, db := newAuthApp(t)
	u := seedUser(t, db, true)

	refresh, err := authService.GenerateRefreshToken(u)
	require.NoError(t, err)

	code, raw := postRefresh(t, app, refresh)
	require.Equal(t, fiber.StatusOK, code)

	var env struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			Email        string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.NotEmpty(t, env.Data.AccessToken)
	assert.NotEmpty(t, env.Data.RefreshToken)
	assert.Equal(t, "operator@example.org", env.Data.Email)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	app, db := newAuthApp(t)
	u := seedUser(t, db, true)

	// signed with the access secret, must not redeem
	access, err := authService.GenerateAccessToken(u)
	require.NoError(t, err)

	code, _ := postRefresh(t, app, access)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	app, _ := newAuthApp(t)

	code, _ := postRefresh(t, app, "not.a.token")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestRefreshTokenRejectsInactiveAccount(t *testing.T) {
	app, db := newAuthApp(t)
	u := seedUser(t, db, false)

	refresh, err := authService.GenerateRefreshToken(u)
	require.NoError(t, err)

	code, _ := postRefresh(t, app, refresh)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
