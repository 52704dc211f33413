package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanar_backend/internals/constants"
)

func appWithRole(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("role", role)
		}
		return c.Next()
	})
	app.Get("/guarded", gate, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func statusFor(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireRoles(t *testing.T) {
	gate := RequireRoles("students", constants.RoleAcademicAdmin)

	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole(constants.RoleAcademicAdmin, gate)))
	// the owner passes every gate
	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole(constants.RoleOwner, gate)))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole(constants.RoleCharityAdmin, gate)))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole(constants.RoleMember, gate)))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole("", gate)))
}

func TestAdminOnly(t *testing.T) {
	gate := AdminOnly("settings")

	for _, role := range constants.AdminRoles {
		assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole(role, gate)), "role=%s", role)
	}
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole(constants.RoleMember, gate)))
}

func TestOwnerOnly(t *testing.T) {
	gate := OwnerOnly("admin accounts")

	assert.Equal(t, fiber.StatusOK, statusFor(t, appWithRole(constants.RoleOwner, gate)))
	assert.Equal(t, fiber.StatusForbidden, statusFor(t, appWithRole(constants.RoleAcademicAdmin, gate)))
}
