package auth

import (
	"github.com/gofiber/fiber/v2"

	"almanar_backend/internals/constants"
)

// RequireRoles gates a route group to the listed roles. The owner always
// passes. feature only flavors the error message.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles)+1)
	allowed[constants.RoleOwner] = struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// AdminOnly allows any sector admin or the owner.
func AdminOnly(feature string) fiber.Handler {
	return RequireRoles(feature, constants.AdminRoles...)
}

// OwnerOnly allows only the owner.
func OwnerOnly(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != constants.RoleOwner {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner(feature))
		}
		return c.Next()
	}
}
