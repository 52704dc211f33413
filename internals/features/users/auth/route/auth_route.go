package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "almanar_backend/internals/features/users/auth/controller"
	"almanar_backend/internals/middlewares"
	authMW "almanar_backend/internals/middlewares/auth"
)

// AuthRoutes defines login/logout and account management.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api := app.Group("/api")
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	api.Post("/refresh-token", middlewares.LoginRateLimiter(), ctrl.RefreshToken)

	authed := api.Group("", authMW.AuthMiddleware(db))
	authed.Post("/logout", ctrl.Logout)
	authed.Get("/me", ctrl.Me)
	authed.Post("/admins", authMW.OwnerOnly("admin accounts"), ctrl.RegisterAdmin)
}
