package route

import (
	"github.com/gofiber/fiber/v2"

	uploadController "almanar_backend/internals/features/uploads/controller"
	"almanar_backend/internals/middlewares"
	authMW "almanar_backend/internals/middlewares/auth"
)

func UploadRoutes(admin fiber.Router) {
	ctrl := uploadController.NewUploadController()

	up := admin.Group("/upload", authMW.AdminOnly("upload"), middlewares.UploadRateLimiter())
	up.Post("/image", ctrl.UploadImage)
}
