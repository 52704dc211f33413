package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingController "almanar_backend/internals/features/settings/controller"
	authMW "almanar_backend/internals/middlewares/auth"
)

func SettingRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := settingController.NewSettingController(db)

	st := admin.Group("/settings", authMW.AdminOnly("settings"))
	st.Get("/", ctrl.Get)
	st.Put("/", ctrl.Update)
}
