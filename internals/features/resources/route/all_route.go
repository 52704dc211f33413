package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	resourceController "almanar_backend/internals/features/resources/controller"
	"almanar_backend/internals/features/resources/model"
	authMW "almanar_backend/internals/middlewares/auth"
)

func AllResourceRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB, reg *collections.Registry) {
	store := collections.NewStore[model.Resource](db, "resources", "resource_id")
	reg.Register(store)
	ctrl := resourceController.NewResourceController(store)

	public.Get("/resources", ctrl.GetAll)

	rs := admin.Group("/resources", authMW.AdminOnly("resources"))
	rs.Get("/", ctrl.GetAll)
	rs.Post("/", ctrl.Create)
	rs.Put("/:id", ctrl.Update)
	rs.Delete("/:id", ctrl.Delete)
}
