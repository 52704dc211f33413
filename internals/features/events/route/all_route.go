package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/constants"
	eventController "almanar_backend/internals/features/events/controller"
	"almanar_backend/internals/features/events/model"
	authMW "almanar_backend/internals/middlewares/auth"
)

// AllEventRoutes wires events and competitions. The stores are registered in
// the collection registry so the realtime feed can address them by name.
func AllEventRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB, reg *collections.Registry) {
	eventStore := collections.NewStore[model.Event](db, "events", "event_id")
	reg.Register(eventStore)
	eventCtrl := eventController.NewEventController(eventStore)

	public.Get("/events", eventCtrl.GetAll)
	public.Get("/events/:id", eventCtrl.GetByID)

	ev := admin.Group("/events", authMW.AdminOnly("events"))
	ev.Post("/", eventCtrl.Create)
	ev.Put("/:id", eventCtrl.Update)
	ev.Put("/:id/status", eventCtrl.UpdateStatus)
	ev.Delete("/:id", eventCtrl.Delete)
	ev.Get("/export", eventCtrl.ExportCSV)

	// ========== Competition Routes ==========
	compStore := collections.NewStore[model.Competition](db, "competitions", "competition_id")
	reg.Register(compStore)
	compCtrl := eventController.NewCompetitionController(compStore)

	public.Get("/competitions", compCtrl.GetAll)
	public.Get("/competitions/:id", compCtrl.GetByID)

	cp := admin.Group("/competitions",
		authMW.RequireRoles("competitions", constants.RoleQiratAdmin, constants.RoleAcademicAdmin))
	cp.Post("/", compCtrl.Create)
	cp.Put("/:id", compCtrl.Update)
	cp.Delete("/:id", compCtrl.Delete)
	cp.Get("/export", compCtrl.ExportCSV)
}
