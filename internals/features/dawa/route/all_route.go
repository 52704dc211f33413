package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/constants"
	dawaController "almanar_backend/internals/features/dawa/controller"
	"almanar_backend/internals/features/dawa/model"
	authMW "almanar_backend/internals/middlewares/auth"
)

func AllDawaRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB, reg *collections.Registry) {
	newMuslimStore := collections.NewStore[model.NewMuslim](db, "new_muslims", "new_muslim_id")
	starStore := collections.NewStore[model.StarShiningMember](db, "star_shining_members", "star_member_id")
	reg.Register(newMuslimStore)
	reg.Register(starStore)

	nmCtrl := dawaController.NewNewMuslimController(newMuslimStore)
	starCtrl := dawaController.NewStarMemberController(starStore)

	// 🌍 Public: the monthly spotlight only
	public.Get("/star-members", starCtrl.GetAll)

	nm := admin.Group("/new-muslims", authMW.RequireRoles("new muslims", constants.RoleDawaAdmin))
	nm.Get("/", nmCtrl.GetAll)
	nm.Get("/export", nmCtrl.ExportCSV)
	nm.Get("/:id", nmCtrl.GetByID)
	nm.Post("/", nmCtrl.Create)
	nm.Put("/:id", nmCtrl.Update)
	nm.Delete("/:id", nmCtrl.Delete)

	sm := admin.Group("/star-members", authMW.RequireRoles("star members", constants.RoleDawaAdmin))
	sm.Get("/", starCtrl.GetAll)
	sm.Post("/", starCtrl.Create)
	sm.Put("/:id", starCtrl.Update)
	sm.Delete("/:id", starCtrl.Delete)
}
