package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/constants"
	donationController "almanar_backend/internals/features/donations/controller"
	"almanar_backend/internals/features/donations/model"
	authMW "almanar_backend/internals/middlewares/auth"
)

// AllDonationRoutes wires donations and charity distributions.
func AllDonationRoutes(app *fiber.App, public fiber.Router, admin fiber.Router, db *gorm.DB, reg *collections.Registry) {
	donationStore := collections.NewStore[model.Donation](db, "donations", "donation_id")
	reg.Register(donationStore)
	donationCtrl := donationController.NewDonationController(db, donationStore)

	// public: anyone may donate; the webhook is called by Midtrans
	public.Post("/donations", donationCtrl.CreateDonation)
	app.Post("/api/donations/notification", donationCtrl.HandleMidtransNotification)

	dn := admin.Group("/donations", authMW.RequireRoles("donations", constants.RoleCharityAdmin))
	dn.Get("/", donationCtrl.GetAll)
	dn.Put("/:id/status", donationCtrl.UpdateStatus)
	dn.Delete("/:id", donationCtrl.Delete)
	dn.Get("/export", donationCtrl.ExportCSV)

	// ========== Distribution Routes ==========
	distStore := collections.NewStore[model.Distribution](db, "distributions", "distribution_id")
	reg.Register(distStore)
	distCtrl := donationController.NewDistributionController(distStore)

	public.Get("/distributions", distCtrl.GetAll)

	ds := admin.Group("/distributions", authMW.RequireRoles("distributions", constants.RoleCharityAdmin))
	ds.Post("/", distCtrl.Create)
	ds.Put("/:id", distCtrl.Update)
	ds.Delete("/:id", distCtrl.Delete)
	ds.Get("/export", distCtrl.ExportCSV)
}
