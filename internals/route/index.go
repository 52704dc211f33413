// 📁 internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	dawaRoute "almanar_backend/internals/features/dawa/route"
	donationRoute "almanar_backend/internals/features/donations/route"
	eventRoute "almanar_backend/internals/features/events/route"
	realtimeRoute "almanar_backend/internals/features/realtime/route"
	resourceRoute "almanar_backend/internals/features/resources/route"
	settingRoute "almanar_backend/internals/features/settings/route"
	studentRoute "almanar_backend/internals/features/students/route"
	uploadRoute "almanar_backend/internals/features/uploads/route"
	authRoute "almanar_backend/internals/features/users/auth/route"
	authMW "almanar_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature onto the app and returns the collection
// registry so the caller can attach the change listener.
func SetupRoutes(app *fiber.App, db *gorm.DB) *collections.Registry {
	reg := collections.NewRegistry()

	log.Println("[INFO] 🔑 Setting up auth routes...")
	authRoute.AuthRoutes(app, db)

	// 🌍 Public reads, no token required
	public := app.Group("/api/public")

	// 🔒 Admin surface, token + role checks
	admin := app.Group("/api/a", authMW.AuthMiddleware(db))

	log.Println("[INFO] 📅 Setting up event routes...")
	eventRoute.AllEventRoutes(public, admin, db, reg)

	log.Println("[INFO] 💰 Setting up donation routes...")
	donationRoute.AllDonationRoutes(app, public, admin, db, reg)

	log.Println("[INFO] 🎓 Setting up student routes...")
	studentRoute.AllStudentRoutes(public, admin, db, reg)

	log.Println("[INFO] 📚 Setting up resource routes...")
	resourceRoute.AllResourceRoutes(public, admin, db, reg)

	log.Println("[INFO] 🕌 Setting up dawa routes...")
	dawaRoute.AllDawaRoutes(public, admin, db, reg)

	log.Println("[INFO] ⚙️ Setting up settings routes...")
	settingRoute.SettingRoutes(admin, db)

	log.Println("[INFO] 🖼️ Setting up upload routes...")
	uploadRoute.UploadRoutes(admin)

	log.Println("[INFO] 📡 Setting up realtime routes...")
	realtimeRoute.RealtimeRoutes(app, reg)

	log.Println("[INFO] ✅ Routes ready, collections:", reg.Names())
	return reg
}
