package database

import (
	"log"
	"os"

	dawaModel "almanar_backend/internals/features/dawa/model"
	donationModel "almanar_backend/internals/features/donations/model"
	eventModel "almanar_backend/internals/features/events/model"
	resourceModel "almanar_backend/internals/features/resources/model"
	settingModel "almanar_backend/internals/features/settings/model"
	studentModel "almanar_backend/internals/features/students/model"
	authModel "almanar_backend/internals/features/users/auth/model"
)

// AutoMigrate creates/updates every table. Gated behind DB_AUTOMIGRATE so
// production deploys can leave schema changes to reviewed migrations.
func AutoMigrate() {
	if os.Getenv("DB_AUTOMIGRATE") != "true" {
		return
	}
	log.Println("[INFO] 🛠 Running auto-migration...")
	err := DB.AutoMigrate(
		&authModel.AdminUser{},
		&authModel.TokenBlacklist{},
		&eventModel.Event{},
		&eventModel.Competition{},
		&donationModel.Donation{},
		&donationModel.Distribution{},
		&studentModel.Student{},
		&studentModel.Program{},
		&studentModel.Registration{},
		&resourceModel.Resource{},
		&dawaModel.NewMuslim{},
		&dawaModel.StarShiningMember{},
		&settingModel.SiteSetting{},
	)
	if err != nil {
		log.Fatalf("❌ Auto-migration failed: %v", err)
	}
	log.Println("[INFO] ✅ Auto-migration done.")
}
