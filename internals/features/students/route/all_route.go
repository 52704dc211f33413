package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/constants"
	studentController "almanar_backend/internals/features/students/controller"
	"almanar_backend/internals/features/students/model"
	authMW "almanar_backend/internals/middlewares/auth"
)

// AllStudentRoutes wires students, programs and program registrations.
func AllStudentRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB, reg *collections.Registry) {
	studentStore := collections.NewStore[model.Student](db, "students", "student_id")
	reg.Register(studentStore)
	studentCtrl := studentController.NewStudentController(studentStore)

	// the membership application form is public; listings are not
	public.Post("/students", studentCtrl.Create)

	st := admin.Group("/students", authMW.RequireRoles("students", constants.RoleAcademicAdmin))
	st.Get("/", studentCtrl.GetAll)
	st.Post("/", studentCtrl.Create)
	st.Put("/:id", studentCtrl.Update)
	st.Put("/:id/status", studentCtrl.UpdateStatus)
	st.Delete("/:id", studentCtrl.Delete)
	st.Get("/export", studentCtrl.ExportCSV)

	// ========== Program Routes ==========
	programStore := collections.NewStore[model.Program](db, "programs", "program_id")
	reg.Register(programStore)
	programCtrl := studentController.NewProgramController(programStore)

	public.Get("/programs", programCtrl.GetAll)
	public.Get("/programs/:id", programCtrl.GetByID)

	pr := admin.Group("/programs", authMW.RequireRoles("programs", constants.RoleAcademicAdmin))
	pr.Post("/", programCtrl.Create)
	pr.Put("/:id", programCtrl.Update)
	pr.Delete("/:id", programCtrl.Delete)

	// ========== Registration Routes ==========
	regStore := collections.NewStore[model.Registration](db, "registrations", "registration_id")
	reg.Register(regStore)
	regCtrl := studentController.NewRegistrationController(regStore)

	public.Post("/registrations", regCtrl.Create)

	rg := admin.Group("/registrations", authMW.RequireRoles("registrations", constants.RoleAcademicAdmin))
	rg.Get("/", regCtrl.GetAll)
	rg.Put("/:id/status", regCtrl.UpdateStatus)
	rg.Delete("/:id", regCtrl.Delete)
	rg.Get("/export", regCtrl.ExportCSV)
}
