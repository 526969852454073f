package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "santhome_backend/internals/features/users/student/controller"
	"santhome_backend/internals/middlewares"
)

// StudentPublicRoutes: registration and login, no token yet.
func StudentPublicRoutes(r fiber.Router, db *gorm.DB) {
	authCtl := studentCtl.NewStudentAuthController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), authCtl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), authCtl.Login)
	r.Post("/login/google", middlewares.LoginRateLimiter(), authCtl.GoogleLogin)
}

func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	authCtl := studentCtl.NewStudentAuthController(db)
	ctl := studentCtl.NewStudentController(db)

	r.Get("/user", ctl.GetByAdmission)
	r.Put("/update-password", authCtl.UpdatePassword)
	r.Post("/profile-photo/:admissionNo", ctl.UploadProfilePhoto)
}

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	r.Get("/all", ctl.GetAll)
	r.Get("/sem-list", ctl.SemesterList)
	r.Get("/by-sem", ctl.GetBySemester)
	r.Get("/rooms", ctl.Rooms)
	r.Get("/studentsByRoom", ctl.GetByRoom)
	r.Get("/count", ctl.Counts)
	r.Get("/users/map", ctl.Map)
	r.Put("/update/:admissionNo", ctl.Update)
	r.Delete("/delete/:admissionNo", ctl.Delete)
	r.Put("/bulk-sem", ctl.BulkSemesterUpdate)
}
