package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	outingCtl "santhome_backend/internals/features/outing/request/controller"
)

func OutingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := outingCtl.NewOutingController(db)

	r.Post("/outing/request", ctl.Create)
	r.Get("/outing/student/:admissionNo", ctl.GetByStudent)
	r.Get("/outing/count", ctl.MonthlyCount)
	r.Put("/outing/parent-decision/:id", ctl.ParentDecision)
}

func OutingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := outingCtl.NewOutingController(db)

	r.Get("/outing/all", ctl.GetAll)
	r.Get("/outing/report", ctl.MonthlyReport)
	r.Get("/outing/approved", ctl.ApprovedStudents)
	r.Get("/outing/stats", ctl.Stats)
	r.Put("/outing/admin-decision/:id", ctl.AdminDecision)
	r.Get("/outing/detail/:id", ctl.GetByID)
}
