package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messcutCtl "santhome_backend/internals/features/mess/messcut/controller"
)

// MesscutUserRoutes: student + parent facing endpoints. Caller mounts the
// auth middleware.
func MesscutUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := messcutCtl.NewMesscutController(db)
	report := messcutCtl.NewMesscutReportController(db)

	r.Post("/adddetail", ctl.Create)                     // student submits
	r.Get("/messcut/student", ctl.GetByStudent)          // own requests
	r.Put("/parent-status/:id", ctl.UpdateParentStatus)  // parent decision
	r.Get("/messcut/details/student", report.StudentDetails)
	r.Get("/messcut/month-wise", report.MonthWiseReport)
}
