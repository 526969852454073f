package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messcutCtl "santhome_backend/internals/features/mess/messcut/controller"
)

func MesscutAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := messcutCtl.NewMesscutController(db)
	report := messcutCtl.NewMesscutReportController(db)

	r.Get("/messcut/all", ctl.GetAll)
	r.Put("/messcut/status/:id", ctl.UpdateStatus)
	r.Get("/messcut/count", ctl.Counts)
	r.Get("/messcut/clear/count", ctl.TodayCounts)

	r.Get("/messcut/report", report.SummaryReport)
	r.Get("/messcut/all-details", report.AllDetails)
	r.Get("/messcut/by-date", report.ByDate)
	r.Get("/messcut/by-datereport", report.DateWiseReport)
}
