package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	complaintCtl "santhome_backend/internals/features/hostel/complaint/controller"
)

func ComplaintUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := complaintCtl.NewComplaintController(db)

	r.Post("/add", ctl.Create)
	r.Get("/complaints/student", ctl.GetByStudent)
}

func ComplaintAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := complaintCtl.NewComplaintController(db)

	r.Get("/allcomplaint/all", ctl.GetAll)
	r.Put("/complaint/update/:id", ctl.Update)
	r.Get("/allcomplaint/count", ctl.PendingCount)
}
