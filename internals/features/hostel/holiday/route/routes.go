package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayCtl "santhome_backend/internals/features/hostel/holiday/controller"
)

func HolidayUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := holidayCtl.NewHolidayController(db)

	r.Get("/holiday/all", ctl.GetAll)
}

func HolidayAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := holidayCtl.NewHolidayController(db)

	r.Post("/holiday/add", ctl.Create)
	r.Put("/holiday/update/:id", ctl.Update)
	r.Delete("/holiday/delete/:id", ctl.Delete)
}
