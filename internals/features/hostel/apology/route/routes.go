package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	apologyCtl "santhome_backend/internals/features/hostel/apology/controller"
)

func ApologyUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := apologyCtl.NewApologyController(db)

	r.Post("/apology/add", ctl.Create)
	r.Get("/apology/by-student", ctl.GetByStudent)
}

func ApologyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := apologyCtl.NewApologyController(db)

	r.Get("/apology/all", ctl.GetAll)
	r.Put("/apology/update/:id", ctl.UpdateStatus)
	r.Get("/apology/count/pending", ctl.PendingCount)
}
