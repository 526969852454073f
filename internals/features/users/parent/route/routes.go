package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	parentCtl "santhome_backend/internals/features/users/parent/controller"
	"santhome_backend/internals/middlewares"
)

func ParentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := parentCtl.NewParentController(db)

	r.Post("/parent/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/parent/change-password", middlewares.LoginRateLimiter(), ctl.ChangePassword)
}

func ParentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := parentCtl.NewParentController(db)

	r.Post("/parent/create", ctl.Create)
}
