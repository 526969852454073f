package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eligibilityCtl "santhome_backend/internals/features/outing/eligibility/controller"
)

func EligibilityUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eligibilityCtl.NewEligibilityController(db)

	r.Get("/outing/eligibility/check/:admissionNo", ctl.Check)
}

func EligibilityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eligibilityCtl.NewEligibilityController(db)

	r.Post("/outing/eligibility/bulk", ctl.SetBulk)
	r.Get("/outing/eligibility/eligible", ctl.EligibleStudents)
}
