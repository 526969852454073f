package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "santhome_backend/internals/features/finance/feedue/route"
	authRoute "santhome_backend/internals/features/users/auth/route"
	parentRoute "santhome_backend/internals/features/users/parent/route"
	studentRoute "santhome_backend/internals/features/users/student/route"
)

// PublicRoutes: reachable without a token (login, recovery, gateway webhook).
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentPublicRoutes(r, db)
	parentRoute.ParentPublicRoutes(r, db)
	authRoute.AuthPublicRoutes(r, db)
	feeRoute.FeePublicRoutes(r, db)
}
