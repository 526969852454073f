package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"santhome_backend/internals/constants"
	authMiddleware "santhome_backend/internals/middlewares/auth"
	routeDetails "santhome_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts the whole API under three groups:
//
//	/api  (public)  login, recovery, gateway webhook
//	/api  (user)    any authenticated account
//	/api  (admin)   warden and office roles on top of auth
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] mounting PUBLIC routes...")
	public := app.Group("/api")
	routeDetails.PublicRoutes(public, db)

	log.Println("[INFO] mounting USER routes...")
	user := app.Group("/api", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(user, db)

	log.Println("[INFO] mounting ADMIN routes...")
	admin := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(constants.RoleAdmin),
	)
	routeDetails.AdminRoutes(admin, db)
}
