package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loggerMw "santhome_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide middleware chain in order.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(DBMiddleware(db))
	app.Use(GlobalRateLimiter())
}
