package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mealtimeCtl "santhome_backend/internals/features/mess/mealtime/controller"
)

func MealTimeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mealtimeCtl.NewMealTimeController(db)

	r.Put("/mealtimes", ctl.Upsert)
	r.Get("/mealtimes", ctl.List)
}
