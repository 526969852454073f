package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	mealtimeDTO "santhome_backend/internals/features/mess/mealtime/dto"
	mealtimeModel "santhome_backend/internals/features/mess/mealtime/model"
	helper "santhome_backend/internals/helpers"
)

type MealTimeController struct {
	DB *gorm.DB
}

func NewMealTimeController(db *gorm.DB) *MealTimeController {
	return &MealTimeController{DB: db}
}

var validateMealTime = validator.New()

// PUT /mealtimes — upsert one serving window
func (h *MealTimeController) Upsert(c *fiber.Ctx) error {
	var req mealtimeDTO.UpsertMealTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateMealTime.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meal_time_meal"}},
		DoUpdates: clause.AssignmentColumns([]string{"meal_time_start_time", "meal_time_end_time"}),
	}).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save meal time")
	}

	return helper.Success(c, "Meal time saved", mealtimeDTO.NewMealTimeResponse(m))
}

// GET /mealtimes
func (h *MealTimeController) List(c *fiber.Ctx) error {
	var rows []mealtimeModel.MealTimeModel
	if err := h.DB.Order("meal_time_start_time ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch meal times")
	}

	resp := make([]*mealtimeDTO.MealTimeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, mealtimeDTO.NewMealTimeResponse(&rows[i]))
	}
	return helper.Success(c, "OK", resp)
}
