package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	holidayDTO "santhome_backend/internals/features/hostel/holiday/dto"
	holidayModel "santhome_backend/internals/features/hostel/holiday/model"
	helper "santhome_backend/internals/helpers"
)

type HolidayController struct {
	DB *gorm.DB
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db}
}

var validateHoliday = validator.New()

// POST /holiday/add
func (h *HolidayController) Create(c *fiber.Ctx) error {
	var req holidayDTO.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateHoliday.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Holiday event added successfully", holidayDTO.NewHolidayResponse(m))
}

// GET /holiday/all
func (h *HolidayController) GetAll(c *fiber.Ctx) error {
	var rows []holidayModel.HolidayModel
	if err := h.DB.Order("holiday_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.Success(c, "OK", holidayDTO.NewHolidayResponses(rows))
}

// PUT /holiday/update/:id
func (h *HolidayController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid holiday ID")
	}

	var req holidayDTO.UpdateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.Empty() {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}
	if err := validateHoliday.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m holidayModel.HolidayModel
	if err := h.DB.First(&m, "holiday_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Holiday not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Holiday updated successfully", holidayDTO.NewHolidayResponse(&m))
}

// DELETE /holiday/delete/:id
func (h *HolidayController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid holiday ID")
	}

	res := h.DB.Delete(&holidayModel.HolidayModel{}, "holiday_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Holiday not found")
	}

	return helper.Success(c, "Holiday deleted successfully", nil)
}
