package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apologyDTO "santhome_backend/internals/features/hostel/apology/dto"
	apologyModel "santhome_backend/internals/features/hostel/apology/model"
	helper "santhome_backend/internals/helpers"
)

type ApologyController struct {
	DB *gorm.DB
}

func NewApologyController(db *gorm.DB) *ApologyController {
	return &ApologyController{DB: db}
}

var validateApology = validator.New()

// POST /apology/add
func (h *ApologyController) Create(c *fiber.Ctx) error {
	var req apologyDTO.CreateApologyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateApology.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Apology Request submitted successfully", apologyDTO.NewApologyResponse(m))
}

// GET /apology/all (admin)
func (h *ApologyController) GetAll(c *fiber.Ctx) error {
	var rows []apologyModel.ApologyModel
	if err := h.DB.Order("apology_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.Success(c, "OK", apologyDTO.NewApologyResponses(rows))
}

// GET /by-student?admissionNo=
func (h *ApologyController) GetByStudent(c *fiber.Ctx) error {
	admissionNo := c.Query("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number required")
	}

	var rows []apologyModel.ApologyModel
	if err := h.DB.
		Where("apology_admission_number = ?", admissionNo).
		Order("apology_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", apologyDTO.NewApologyResponses(rows))
}

// PUT /apology/update/:id
func (h *ApologyController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var req apologyDTO.UpdateApologyStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateApology.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid status value")
	}

	var m apologyModel.ApologyModel
	if err := h.DB.First(&m, "apology_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Request not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	m.ApologyStatus = req.Status
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Status updated to "+req.Status, apologyDTO.NewApologyResponse(&m))
}

// GET /count/pending
func (h *ApologyController) PendingCount(c *fiber.Ctx) error {
	var pending int64
	if err := h.DB.Model(&apologyModel.ApologyModel{}).
		Where("apology_status = ?", apologyModel.StatusPending).
		Count(&pending).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{"pending": pending})
}
