package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	complaintDTO "santhome_backend/internals/features/hostel/complaint/dto"
	complaintModel "santhome_backend/internals/features/hostel/complaint/model"
	helper "santhome_backend/internals/helpers"
)

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

var validateComplaint = validator.New()

// POST /add
func (h *ComplaintController) Create(c *fiber.Ctx) error {
	var req complaintDTO.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateComplaint.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Complaint submitted successfully", complaintDTO.NewComplaintResponse(m))
}

// GET /complaints/student?admissionNo=
func (h *ComplaintController) GetByStudent(c *fiber.Ctx) error {
	admissionNo := c.Query("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number required")
	}

	var rows []complaintModel.ComplaintModel
	if err := h.DB.
		Where("complaint_admission_number = ?", admissionNo).
		Order("complaint_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", complaintDTO.NewComplaintResponses(rows))
}

// GET /allcomplaint/all (admin)
func (h *ComplaintController) GetAll(c *fiber.Ctx) error {
	var rows []complaintModel.ComplaintModel
	if err := h.DB.Order("complaint_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.Success(c, "OK", complaintDTO.NewComplaintResponses(rows))
}

// PUT /complaint/update/:id — status and/or remark
func (h *ComplaintController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid complaint ID")
	}

	var req complaintDTO.UpdateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.Empty() {
		return helper.Error(c, fiber.StatusBadRequest, "No valid fields provided for update")
	}
	if err := validateComplaint.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m complaintModel.ComplaintModel
	if err := h.DB.First(&m, "complaint_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Complaint not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Complaint updated successfully", complaintDTO.NewComplaintResponse(&m))
}

// GET /allcomplaint/count
func (h *ComplaintController) PendingCount(c *fiber.Ctx) error {
	var pending int64
	if err := h.DB.Model(&complaintModel.ComplaintModel{}).
		Where("complaint_status = ?", complaintModel.StatusPending).
		Count(&pending).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server Error")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{"pending": pending})
}
