package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	messcutDTO "santhome_backend/internals/features/mess/messcut/dto"
	messcutModel "santhome_backend/internals/features/mess/messcut/model"
	messcutService "santhome_backend/internals/features/mess/messcut/service"
	helper "santhome_backend/internals/helpers"
)

type MesscutController struct {
	DB *gorm.DB
}

func NewMesscutController(db *gorm.DB) *MesscutController {
	return &MesscutController{DB: db}
}

var validateMesscut = validator.New()

// POST /adddetail
func (h *MesscutController) Create(c *fiber.Ctx) error {
	var req messcutDTO.CreateMesscutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateMesscut.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while submitting request.")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Request submitted successfully", messcutDTO.NewMesscutResponse(m))
}

// GET /messcut/student?admissionNo=
func (h *MesscutController) GetByStudent(c *fiber.Ctx) error {
	admissionNo := c.Query("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number required.")
	}

	var rows []messcutModel.MesscutModel
	if err := h.DB.
		Where("messcut_admission_number = ?", admissionNo).
		Order("messcut_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch requests.")
	}

	return helper.Success(c, "OK", messcutDTO.NewMesscutResponses(rows))
}

// GET /messcut/all (admin)
func (h *MesscutController) GetAll(c *fiber.Ctx) error {
	var rows []messcutModel.MesscutModel
	if err := h.DB.Order("messcut_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error.")
	}
	return helper.Success(c, "OK", messcutDTO.NewMesscutResponses(rows))
}

// PUT /messcut/status/:id (admin approve/reject)
func (h *MesscutController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var req messcutDTO.UpdateMesscutStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateMesscut.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m messcutModel.MesscutModel
	if err := h.DB.First(&m, "messcut_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No Mess Cut request found with the provided ID.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update messcut status.")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update messcut status.")
	}

	return helper.Success(c, "Status updated to '"+req.Status+"' successfully.", messcutDTO.NewMesscutResponse(&m))
}

// PUT /parent-status/:id — the parent may respond exactly once.
func (h *MesscutController) UpdateParentStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var req messcutDTO.UpdateParentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateMesscut.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m messcutModel.MesscutModel
	if err := h.DB.First(&m, "messcut_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Messcut request not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if m.MesscutParentStatus != messcutModel.ParentStatusPending {
		return helper.Error(c, fiber.StatusBadRequest, "Parent has already responded")
	}

	now := time.Now()
	m.MesscutParentStatus = req.ParentStatus
	m.MesscutStatusUpdatedAt = &now
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	msg := "Parent rejected the request"
	if req.ParentStatus == messcutModel.ParentStatusApprove {
		msg = "Parent approved the request"
	}
	return helper.Success(c, msg, messcutDTO.NewMesscutResponse(&m))
}

// GET /messcut/count — overview counters for the admin dashboard
func (h *MesscutController) Counts(c *fiber.Ctx) error {
	var total, pending, accepted, rejected int64

	base := h.DB.Model(&messcutModel.MesscutModel{})
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server Error")
	}
	h.DB.Model(&messcutModel.MesscutModel{}).Where("messcut_status = ?", messcutModel.StatusPending).Count(&pending)
	h.DB.Model(&messcutModel.MesscutModel{}).Where("messcut_status = ?", messcutModel.StatusAccept).Count(&accepted)
	h.DB.Model(&messcutModel.MesscutModel{}).Where("messcut_status = ?", messcutModel.StatusReject).Count(&rejected)

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"total":    total,
		"pending":  pending,
		"accepted": accepted,
		"rejected": rejected,
	})
}

// GET /messcut/clear/count — today's movement (IST calendar day)
func (h *MesscutController) TodayCounts(c *fiber.Ctx) error {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.Local
	}
	today := messcutService.CivilDateOf(time.Now().In(loc)).String()

	var pending, leavingToday, returningToday int64
	h.DB.Model(&messcutModel.MesscutModel{}).Where("messcut_status = ?", messcutModel.StatusPending).Count(&pending)
	h.DB.Model(&messcutModel.MesscutModel{}).Where("messcut_leaving_date = ?", today).Count(&leavingToday)
	h.DB.Model(&messcutModel.MesscutModel{}).Where("messcut_returning_date = ?", today).Count(&returningToday)

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"today":          today,
		"pending":        pending,
		"leavingToday":   leavingToday,
		"returningToday": returningToday,
	})
}
