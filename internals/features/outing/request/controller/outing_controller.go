package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	outingDTO "santhome_backend/internals/features/outing/request/dto"
	outingModel "santhome_backend/internals/features/outing/request/model"
	helper "santhome_backend/internals/helpers"
)

type OutingController struct {
	DB *gorm.DB
}

func NewOutingController(db *gorm.DB) *OutingController {
	return &OutingController{DB: db}
}

var validateOuting = validator.New()

// POST /outing/request
// One pass per student per calendar month, enforced twice: a lookup for a
// friendly message and the unique index for the race.
func (h *OutingController) Create(c *fiber.Ctx) error {
	var req outingDTO.CreateOutingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateOuting.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid outing date")
	}

	var taken int64
	if err := h.DB.Model(&outingModel.OutingRequestModel{}).
		Where("outing_admission_number = ? AND outing_month = ? AND outing_year = ?",
			m.OutingAdmissionNumber, m.OutingMonth, m.OutingYear).
		Count(&taken).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if taken > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Monthly outing limit reached (1 per month)")
	}

	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Monthly outing limit reached (1 per month)")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Outing request submitted", outingDTO.NewOutingResponse(m))
}

// GET /outing/all (admin)
func (h *OutingController) GetAll(c *fiber.Ctx) error {
	var rows []outingModel.OutingRequestModel
	if err := h.DB.Order("outing_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.Success(c, "OK", outingDTO.NewOutingResponses(rows))
}

// GET /outing/student/:admissionNo
func (h *OutingController) GetByStudent(c *fiber.Ctx) error {
	admissionNo := c.Params("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number is required")
	}

	var rows []outingModel.OutingRequestModel
	if err := h.DB.
		Where("outing_admission_number = ?", admissionNo).
		Order("outing_date DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", outingDTO.NewOutingResponses(rows))
}

// GET /outing/:id
func (h *OutingController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid outing ID")
	}

	var m outingModel.OutingRequestModel
	if err := h.DB.First(&m, "outing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Outing request not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", outingDTO.NewOutingResponse(&m))
}

// GET /outing/count?admissionNo=&month=&year=
func (h *OutingController) MonthlyCount(c *fiber.Ctx) error {
	admissionNo := c.Query("admissionNo")
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	var taken int64
	if err := h.DB.Model(&outingModel.OutingRequestModel{}).
		Where("outing_admission_number = ? AND outing_month = ? AND outing_year = ?",
			admissionNo, month, year).
		Count(&taken).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	count := 0
	if taken > 0 {
		count = 1
	}
	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{"outingCount": count})
}

// GET /outing/report?month=&year=
func (h *OutingController) MonthlyReport(c *fiber.Ctx) error {
	q := h.DB.Model(&outingModel.OutingRequestModel{}).
		Select("outing_admission_number AS admission_number, MIN(outing_student_name) AS student_name, COUNT(*) AS total_outings").
		Group("outing_admission_number").
		Order("student_name ASC")

	if monthStr := c.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid month")
		}
		q = q.Where("outing_month = ?", month)
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid year")
		}
		q = q.Where("outing_year = ?", year)
	}

	var report []outingDTO.MonthlyReportRow
	if err := q.Scan(&report).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", report)
}

// PUT /outing/parent-decision/:id
func (h *OutingController) ParentDecision(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid outing ID")
	}

	var req outingDTO.OutingDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateOuting.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid status")
	}

	var m outingModel.OutingRequestModel
	if err := h.DB.First(&m, "outing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Outing request not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	now := time.Now()
	m.OutingParentStatus = req.Status
	m.OutingParentDecidedAt = &now
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Parent "+strings.ToLower(req.Status)+" the request", outingDTO.NewOutingResponse(&m))
}

// PUT /outing/admin-decision/:id
func (h *OutingController) AdminDecision(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid outing ID")
	}

	var req outingDTO.OutingDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateOuting.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid status. Must be APPROVED or REJECTED")
	}

	var m outingModel.OutingRequestModel
	if err := h.DB.First(&m, "outing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Outing request not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	now := time.Now()
	m.OutingAdminStatus = req.Status
	m.OutingAdminDecidedAt = &now
	if req.Comment != "" {
		m.OutingAdminComment = req.Comment
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Request "+strings.ToLower(req.Status)+" successfully", outingDTO.NewOutingResponse(&m))
}

// GET /outing/approved
// Students whose latest request cleared both the parent and the warden.
func (h *OutingController) ApprovedStudents(c *fiber.Ctx) error {
	var rows []outingDTO.ApprovedOutingRow
	err := h.DB.Model(&outingModel.OutingRequestModel{}).
		Select("outing_admission_number AS admission_number, MIN(outing_student_name) AS student_name, MAX(outing_date) AS last_outing_date").
		Where("outing_admin_status = ? AND outing_parent_status = ?",
			outingModel.DecisionApproved, outingModel.DecisionApproved).
		Group("outing_admission_number").
		Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", rows)
}

// GET /outing/stats
func (h *OutingController) Stats(c *fiber.Ctx) error {
	var stats outingDTO.OutingStats
	base := h.DB.Model(&outingModel.OutingRequestModel{})

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := base.Session(&gorm.Session{}).Where("outing_admin_status = ?", outingModel.DecisionApproved).Count(&stats.Approved).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := base.Session(&gorm.Session{}).Where("outing_admin_status = ?", outingModel.DecisionRejected).Count(&stats.Rejected).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := base.Session(&gorm.Session{}).Where("outing_admin_status = ?", outingModel.DecisionPending).Count(&stats.Pending).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	now := time.Now()
	if err := base.Session(&gorm.Session{}).
		Where("outing_month = ? AND outing_year = ?", int(now.Month()), now.Year()).
		Count(&stats.Monthly).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", stats)
}
