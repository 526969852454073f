package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	eligibilityDTO "santhome_backend/internals/features/outing/eligibility/dto"
	eligibilityModel "santhome_backend/internals/features/outing/eligibility/model"
	helper "santhome_backend/internals/helpers"
)

type EligibilityController struct {
	DB *gorm.DB
}

func NewEligibilityController(db *gorm.DB) *EligibilityController {
	return &EligibilityController{DB: db}
}

var validateEligibility = validator.New()

// POST /outing/eligibility/bulk
func (h *EligibilityController) SetBulk(c *fiber.Ctx) error {
	var req eligibilityDTO.SetEligibilityBulkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateEligibility.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "No students received")
	}

	rows := make([]eligibilityModel.OutingEligibilityModel, 0, len(req.Students))
	for _, s := range req.Students {
		rows = append(rows, *s.ToModel())
	}

	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "eligibility_admission_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"eligibility_student_name",
			"eligibility_is_eligible",
		}),
	}).Create(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Eligibility updated successfully", nil)
}

// GET /outing/eligibility/check/:admissionNo
func (h *EligibilityController) Check(c *fiber.Ctx) error {
	admissionNo := c.Params("admissionNo")

	var rec eligibilityModel.OutingEligibilityModel
	err := h.DB.First(&rec, "eligibility_admission_number = ?", admissionNo).Error
	if err != nil || rec.EligibilityIsEligible != eligibilityModel.EligibleYes {
		if err != nil && err != gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusInternalServerError, "Server error")
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success":  false,
			"eligible": false,
			"message":  "Student is not eligible",
		})
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"eligible": true,
		"data": eligibilityDTO.EligibleStudent{
			AdmissionNumber: rec.EligibilityAdmissionNumber,
			StudentName:     rec.EligibilityStudentName,
		},
	})
}

// GET /outing/eligibility/eligible
func (h *EligibilityController) EligibleStudents(c *fiber.Ctx) error {
	var rows []eligibilityModel.OutingEligibilityModel
	if err := h.DB.
		Where("eligibility_is_eligible = ?", eligibilityModel.EligibleYes).
		Order("eligibility_student_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	out := make([]eligibilityDTO.EligibleStudent, 0, len(rows))
	for _, r := range rows {
		out = append(out, eligibilityDTO.EligibleStudent{
			AdmissionNumber: r.EligibilityAdmissionNumber,
			StudentName:     r.EligibilityStudentName,
		})
	}

	return helper.Success(c, "OK", out)
}
