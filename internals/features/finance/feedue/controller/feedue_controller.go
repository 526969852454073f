package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeDTO "santhome_backend/internals/features/finance/feedue/dto"
	feeModel "santhome_backend/internals/features/finance/feedue/model"
	helper "santhome_backend/internals/helpers"
)

type FeeDueController struct {
	DB *gorm.DB
}

func NewFeeDueController(db *gorm.DB) *FeeDueController {
	return &FeeDueController{DB: db}
}

var validateFee = validator.New()

// POST /fees/bulk
// Bad rows are skipped with a reason rather than failing the upload.
func (h *FeeDueController) BulkAdd(c *fiber.Ctx) error {
	var feeList []feeDTO.FeeDueEntry
	if err := c.BodyParser(&feeList); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body must be a non-empty array")
	}
	if len(feeList) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Request body must be a non-empty array")
	}

	inserted := make([]string, 0, len(feeList))
	skipped := make([]feeDTO.SkippedFeeEntry, 0)

	for _, entry := range feeList {
		if reason := entry.Validate(); reason != "" {
			adm := entry.AdmissionNumber
			if adm == "" {
				adm = "UNKNOWN"
			}
			skipped = append(skipped, feeDTO.SkippedFeeEntry{AdmissionNumber: adm, Reason: reason})
			continue
		}

		m := entry.ToModel()
		if err := h.DB.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				skipped = append(skipped, feeDTO.SkippedFeeEntry{
					AdmissionNumber: m.FeeAdmissionNumber,
					Reason:          "Admission number already exists",
				})
				continue
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Server error while inserting bulk fee data")
		}
		inserted = append(inserted, m.FeeAdmissionNumber)
	}

	return helper.SuccessMap(c, fiber.StatusCreated, fiber.Map{
		"message":       "Bulk fee upload completed",
		"insertedCount": len(inserted),
		"skippedCount":  len(skipped),
		"inserted":      inserted,
		"skipped":       skipped,
	})
}

// GET /fees/get/:admissionNo
func (h *FeeDueController) GetByAdmission(c *fiber.Ctx) error {
	admissionNo := c.Params("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number is required")
	}

	var m feeModel.FeeDueModel
	if err := h.DB.First(&m, "fee_admission_number = ?", admissionNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fee details not found for this admission number")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while fetching fee details")
	}

	return helper.Success(c, "OK", m)
}

// GET /fees/get
func (h *FeeDueController) GetAll(c *fiber.Ctx) error {
	var rows []feeModel.FeeDueModel
	if err := h.DB.Order("fee_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while fetching fee list")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"count": len(rows),
		"data":  rows,
	})
}

// DELETE /fees/bulk-delete
func (h *FeeDueController) BulkDelete(c *fiber.Ctx) error {
	var req feeDTO.BulkDeleteFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "admissionNumbers must be a non-empty array")
	}
	if err := validateFee.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "admissionNumbers must be a non-empty array")
	}

	deleted := make([]string, 0, len(req.AdmissionNumbers))
	notFound := make([]string, 0)

	for _, admissionNo := range req.AdmissionNumbers {
		res := h.DB.Delete(&feeModel.FeeDueModel{}, "fee_admission_number = ?", admissionNo)
		if res.Error != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Server error while deleting fee records")
		}
		if res.RowsAffected == 0 {
			notFound = append(notFound, admissionNo)
			continue
		}
		deleted = append(deleted, admissionNo)
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"message":       "Bulk delete completed",
		"deletedCount":  len(deleted),
		"notFoundCount": len(notFound),
		"deleted":       deleted,
		"notFound":      notFound,
	})
}
