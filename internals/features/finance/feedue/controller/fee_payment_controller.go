package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	feeDTO "santhome_backend/internals/features/finance/feedue/dto"
	feeModel "santhome_backend/internals/features/finance/feedue/model"
	feeService "santhome_backend/internals/features/finance/feedue/service"
	helper "santhome_backend/internals/helpers"
)

type FeePaymentController struct {
	DB *gorm.DB
}

func NewFeePaymentController(db *gorm.DB) *FeePaymentController {
	return &FeePaymentController{DB: db}
}

// POST /fees/payment/initiate
// Opens a gateway transaction against the student's outstanding due and
// hands the snap token back to the frontend.
func (h *FeePaymentController) Initiate(c *fiber.Ctx) error {
	var req feeDTO.InitiateFeePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateFee.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var due feeModel.FeeDueModel
	if err := h.DB.First(&due, "fee_admission_number = ?", req.AdmissionNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fee details not found for this admission number")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if req.Amount > due.FeeTotalDue {
		return helper.Error(c, fiber.StatusBadRequest, "Amount exceeds outstanding due")
	}

	payment := feeModel.FeePaymentModel{
		PaymentOrderID:         fmt.Sprintf("FEE-%s-%d", req.AdmissionNumber, time.Now().UnixNano()),
		PaymentAdmissionNumber: req.AdmissionNumber,
		PaymentAmount:          req.Amount,
		PaymentStatus:          feeModel.PaymentPending,
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	email := req.Email
	token, err := feeService.GenerateSnapToken(payment.PaymentOrderID, payment.PaymentAmount, due.FeeStudentName, email)
	if err != nil {
		log.Println("[ERROR] snap token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment token")
	}

	payment.PaymentSnapToken = token
	if err := h.DB.Save(&payment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"order_id":   payment.PaymentOrderID,
		"snap_token": token,
	})
}

// POST /fees/payment/notification
// Gateway webhook, unauthenticated. Settlement moves the amount from due
// to paid; anything terminal-negative marks the payment failed.
func (h *FeePaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid webhook")
	}

	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	if orderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid webhook")
	}

	raw := c.Body()

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var payment feeModel.FeePaymentModel
		if err := tx.First(&payment, "payment_order_id = ?", orderID).Error; err != nil {
			return err
		}

		payment.PaymentRawNotification = datatypes.JSON(raw)

		switch txStatus {
		case "settlement", "capture", "success":
			if payment.PaymentStatus == feeModel.PaymentCompleted {
				// Gateways retry; the ledger must not move twice.
				return tx.Save(&payment).Error
			}
			payment.PaymentStatus = feeModel.PaymentCompleted
			if err := tx.Save(&payment).Error; err != nil {
				return err
			}

			amount := payment.PaymentAmount
			if grossStr, ok := body["gross_amount"].(string); ok {
				if gross, err := strconv.ParseFloat(grossStr, 64); err == nil && int64(gross) > 0 {
					amount = int64(gross)
				}
			}
			return tx.Model(&feeModel.FeeDueModel{}).
				Where("fee_admission_number = ?", payment.PaymentAdmissionNumber).
				Updates(map[string]interface{}{
					"fee_total_paid": gorm.Expr("fee_total_paid + ?", amount),
					"fee_total_due":  gorm.Expr("fee_total_due - ?", amount),
				}).Error
		case "deny", "cancel", "expire", "failure", "failed":
			payment.PaymentStatus = feeModel.PaymentFailed
			return tx.Save(&payment).Error
		default:
			return tx.Save(&payment).Error
		}
	})
	if err != nil {
		log.Println("[ERROR] payment webhook:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

// GET /fees/payment/history/:admissionNo
func (h *FeePaymentController) History(c *fiber.Ctx) error {
	admissionNo := c.Params("admissionNo")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number is required")
	}

	var rows []feeModel.FeePaymentModel
	if err := h.DB.
		Where("payment_admission_number = ?", admissionNo).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", rows)
}
