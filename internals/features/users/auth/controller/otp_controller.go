package controller

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "santhome_backend/internals/features/users/auth/model"
	authService "santhome_backend/internals/features/users/auth/service"
	studentModel "santhome_backend/internals/features/users/student/model"
	helper "santhome_backend/internals/helpers"
)

const otpTTL = 5 * time.Minute

type OTPController struct {
	DB *gorm.DB
}

func NewOTPController(db *gorm.DB) *OTPController {
	return &OTPController{DB: db}
}

var validateOTP = validator.New()

type sendOTPRequest struct {
	Email string `json:"gmail" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"gmail" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type resetPasswordRequest struct {
	Email           string `json:"gmail" validate:"required,email"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// POST /send-otp
func (h *OTPController) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Gmail is required")
	}
	if err := validateOTP.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Gmail is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "No user found with this email address")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while sending OTP")
	}

	code, err := generateOTPCode()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while sending OTP")
	}

	// One live code per email
	if err := h.DB.Where("otp_email = ?", email).Delete(&authModel.OTPModel{}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while sending OTP")
	}
	otp := authModel.OTPModel{
		OTPEmail:     email,
		OTPCode:      code,
		OTPExpiresAt: time.Now().Add(otpTTL),
	}
	if err := h.DB.Create(&otp).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while sending OTP")
	}

	if err := authService.SendOTPEmail(c.Context(), email, student.StudentName, code); err != nil {
		log.Println("[ERROR] otp mail:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while sending OTP")
	}

	return helper.Success(c, "OTP sent successfully to your email", nil)
}

// POST /verify-otp
func (h *OTPController) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Gmail and OTP are required")
	}
	if err := validateOTP.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Gmail and OTP are required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var otp authModel.OTPModel
	err := h.DB.First(&otp, "otp_email = ? AND otp_code = ?", email, req.OTP).Error
	if err != nil || otp.Expired(time.Now()) {
		if err != nil && err != gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusInternalServerError, "Server error during OTP verification")
		}
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or expired OTP. Please try again")
	}

	// Verified codes are single use
	if err := h.DB.Where("otp_email = ?", email).Delete(&authModel.OTPModel{}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during OTP verification")
	}

	return helper.Success(c, "OTP verified successfully", nil)
}

// POST /reset-password
func (h *OTPController) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Gmail, new password, and confirm password are required")
	}
	if err := validateOTP.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Password must be at least 6 characters long")
	}
	if strings.TrimSpace(req.NewPassword) != strings.TrimSpace(req.ConfirmPassword) {
		return helper.Error(c, fiber.StatusBadRequest, "Passwords do not match")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "User not found with this Gmail")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during password reset")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(req.NewPassword)), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during password reset")
	}

	if err := h.DB.Model(&student).Update("student_password_hash", string(hash)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during password reset")
	}

	return helper.Success(c, "Password reset successfully", nil)
}
