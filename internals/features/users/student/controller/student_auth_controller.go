package controller

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"santhome_backend/internals/configs"
	"santhome_backend/internals/constants"
	authService "santhome_backend/internals/features/users/auth/service"
	studentDTO "santhome_backend/internals/features/users/student/dto"
	studentModel "santhome_backend/internals/features/users/student/model"
	helper "santhome_backend/internals/helpers"
)

type StudentAuthController struct {
	DB *gorm.DB
}

func NewStudentAuthController(db *gorm.DB) *StudentAuthController {
	return &StudentAuthController{DB: db}
}

var validateStudent = validator.New()

// POST /register
func (h *StudentAuthController) Register(c *fiber.Ctx) error {
	var req studentDTO.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	m := req.ToModel(string(hash))
	m.StudentRole = constants.RoleStudent
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Admission number already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student registered successfully", studentDTO.NewStudentResponse(m))
}

// POST /login
func (h *StudentAuthController) Login(c *fiber.Ctx) error {
	var req studentDTO.LoginStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number and password are required")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_admission_number = ?", strings.TrimSpace(req.AdmissionNumber)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid admission number or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.StudentPasswordHash), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid admission number or password")
	}

	access, refresh, err := authService.IssueTokens(
		student.StudentID, student.StudentName, student.StudentRole, student.StudentAdmissionNumber)
	if err != nil {
		log.Println("[ERROR] issue tokens:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Login successful", studentDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         studentDTO.NewStudentResponse(&student),
	})
}

// POST /login/google
// Accepts a Google ID token; the account must already exist with the same
// email, sign-in never creates roster rows.
func (h *StudentAuthController) GoogleLogin(c *fiber.Ctx) error {
	var req studentDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "idToken is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.ToLower(claimSet.Email)
	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No account linked to this Google email")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	access, refresh, err := authService.IssueTokens(
		student.StudentID, student.StudentName, student.StudentRole, student.StudentAdmissionNumber)
	if err != nil {
		log.Println("[ERROR] issue tokens:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Login successful", studentDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         studentDTO.NewStudentResponse(&student),
	})
}

// PUT /update-password
func (h *StudentAuthController) UpdatePassword(c *fiber.Ctx) error {
	var req studentDTO.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.CurrentPassword == req.NewPassword {
		return helper.Error(c, fiber.StatusBadRequest, "New password must be different from current password")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_admission_number = ?", strings.TrimSpace(req.AdmissionNumber)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.StudentPasswordHash), []byte(req.CurrentPassword)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := h.DB.Model(&student).Update("student_password_hash", string(hash)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Password updated successfully", nil)
}
