package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"santhome_backend/internals/constants"
	authService "santhome_backend/internals/features/users/auth/service"
	parentDTO "santhome_backend/internals/features/users/parent/dto"
	parentModel "santhome_backend/internals/features/users/parent/model"
	helper "santhome_backend/internals/helpers"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

var validateParent = validator.New()

// POST /parent/login
func (h *ParentController) Login(c *fiber.Ctx) error {
	var req parentDTO.LoginParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Username and password are required")
	}
	if err := validateParent.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Username and password are required")
	}

	var parent parentModel.ParentModel
	if err := h.DB.First(&parent, "parent_username = ?", strings.TrimSpace(req.Username)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid username")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(parent.ParentPasswordHash), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Incorrect password")
	}

	access, refresh, err := authService.IssueTokens(
		parent.ParentID, parent.ParentName, constants.RoleParent, parent.ParentAdmissionNumber)
	if err != nil {
		log.Println("[ERROR] issue tokens:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Login successful", parentDTO.ParentLoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         parentDTO.NewParentProfile(&parent),
	})
}

// POST /parent/change-password
func (h *ParentController) ChangePassword(c *fiber.Ctx) error {
	var req parentDTO.ChangeParentPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "All fields are required")
	}
	if err := validateParent.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "All fields are required")
	}
	if req.CurrentPassword == req.NewPassword {
		return helper.Error(c, fiber.StatusBadRequest, "New password must be different from current password")
	}

	var parent parentModel.ParentModel
	if err := h.DB.First(&parent, "parent_username = ?", strings.TrimSpace(req.Username)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(parent.ParentPasswordHash), []byte(req.CurrentPassword)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := h.DB.Model(&parent).Update("parent_password_hash", string(hash)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Password updated successfully", nil)
}

// POST /parent/create (admin)
func (h *ParentController) Create(c *fiber.Ctx) error {
	var req parentDTO.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateParent.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	m := req.ToModel(string(hash))
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Username already taken")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Parent account created", parentDTO.NewParentProfile(m))
}
