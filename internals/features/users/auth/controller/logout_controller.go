package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "santhome_backend/internals/features/users/auth/model"
	authService "santhome_backend/internals/features/users/auth/service"
	helper "santhome_backend/internals/helpers"
)

type LogoutController struct {
	DB *gorm.DB
}

func NewLogoutController(db *gorm.DB) *LogoutController {
	return &LogoutController{DB: db}
}

// POST /logout
// The access token goes on the blacklist for its remaining lifetime, so
// a stolen copy dies with the session.
func (h *LogoutController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("raw_token").(string)
	if tokenString == "" {
		return helper.Error(c, fiber.StatusBadRequest, "No token to revoke")
	}

	ttl := authService.ResolveBlacklistTTL(tokenString)
	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(ttl),
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// Already blacklisted; logout is idempotent.
			return helper.Success(c, "Logged out successfully", nil)
		}
		log.Println("[ERROR] blacklist insert:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	c.ClearCookie("access_token")
	return helper.Success(c, "Logged out successfully", nil)
}
