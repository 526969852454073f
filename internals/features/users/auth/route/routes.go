package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "santhome_backend/internals/features/users/auth/controller"
	"santhome_backend/internals/middlewares"
)

// AuthPublicRoutes: password recovery flow, reachable without a token.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	otpCtl := authCtl.NewOTPController(db)

	r.Post("/send-otp", middlewares.ForgotPasswordRateLimiter(), otpCtl.SendOTP)
	r.Post("/verify-otp", middlewares.ForgotPasswordRateLimiter(), otpCtl.VerifyOTP)
	r.Post("/reset-password", middlewares.ForgotPasswordRateLimiter(), otpCtl.ResetPassword)
}

func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	logoutCtl := authCtl.NewLogoutController(db)

	r.Post("/logout", logoutCtl.Logout)
}
