package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles allows the request only when the JWT role claim matches one
// of the given roles. Must run after AuthMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - insufficient role")
		}
		return c.Next()
	}
}
