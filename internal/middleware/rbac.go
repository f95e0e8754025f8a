package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/utils"
)

// RequireRole ensures the authenticated user holds one of the allowed
// workflow roles. Route-level guard only; identity checks (assigned advisor,
// owning student) live in the workflow service.
func RequireRole(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		if role.Valid() {
			allowed[role] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(models.Role)
		if !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		if _, ok := allowed[role]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
