package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
)

const roleLocal = "userRole"

// RequireRoles returns a middleware that validates the request's bearer
// token and enforces a per-operation role allow-list. The resolved role is
// stored in locals for handlers that need it.
func RequireRoles(validator RoleValidator, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return apperrors.Unauthorized("missing or malformed bearer token")
		}

		role, err := validator.Validate(c.UserContext(), token)
		if err != nil {
			return err
		}

		for _, r := range allowed {
			if role == r {
				c.Locals(roleLocal, role)
				return c.Next()
			}
		}
		return apperrors.Forbidden("access denied")
	}
}

// Role returns the role resolved by RequireRoles for the current request.
func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(roleLocal).(string)
	return role
}
