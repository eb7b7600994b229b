package authctx

import "github.com/gofiber/fiber/v2"

const (
	RoleStudent = "student"
	RoleCompany = "company"
)

// EmailFrom returns the authenticated principal's email, if any.
func EmailFrom(c *fiber.Ctx) (string, bool) {
	if v := c.Locals("email"); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// NameFrom returns the display name carried by the token, may be empty.
func NameFrom(c *fiber.Ctx) string {
	if v := c.Locals("name"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RoleFrom returns the principal's role claim ("student" or "company").
func RoleFrom(c *fiber.Ctx) string {
	if v := c.Locals("role"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
