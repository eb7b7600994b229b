package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/authctx"
)

// RequireAuth rejects anonymous requests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.EmailFrom(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
		}
		return c.Next()
	}
}

// RequireRole rejects principals whose role claim does not match.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.EmailFrom(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
		}
		if authctx.RoleFrom(c) != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "forbidden"})
		}
		return c.Next()
	}
}
