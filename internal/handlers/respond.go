package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/apperr"
)

// fail converts a service error into the API's {"error": ...} body. Expected
// conditions keep their own message; internal failures get the generic one so
// driver details never leak to clients.
func fail(c *fiber.Ctx, err error, internalMsg string) error {
	code := apperr.StatusCode(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Println(internalMsg+":", err)
		msg = internalMsg
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
}
