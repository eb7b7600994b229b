package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/internal/authctx"
	"github.com/Sidsmartz/SkillTag/services"
)

type StudentHandler struct {
	students *services.StudentService
	gigs     *services.GigService
}

func NewStudentHandler(students *services.StudentService, gigs *services.GigService) *StudentHandler {
	return &StudentHandler{students: students, gigs: gigs}
}

// @Summary Get the logged-in student's document
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /students/me [get]
func (h *StudentHandler) Me(c *fiber.Ctx) error {
	email, _ := authctx.EmailFrom(c)

	student, err := h.students.GetByEmail(c.Context(), email)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Student not found"})
	}
	if err != nil {
		return fail(c, err, "Failed to fetch student data")
	}
	return c.JSON(fiber.Map{"success": true, "student": student})
}

// @Summary Get the logged-in student's profile
// @Tags students
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Router /students/me/profile [get]
func (h *StudentHandler) Profile(c *fiber.Ctx) error {
	email, _ := authctx.EmailFrom(c)

	profile, err := h.students.Profile(c.Context(), email)
	if err != nil {
		return fail(c, err, "Failed to fetch profile data")
	}
	return c.JSON(profile)
}

// @Summary Update the logged-in student's profile
// @Tags students
// @Accept json
// @Produce json
// @Param body body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Router /students/me/profile [put]
func (h *StudentHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email, _ := authctx.EmailFrom(c)
	if err := h.students.UpdateProfile(ctx, email, req); err != nil {
		return fail(c, err, "Failed to update profile")
	}
	return c.JSON(fiber.Map{"success": true})
}

// @Summary List people referred by the logged-in student
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /students/me/referrals [get]
func (h *StudentHandler) Referrals(c *fiber.Ctx) error {
	email, _ := authctx.EmailFrom(c)

	referred, err := h.students.Referrals(c.Context(), email)
	if err != nil {
		return fail(c, err, "Failed to fetch referrals")
	}
	return c.JSON(fiber.Map{"referredPeople": referred})
}

// @Summary Public profile lookup by email
// @Tags students
// @Produce json
// @Param email query string true "Email to look up"
// @Success 200 {object} map[string]interface{}
// @Router /users/details [get]
func (h *StudentHandler) Details(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Email query parameter is required"})
	}

	student, err := h.students.GetByEmail(c.Context(), email)
	if err == nil {
		out := fiber.Map{
			"_id":    student.ID.Hex(),
			"name":   student.Name,
			"email":  student.Email,
			"skills": student.Skills,
		}
		if student.Image != "" {
			out["profileImage"] = student.Image
		}
		if student.Phone != "" {
			out["phone"] = student.Phone
		}
		if student.Education != "" {
			out["education"] = student.Education
		}
		return c.JSON(out)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return fail(c, err, "Failed to fetch user details")
	}

	// No student document; the applicant summary embedded in a gig may still
	// identify the person.
	summary, err := h.gigs.ApplicantSummaryByEmail(c.Context(), email)
	if err != nil {
		return fail(c, err, "Failed to fetch user details")
	}
	return c.JSON(fiber.Map{
		"_id":   summary.ID.Hex(),
		"name":  summary.Name,
		"email": summary.Email,
	})
}
