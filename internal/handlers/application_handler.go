package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/dto"
	"github.com/Sidsmartz/SkillTag/internal/apperr"
	"github.com/Sidsmartz/SkillTag/internal/authctx"
	"github.com/Sidsmartz/SkillTag/services"
)

type ApplicationHandler struct {
	apps *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// @Summary Apply to a gig
// @Tags applications
// @Produce json
// @Param id path string true "Gig id"
// @Success 200 {object} map[string]interface{}
// @Router /gigs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	email, _ := authctx.EmailFrom(c)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.apps.Apply(ctx, email, authctx.NameFrom(c), c.Params("id"))
	if errors.Is(err, apperr.ErrAlreadyApplied) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "You have already applied to this gig"})
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Gig not found"})
	}
	if err != nil {
		return fail(c, err, "Failed to apply to gig")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Successfully applied to gig"})
}

// @Summary List the logged-in student's applications
// @Tags applications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /applications/mine [get]
func (h *ApplicationHandler) Mine(c *fiber.Ctx) error {
	email, _ := authctx.EmailFrom(c)

	views, err := h.apps.MyApplications(c.Context(), email)
	if err != nil {
		return fail(c, err, "Failed to fetch applications")
	}
	return c.JSON(fiber.Map{"applications": views})
}

// @Summary Toggle bookmark on an application
// @Tags applications
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} map[string]interface{}
// @Router /applications/{id}/bookmark [patch]
func (h *ApplicationHandler) ToggleBookmark(c *fiber.Ctx) error {
	email, _ := authctx.EmailFrom(c)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bookmarked, err := h.apps.ToggleBookmark(ctx, email, c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to toggle bookmark")
	}

	message := "Bookmark removed"
	if bookmarked {
		message = "Application bookmarked"
	}
	return c.JSON(fiber.Map{"success": true, "bookmarked": bookmarked, "message": message})
}

// @Summary Toggle boost on an application
// @Tags applications
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} map[string]interface{}
// @Router /applications/{id}/boost [patch]
func (h *ApplicationHandler) ToggleBoost(c *fiber.Ctx) error {
	email, _ := authctx.EmailFrom(c)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	boosted, err := h.apps.ToggleBoost(ctx, email, c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to toggle boost")
	}

	message := "Boost removed"
	if boosted {
		message = "Application boosted"
	}
	return c.JSON(fiber.Map{"success": true, "boosted": boosted, "message": message})
}

// @Summary Move an application through the status pipeline
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application id"
// @Param body body dto.UpdateStatusRequest true "Owning student email and new status"
// @Success 200 {object} map[string]interface{}
// @Router /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if req.Email == "" || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email and status are required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.apps.UpdateStatus(ctx, strings.ToLower(strings.TrimSpace(req.Email)), c.Params("id"), req.Status)
	if err != nil {
		return fail(c, err, "Failed to update status")
	}
	return c.JSON(fiber.Map{"success": true, "status": strings.ToLower(strings.TrimSpace(req.Status))})
}

// @Summary List a gig's applicants
// @Tags applications
// @Produce json
// @Param id path string true "Gig id"
// @Success 200 {object} map[string]interface{}
// @Router /gigs/{id}/applicants [get]
func (h *ApplicationHandler) GigApplicants(c *fiber.Ctx) error {
	views, err := h.apps.GigApplicants(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to fetch applicants")
	}
	return c.JSON(fiber.Map{"applicants": views})
}
