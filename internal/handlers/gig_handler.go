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
	"github.com/Sidsmartz/SkillTag/model"
	"github.com/Sidsmartz/SkillTag/services"
)

// CompanyDirectory is the slice of the companies collection the gig handlers
// need. Satisfied by repository.CompanyRepository.
type CompanyDirectory interface {
	FindByEmail(ctx context.Context, email string) (*model.Company, error)
}

type GigHandler struct {
	gigs      *services.GigService
	companies CompanyDirectory
}

func NewGigHandler(gigs *services.GigService, companies CompanyDirectory) *GigHandler {
	return &GigHandler{gigs: gigs, companies: companies}
}

// gigDetail is the GET /gigs/:id shape: the gig plus its applicant list,
// with legacy-shape documents already normalized.
type gigDetail struct {
	dto.GigView
	Applicants []dto.ApplicantView `json:"applicants"`
}

// @Summary List active gigs
// @Tags gigs
// @Produce json
// @Success 200 {array} dto.GigView
// @Router /gigs [get]
func (h *GigHandler) List(c *fiber.Ctx) error {
	views, err := h.gigs.ListActive(c.Context())
	if err != nil {
		return fail(c, err, "Failed to fetch gigs")
	}
	return c.JSON(views)
}

// @Summary Get one gig with its applicants
// @Tags gigs
// @Produce json
// @Param id path string true "Gig id"
// @Success 200 {object} map[string]interface{}
// @Router /gigs/{id} [get]
func (h *GigHandler) Get(c *fiber.Ctx) error {
	g, err := h.gigs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to fetch gig details")
	}
	return c.JSON(gigDetail{
		GigView:    services.GigView(*g),
		Applicants: services.ApplicantViews(g),
	})
}

// @Summary Post a new gig
// @Tags gigs
// @Accept json
// @Produce json
// @Param body body dto.CreateGigRequest true "Gig fields"
// @Success 201 {object} dto.GigView
// @Router /gigs [post]
func (h *GigHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if strings.TrimSpace(req.GigTitle) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "gigTitle is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email, _ := authctx.EmailFrom(c)
	company, err := h.companies.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		// valid company token, but the account behind it is gone: an auth
		// problem, not a missing route
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "company account not found"})
	}
	if err != nil {
		return fail(c, err, "Failed to create gig")
	}

	g, err := h.gigs.Create(ctx, *company, req)
	if err != nil {
		return fail(c, err, "Failed to create gig")
	}
	return c.Status(fiber.StatusCreated).JSON(services.GigView(*g))
}

// @Summary Mark a gig completed
// @Tags gigs
// @Produce json
// @Param id path string true "Gig id"
// @Success 200 {object} map[string]interface{}
// @Router /gigs/{id}/complete [patch]
func (h *GigHandler) Complete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email, _ := authctx.EmailFrom(c)
	company, err := h.companies.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "company account not found"})
	}
	if err != nil {
		return fail(c, err, "Failed to complete gig")
	}

	if err := h.gigs.Complete(ctx, c.Params("id"), company.ID); err != nil {
		return fail(c, err, "Failed to complete gig")
	}
	return c.JSON(fiber.Map{"success": true, "status": "completed"})
}
