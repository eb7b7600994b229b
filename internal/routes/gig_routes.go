package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/internal/authctx"
	"github.com/Sidsmartz/SkillTag/internal/handlers"
	"github.com/Sidsmartz/SkillTag/internal/middleware"
)

func RegisterGigRoutes(api fiber.Router, d Deps) {
	h := handlers.NewGigHandler(d.Gigs, d.Companies)
	apps := handlers.NewApplicationHandler(d.Apps)

	api.Get("/gigs", h.List)
	api.Get("/gigs/:id", h.Get)

	api.Post("/gigs", middleware.RequireRole(authctx.RoleCompany), h.Create)
	api.Patch("/gigs/:id/complete", middleware.RequireRole(authctx.RoleCompany), h.Complete)
	api.Get("/gigs/:id/applicants", middleware.RequireRole(authctx.RoleCompany), apps.GigApplicants)

	api.Post("/gigs/:id/apply", middleware.RequireRole(authctx.RoleStudent), apps.Apply)
}
