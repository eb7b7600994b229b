package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/internal/authctx"
	"github.com/Sidsmartz/SkillTag/internal/handlers"
	"github.com/Sidsmartz/SkillTag/internal/middleware"
)

func RegisterStudentRoutes(api fiber.Router, d Deps) {
	h := handlers.NewStudentHandler(d.Students, d.Gigs)

	me := api.Group("/students/me", middleware.RequireRole(authctx.RoleStudent))
	me.Get("/", h.Me)
	me.Get("/profile", h.Profile)
	me.Put("/profile", h.UpdateProfile)
	me.Get("/referrals", h.Referrals)

	// public lookup used by company views
	api.Get("/users/details", h.Details)
}
