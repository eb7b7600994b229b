package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/internal/authctx"
	"github.com/Sidsmartz/SkillTag/internal/handlers"
	"github.com/Sidsmartz/SkillTag/internal/middleware"
)

func RegisterApplicationRoutes(api fiber.Router, d Deps) {
	h := handlers.NewApplicationHandler(d.Apps)

	g := api.Group("/applications")
	g.Get("/mine", middleware.RequireRole(authctx.RoleStudent), h.Mine)
	g.Patch("/:id/bookmark", middleware.RequireRole(authctx.RoleStudent), h.ToggleBookmark)
	g.Patch("/:id/boost", middleware.RequireRole(authctx.RoleStudent), h.ToggleBoost)
	g.Patch("/:id/status", middleware.RequireRole(authctx.RoleCompany), h.UpdateStatus)
}
