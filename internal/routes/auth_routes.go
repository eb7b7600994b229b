package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/internal/handlers"
)

func RegisterAuthRoutes(api fiber.Router, d Deps) {
	auth := handlers.NewAuthHandler(d.Companies, []byte(d.Cfg.JWTSecret))
	oauth := handlers.NewOAuthHandler(d.Cfg, d.Students)

	g := api.Group("/auth")
	g.Post("/register", auth.Register)
	g.Post("/login", auth.Login)
	g.Get("/me", auth.Me)
	g.Get("/google/login", oauth.Login)
	g.Get("/google/callback", oauth.Callback)
}
