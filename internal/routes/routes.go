package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sidsmartz/SkillTag/config"
	"github.com/Sidsmartz/SkillTag/internal/repository"
	"github.com/Sidsmartz/SkillTag/services"
)

// Deps carries everything the route groups need.
type Deps struct {
	Cfg       config.Config
	Students  *services.StudentService
	Gigs      *services.GigService
	Apps      *services.ApplicationService
	Companies *repository.CompanyRepository
}

// Register wires all route groups under /api.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	RegisterAuthRoutes(api, d)
	RegisterStudentRoutes(api, d)
	RegisterGigRoutes(api, d)
	RegisterApplicationRoutes(api, d)
}
