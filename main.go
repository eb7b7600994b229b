// @title SkillTag API
// @version 1.0
// @description Gig marketplace backend: students apply to gigs, companies manage applicants.
// @BasePath /api
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/Sidsmartz/SkillTag/bootstrap"
	"github.com/Sidsmartz/SkillTag/config"
	"github.com/Sidsmartz/SkillTag/database"
	_ "github.com/Sidsmartz/SkillTag/docs"
	"github.com/Sidsmartz/SkillTag/internal/middleware"
	"github.com/Sidsmartz/SkillTag/internal/repository"
	"github.com/Sidsmartz/SkillTag/internal/routes"
	"github.com/Sidsmartz/SkillTag/services"
)

func main() {
	cfg := config.Load()

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	students := repository.NewStudentRepository(db)
	gigs := repository.NewGigRepository(db)
	companies := repository.NewCompanyRepository(db)

	routes.Register(app, routes.Deps{
		Cfg:       cfg,
		Students:  services.NewStudentService(students),
		Gigs:      services.NewGigService(gigs),
		Apps:      services.NewApplicationService(students, gigs),
		Companies: companies,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
