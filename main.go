package main

import (
	"fmt"
	"log"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/naruhodo/newsapp/app/repository"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
	"github.com/naruhodo/newsapp/internal/pkg/cache"
	"github.com/naruhodo/newsapp/internal/pkg/database"
	"github.com/naruhodo/newsapp/internal/pkg/env"
	"github.com/naruhodo/newsapp/internal/pkg/queue"
	"github.com/naruhodo/newsapp/internal/pkg/router"
	"github.com/naruhodo/newsapp/internal/pkg/session"
)

func main() {
	app := NewApplication()
	defer queue.Close()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	queue.Setup()

	repository.InitializeFactory(database.GetDB())
	session.NewSessionStore()

	app := fiber.New(fiber.Config{
		BodyLimit:    104857600, // 100 MiB, photo uploads
		ErrorHandler: apperror.ErrorHandler,
	})
	app.Use(recover.New(), logger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	if env.GetEnvBool("DEBUG_REQUEST", false) {
		app.Use(func(c *fiber.Ctx) error {
			fiberlog.Infof("RECEIVED %s %s %s", c.Method(), c.OriginalURL(), c.Body())
			return c.Next()
		})
	}
	app.Get("/metrics", monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
