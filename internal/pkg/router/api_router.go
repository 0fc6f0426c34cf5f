package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/naruhodo/newsapp/app/controllers"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
	"github.com/naruhodo/newsapp/internal/pkg/constants"
	"github.com/naruhodo/newsapp/internal/pkg/env"
	"github.com/naruhodo/newsapp/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// The signature gate runs before any handler; the user context follows so
	// handlers can rely on it being present.
	app.Use(middleware.SignatureGate(env.GetEnv("HMAC_SECURITY", "")))
	app.Use(middleware.UserContextMiddleware)

	api := app.Group(constants.APIPrefix, limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	api.Get("/news", controllers.HandleNewsList)
	api.Get("/news/:id", controllers.HandleNewsGetByID)
	api.Post("/news", controllers.HandleNewsCreate)
	api.Put("/news/:id", controllers.HandleNewsUpdate)
	api.Delete("/news/:id", controllers.HandleNewsDelete)

	api.Get("/news/:newsId/comments", controllers.HandleCommentsForNews)
	api.Get("/comments/:id", controllers.HandleCommentGetByID)
	api.Post("/comments", controllers.HandleCommentCreate)
	api.Put("/comments/:id", controllers.HandleCommentUpdate)
	api.Delete("/comments/:id", controllers.HandleCommentDelete)

	api.Post("/account/login", controllers.HandleLogin)
	api.Post("/account/register", controllers.HandleRegister)
	api.Post("/account/logout", controllers.HandleLogout)

	// Anything else is an unknown route, reported as a business-level message.
	app.Use(func(c *fiber.Ctx) error {
		return apperror.NewBusinessError("route was not found")
	})
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
