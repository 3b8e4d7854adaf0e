package handlers

import (
	"time"

	applog "productgen/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(deps *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		Views: Views(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			if code >= 500 {
				// keep internals out of the response
				applog.Error(c, "server.error", err, nil)
				return jsonError(c, code, "something went wrong, please try again")
			}
			return jsonError(c, code, err.Error())
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("start", time.Now())
		return c.Next()
	})
	app.Use(requestid.New())
	app.Use(logger.New())

	Register(app, deps)
	return app
}

func Register(app *fiber.App, deps *Deps) {
	token := RequireToken(deps.Auth)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/", deps.PageHandler.Home)

	app.Post("/authenticate", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return jsonError(c, fiber.StatusTooManyRequests, "too many login attempts, retry soon")
		},
	}), deps.AuthHandler.Authenticate)

	// import job
	app.Post("/run", token, deps.JobHandler.Run)
	app.Post("/launch", token, deps.JobHandler.Launch)

	api := app.Group("/api/v1")
	api.Get("/sample", limiter.New(limiter.Config{Max: 30, Expiration: time.Minute}), deps.DatasetHandler.Sample)
	api.Post("/datasets", token, limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.datasets.hit", nil)
			return jsonError(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
		},
	}), deps.DatasetHandler.Create)
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)

	app.Use(func(c *fiber.Ctx) error {
		return jsonError(c, fiber.StatusNotFound, "not found")
	})
}
