package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/wichananm65/users-api/internal/config"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New builds the Fiber app with middleware, a JSON error handler and the
// health endpoint. Resource routes are registered by the caller.
func New(cfg config.ServerConfig, logger *slog.Logger, db Pinger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "users-api",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(requestLogger(logger))
	app.Use(recover.New())
	setupCORS(app, cfg.CORSAllowOrigins)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.WarnContext(ctx, "health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "database unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// requestLogger logs one line per request once the handler chain returns.
func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		logger.InfoContext(c.UserContext(), "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start),
			"request_id", c.Locals("requestid"),
		)
		return err
	}
}

// errorHandler renders errors that escape handlers (unknown routes, wrong
// methods, recovered panics) as {"message": ...}.
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			logger.ErrorContext(c.UserContext(), "unhandled error",
				"path", c.Path(),
				"request_id", c.Locals("requestid"),
				"error", err,
			)
		}

		return c.Status(code).JSON(fiber.Map{"message": message})
	}
}
