// Package server assembles the Fiber application serving the inventory API.
package server

import (
	"errors"
	"time"

	"github.com/J-Castrillon/InventoryManagement/internal/handlers"
	"github.com/J-Castrillon/InventoryManagement/internal/response"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options tunes the middleware installed by NewApp.
type Options struct {
	// LogRequests installs the access log middleware.
	LogRequests bool
}

// NewApp builds the Fiber app with the product routes mounted under /api/v1.
func NewApp(service handlers.ProductService, logger *zap.Logger, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Inventory Management",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler(logger),
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if opts.LogRequests {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	app.Get("/api", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Desde la API",
		})
	})

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(service, logger).RegisterRoutes(apiV1)

	return app
}

// errorHandler renders errors that escaped a handler, including unknown
// routes and recovered panics, with the error envelope.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := handlers.MessageInternalError

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			message = handlers.MessageInternalError
		}
		return response.Error(c, code, message)
	}
}
