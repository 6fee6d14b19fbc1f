package server

import (
	"errors"
	"time"

	"github.com/devtoolbox/devtoolbox/internal/config"
	"github.com/devtoolbox/devtoolbox/internal/controllers"
	"github.com/devtoolbox/devtoolbox/internal/middlewares"
	"github.com/devtoolbox/devtoolbox/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog/log"
)

type HTTPServerDependencies struct {
	Config            config.Config
	ToolController    *controllers.ToolController
	SitemapController *controllers.SitemapController
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName:      "devtoolbox",
		BodyLimit:    deps.Config.MaxBodyBytes,
		ErrorHandler: handleError,
	})

	if deps.Config.EnableCORS {
		router.Use(cors.New())
	}
	router.Use(recoverer.New())
	router.Use(middlewares.RequestLogger())

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "devtoolbox",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.Get("/", deps.ToolController.Catalog)
	router.Get("/sitemap.xml", deps.SitemapController.SitemapXML)

	api := router.Group("/api")

	api.Get("/tools", deps.ToolController.ListTools)
	api.Get("/tools/:id", deps.ToolController.GetTool)
	api.Post("/tools/:id/actions/:action", deps.ToolController.ExecuteAction)
	api.Get("/categories", deps.ToolController.ListCategories)
	api.Get("/sitemap", deps.SitemapController.SitemapJSON)

	return router
}

func handleError(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled request error")
	}

	return c.Status(code).JSON(errorResponse{Error: message})
}
