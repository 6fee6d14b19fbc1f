package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/devtoolbox/devtoolbox/internal/controllers"
	"github.com/devtoolbox/devtoolbox/internal/server"
	"github.com/devtoolbox/devtoolbox/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewServeCommand(a *app) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tool catalog and API over HTTP",
		Long:  `Start the HTTP service. It serves the catalog, runs tool actions and publishes a sitemap.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				a.config.HTTPAddress = address
			}

			return runServe(a)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address, overrides HTTP_ADDRESS")

	return cmd
}

func runServe(a *app) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	toolController := controllers.NewToolController(controllers.ToolControllerDependencies{
		Registry:      a.deps.Registry,
		MaxBcryptCost: a.config.MaxBcryptCost,
	})
	sitemapController := controllers.NewSitemapController(controllers.SitemapControllerDependencies{
		Registry: a.deps.Registry,
		BaseURL:  a.config.BaseURL,
	})

	router := server.NewHTTPServer(server.HTTPServerDependencies{
		Config:            *a.config,
		ToolController:    toolController,
		SitemapController: sitemapController,
	})

	log.Info().
		Str("address", a.config.HTTPAddress).
		Str("base_url", a.config.BaseURL).
		Str("version", version.GetVersion()).
		Int("tool_count", len(a.deps.Registry.Tools())).
		Msg("Starting devtoolbox server")

	if err := router.Listen(a.config.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}

	log.Info().Msg("devtoolbox server stopped")

	return nil
}
