package controllers

import (
	"encoding/xml"

	"github.com/devtoolbox/devtoolbox/pkg/domain"

	"github.com/gofiber/fiber/v3"
)

type SitemapController struct {
	registry domain.ToolRegistry
	baseURL  string
}

type SitemapControllerDependencies struct {
	Registry domain.ToolRegistry
	BaseURL  string
}

func NewSitemapController(deps SitemapControllerDependencies) *SitemapController {
	return &SitemapController{
		registry: deps.Registry,
		baseURL:  deps.BaseURL,
	}
}

func (c *SitemapController) SitemapXML(ctx fiber.Ctx) error {
	sitemap := domain.BuildSitemap(c.baseURL, c.registry.Tools())

	data, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build sitemap")
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)

	return ctx.Send(append([]byte(xml.Header), data...))
}

func (c *SitemapController) SitemapJSON(ctx fiber.Ctx) error {
	sitemap := domain.BuildSitemap(c.baseURL, c.registry.Tools())

	return ctx.JSON(sitemap.Entries)
}
