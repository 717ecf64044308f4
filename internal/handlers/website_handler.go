package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/pocketangadi/storefront/internal/httpx"
	"github.com/pocketangadi/storefront/internal/website"
)

type WebsiteHandler struct {
	websites *website.Registry
}

func NewWebsiteHandler(registry *website.Registry) *WebsiteHandler {
	return &WebsiteHandler{websites: registry}
}

// CreateWebsite publishes a site; the new site becomes active and current.
func (h *WebsiteHandler) CreateWebsite(c *fiber.Ctx) error {
	var req CreateWebsiteRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}
	if req.Name == "" {
		return httpx.BadRequest(c, "Website name is required", nil)
	}
	if req.URL == "" {
		return httpx.BadRequest(c, "Website URL is required", nil)
	}
	if req.Template != "" && req.Template != domain.TemplateFashion && req.Template != domain.TemplateDefault {
		return httpx.BadRequest(c, "Unknown template", map[string]interface{}{
			"template": req.Template,
		})
	}

	site := h.websites.Create(website.CreateRequest{
		Name:     req.Name,
		URL:      req.URL,
		Template: req.Template,
		Content:  req.Content,
	})
	return httpx.Created(c, "Website published", site)
}

func (h *WebsiteHandler) ListWebsites(c *fiber.Ctx) error {
	return httpx.OK(c, "Websites retrieved", h.websites.List())
}

// CurrentWebsite returns the site the dashboard is working on; 404 when no
// site is selected.
func (h *WebsiteHandler) CurrentWebsite(c *fiber.Ctx) error {
	site, ok := h.websites.Current()
	if !ok {
		return httpx.NotFound(c, "No website is currently selected")
	}
	return httpx.OK(c, "Current website retrieved", site)
}

func (h *WebsiteHandler) UpdateContent(c *fiber.Ctx) error {
	var content domain.WebsiteContent
	if err := c.BodyParser(&content); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	site, err := h.websites.UpdateContent(c.Params("id"), content)
	if err != nil {
		if errors.Is(err, website.ErrWebsiteNotFound) {
			return httpx.NotFound(c, "Website not found")
		}
		return httpx.Internal(c, "Website update failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return httpx.OK(c, "Website content updated", site)
}

func (h *WebsiteHandler) ActivateWebsite(c *fiber.Ctx) error {
	site, err := h.websites.Activate(c.Params("id"))
	if err != nil {
		if errors.Is(err, website.ErrWebsiteNotFound) {
			return httpx.NotFound(c, "Website not found")
		}
		return httpx.Internal(c, "Website activation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return httpx.OK(c, "Website activated", site)
}

func (h *WebsiteHandler) DeleteWebsite(c *fiber.Ctx) error {
	h.websites.Delete(c.Params("id"))
	return httpx.OK(c, "Website removed", nil)
}
