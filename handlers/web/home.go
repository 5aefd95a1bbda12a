package web

import (
	"github.com/gofiber/fiber/v2"

	"embedpanel/config"
)

// HomeHandler renders the public landing and purchase page. The purchase
// flow itself runs through the payment API handlers.
type HomeHandler struct {
	config *config.Config
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(cfg *config.Config) *HomeHandler {
	return &HomeHandler{config: cfg}
}

// ShowHome renders the landing page with the purchase form.
func (h *HomeHandler) ShowHome(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Price":     h.config.Payment.Price,
		"CSRFToken": c.Locals("csrf"),
	})
}
