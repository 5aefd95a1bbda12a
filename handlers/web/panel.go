package web

import (
	"github.com/gofiber/fiber/v2"

	"embedpanel/auth"
	"embedpanel/handlers/api"
	"embedpanel/models"
	"embedpanel/storage"
)

// PanelHandler renders the embed composer for logged-in users.
type PanelHandler struct {
	store *storage.Store
}

// NewPanelHandler creates a new panel handler
func NewPanelHandler(store *storage.Store) *PanelHandler {
	return &PanelHandler{store: store}
}

// ShowPanel renders the composer with the user's saved draft and their
// role-scoped logs.
func (h *PanelHandler) ShowPanel(c *fiber.Ctx) error {
	username := api.CurrentUsername(c)
	role := api.CurrentRole(c)

	view := auth.LogsFor(h.store, role, username)

	return c.Render("panel", fiber.Map{
		"Username":    username,
		"IsAdmin":     role == models.RoleAdmin,
		"TokenLogs":   view.TokenLogs,
		"MessageLogs": view.MessageLogs,
		"CSRFToken":   c.Locals("csrf"),
	})
}
