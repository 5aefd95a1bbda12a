package web

import (
	"github.com/gofiber/fiber/v2"

	"embedpanel/auth"
	"embedpanel/handlers/api"
	"embedpanel/models"
	"embedpanel/storage"
)

// AdminHandler renders the admin panel: aggregate logs, purchases and user
// management. Routes carrying this handler sit behind RequireAdmin.
type AdminHandler struct {
	store *storage.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store *storage.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// ShowAdmin renders the admin page with every user's logs merged newest
// first, the purchase history, and the account list.
func (h *AdminHandler) ShowAdmin(c *fiber.Ctx) error {
	username := api.CurrentUsername(c)

	view := auth.LogsFor(h.store, models.RoleAdmin, username)
	purchases := storage.Read[models.PurchaseLog](h.store, storage.ColPurchaseLogs, "")

	return c.Render("admin", fiber.Map{
		"Username":    username,
		"TokenLogs":   view.TokenLogs,
		"MessageLogs": view.MessageLogs,
		"Purchases":   purchases,
		"Users":       h.store.Users(),
		"CSRFToken":   c.Locals("csrf"),
	})
}
