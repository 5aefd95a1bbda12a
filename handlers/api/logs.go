package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"embedpanel/auth"
	"embedpanel/models"
	"embedpanel/storage"
	"embedpanel/utils"
)

// LogsHandler serves the role-scoped log views and admin log controls.
type LogsHandler struct {
	store *storage.Store
}

// NewLogsHandler creates a new logs handler
func NewLogsHandler(store *storage.Store) *LogsHandler {
	return &LogsHandler{store: store}
}

// GetLogs returns the token and message logs the session may see.
func (h *LogsHandler) GetLogs(c *fiber.Ctx) error {
	view := auth.LogsFor(h.store, CurrentRole(c), CurrentUsername(c))
	return c.JSON(fiber.Map{
		"success":     true,
		"tokenLogs":   view.TokenLogs,
		"messageLogs": view.MessageLogs,
	})
}

// GetPurchases returns every purchase log. Admin only.
func (h *LogsHandler) GetPurchases(c *fiber.Ctx) error {
	purchases := storage.Read[models.PurchaseLog](h.store, storage.ColPurchaseLogs, "")
	return c.JSON(fiber.Map{
		"success":   true,
		"purchases": purchases,
	})
}

// ClearTokenLogs clears token logs: every partition for admins, only the
// caller's own otherwise.
func (h *LogsHandler) ClearTokenLogs(c *fiber.Ctx) error {
	return h.clear(c, storage.ColTokenLogs)
}

// ClearMessageLogs clears message logs with the same scoping rule.
func (h *LogsHandler) ClearMessageLogs(c *fiber.Ctx) error {
	return h.clear(c, storage.ColMessageLogs)
}

func (h *LogsHandler) clear(c *fiber.Ctx, collection string) error {
	username := CurrentUsername(c)

	if CurrentRole(c) == models.RoleAdmin {
		if err := h.store.ClearPrefix(collection); err != nil {
			return utils.InternalServerError("Failed to clear logs", err)
		}
		utils.Log.Info("Admin %q cleared all %s partitions", username, collection)
	} else {
		var err error
		if collection == storage.ColTokenLogs {
			err = storage.Write(h.store, collection, username, []models.TokenLog{})
		} else {
			err = storage.Write(h.store, collection, username, []models.MessageLog{})
		}
		if err != nil {
			return utils.InternalServerError("Failed to clear logs", err)
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

// ExportLogs streams the unscoped log collections as a downloadable JSON
// document named with today's date.
func (h *LogsHandler) ExportLogs(c *fiber.Ctx) error {
	raw, filename, err := h.store.Export(time.Now())
	if err != nil {
		return utils.InternalServerError("Failed to export logs", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(raw)
}
