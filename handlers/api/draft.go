package api

import (
	"github.com/gofiber/fiber/v2"

	"embedpanel/storage"
	"embedpanel/utils"
)

// DraftHandler persists the composer form between sessions, per user.
type DraftHandler struct {
	store *storage.Store
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(store *storage.Store) *DraftHandler {
	return &DraftHandler{store: store}
}

// GetDraft returns the caller's saved form. Credential fields never come
// back, no matter what was sent in.
func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"form":    h.store.DraftForm(CurrentUsername(c)),
	})
}

// SaveDraft merges the posted fields onto the stored draft. The body is
// taken as an open map so stray credential keys can be stripped rather than
// silently round-tripped.
func (h *DraftHandler) SaveDraft(c *fiber.Ctx) error {
	var partial map[string]any
	if err := c.BodyParser(&partial); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	if err := h.store.SaveDraftForm(CurrentUsername(c), partial); err != nil {
		return utils.InternalServerError("Failed to save draft", err)
	}

	return c.JSON(fiber.Map{"success": true})
}
