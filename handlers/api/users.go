package api

import (
	"github.com/gofiber/fiber/v2"

	"embedpanel/auth"
	"embedpanel/models"
	"embedpanel/payment"
	"embedpanel/storage"
	"embedpanel/utils"
)

// UserHandler handles admin user management
type UserHandler struct {
	store *storage.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(store *storage.Store) *UserHandler {
	return &UserHandler{store: store}
}

// GetUsers lists every account. The panel shows passwords by design: they
// are plaintext throwaways handed out by the admin or the purchase flow.
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"users":   h.store.Users(),
	})
}

// CreateUser creates an account from the admin form. The username is
// derived from the name; duplicates are rejected before anything is stored.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.NewUserForm
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	user, err := auth.CreateUser(h.store, req.Name, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"username": user.Username,
	})
}

// GeneratePassword returns a fresh 10-character password for the create
// form's "generate" button.
func (h *UserHandler) GeneratePassword(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":  true,
		"password": payment.RandomPassword(10),
	})
}
