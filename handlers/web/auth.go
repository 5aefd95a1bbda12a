package web

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"embedpanel/auth"
	"embedpanel/config"
	"embedpanel/utils"
)

type AuthHandler struct {
	store  *session.Store
	config *config.Config
	gate   *auth.Gate
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(store *session.Store, cfg *config.Config, gate *auth.Gate) *AuthHandler {
	return &AuthHandler{
		store:  store,
		config: cfg,
		gate:   gate,
	}
}

// ShowLogin renders the login page
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil && sess.Get("authenticated") == true {
		return c.Redirect("/panel")
	}
	return c.Render("login", fiber.Map{
		"Username":  "",
		"CSRFToken": c.Locals("csrf"),
	})
}

// HandleLogin processes the login form
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(500).SendString("Session error")
	}

	username := strings.TrimSpace(c.FormValue("username"))
	password := strings.TrimSpace(c.FormValue("password"))

	if username == "" || password == "" {
		return c.Status(400).Render("login", fiber.Map{
			"Error":     "Username and password are required",
			"Username":  username,
			"CSRFToken": c.Locals("csrf"),
		})
	}

	loginSess, err := h.gate.Login(username, password)
	if err != nil {
		status := 401
		message := "Invalid username or password"
		if errors.Is(err, auth.ErrAccessDenied) {
			status = 403
			message = "Access denied: purchase access before logging in"
		}
		return c.Status(status).Render("login", fiber.Map{
			"Error":     message,
			"Username":  username,
			"CSRFToken": c.Locals("csrf"),
		})
	}

	token, err := auth.GenerateToken(loginSess, h.config.JWT.Secret, 24*time.Hour)
	if err != nil {
		return c.Status(500).Render("login", fiber.Map{
			"Error":     "Failed to create authentication token",
			"Username":  username,
			"CSRFToken": c.Locals("csrf"),
		})
	}

	sess.Set("authenticated", true)
	sess.Set("username", loginSess.Username)
	sess.Set("role", loginSess.Role)
	sess.Set("token", token)
	sess.SetExpiry(24 * time.Hour)

	if err := sess.Save(); err != nil {
		return c.Status(500).Render("login", fiber.Map{
			"Error":     "Failed to create session",
			"Username":  username,
			"CSRFToken": c.Locals("csrf"),
		})
	}

	utils.Log.Info("User %q logged in with role %s", loginSess.Username, loginSess.Role)
	return c.Redirect("/panel")
}

// HandleLogout processes user logout
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Redirect("/login")
	}

	if err := sess.Destroy(); err != nil {
		return c.Status(500).SendString("Error during logout")
	}

	return c.Redirect("/login")
}
