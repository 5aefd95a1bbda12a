package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"embedpanel/auth"
	"embedpanel/utils"
)

// SessionMiddleware guards protected routes. It accepts either a logged-in
// browser session or a Bearer token from the login response, and exposes
// the identity as the "username" and "role" locals.
func SessionMiddleware(store *session.Store, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess, err := store.Get(c); err == nil {
			if sess.Get("authenticated") == true {
				c.Locals("username", sess.Get("username"))
				c.Locals("role", sess.Get("role"))
				return c.Next()
			}
		}

		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			s, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
			if err == nil {
				c.Locals("username", s.Username)
				c.Locals("role", s.Role)
				return c.Next()
			}
		}

		if IsAPIRequest(c) {
			return utils.UnauthorizedError("Not logged in", nil)
		}
		return c.Redirect("/login")
	}
}

// RequireAdmin rejects non-admin sessions. Must run after
// SessionMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentRole(c) != "admin" {
			return utils.ForbiddenError("Access denied", nil)
		}
		return c.Next()
	}
}

// CurrentUsername returns the authenticated username, or "".
func CurrentUsername(c *fiber.Ctx) string {
	if u, ok := c.Locals("username").(string); ok {
		return u
	}
	return ""
}

// CurrentRole returns the authenticated role, or "".
func CurrentRole(c *fiber.Ctx) string {
	if r, ok := c.Locals("role").(string); ok {
		return r
	}
	return ""
}

// IsAPIRequest reports whether the request expects a JSON response.
func IsAPIRequest(c *fiber.Ctx) bool {
	if c == nil {
		return false
	}
	if c.Get("HX-Request") != "" {
		return true
	}
	path := c.Path()
	return len(path) >= 4 && path[:4] == "/api"
}
