package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
)

// CSRFConfig holds CSRF protection configuration
type CSRFConfig struct {
	TokenLength  int
	CookieName   string
	HeaderName   string
	FormField    string
	ContextKey   string
	CookieMaxAge int
}

// DefaultCSRFConfig returns default CSRF configuration
func DefaultCSRFConfig() CSRFConfig {
	return CSRFConfig{
		TokenLength:  32,
		CookieName:   "csrf_token",
		HeaderName:   "X-CSRF-Token",
		FormField:    "csrf_token",
		ContextKey:   "csrf",
		CookieMaxAge: 3600,
	}
}

// CSRFProtection validates mutating requests against the double-submit
// cookie. The token may arrive in a header (API calls) or a form field
// (page posts).
func CSRFProtection(config ...CSRFConfig) fiber.Handler {
	cfg := DefaultCSRFConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		cookieToken := c.Cookies(cfg.CookieName)

		sentToken := c.Get(cfg.HeaderName)
		if sentToken == "" {
			sentToken = c.FormValue(cfg.FormField)
		}

		if cookieToken == "" || sentToken == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "CSRF token missing",
			})
		}

		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(sentToken)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "CSRF token mismatch",
			})
		}

		return c.Next()
	}
}

// IssueCSRFToken generates a token for the current visitor, sets the cookie
// and stores it in the context for templates to embed.
func IssueCSRFToken(cfg CSRFConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cfg.CookieName)
		if token == "" {
			b := make([]byte, cfg.TokenLength)
			if _, err := rand.Read(b); err == nil {
				token = base64.URLEncoding.EncodeToString(b)
				c.Cookie(&fiber.Cookie{
					Name:     cfg.CookieName,
					Value:    token,
					MaxAge:   cfg.CookieMaxAge,
					HTTPOnly: true,
					SameSite: "Strict",
				})
			}
		}
		c.Locals(cfg.ContextKey, token)
		return c.Next()
	}
}
