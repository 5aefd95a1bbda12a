package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"embedpanel/utils"
)

// LocaleMiddleware detects and sets the user's locale. The panel defaults
// to Brazilian Portuguese, its original audience, with English as the only
// alternative.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Query("lang")

		if lang == "" {
			lang = c.Cookies("lang")
		}

		if lang == "" {
			acceptLang := c.Get("Accept-Language")
			if strings.HasPrefix(acceptLang, "en") {
				lang = "en"
			} else {
				lang = "pt-BR"
			}
		}

		if lang != "pt-BR" && lang != "en" {
			lang = "pt-BR"
		}

		localizer := utils.GetLocalizer(lang)

		c.Locals("localizer", localizer)
		c.Locals("lang", lang)

		return c.Next()
	}
}
