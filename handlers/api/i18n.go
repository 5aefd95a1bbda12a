package api

import (
	"embedpanel/utils"

	"github.com/gofiber/fiber/v2"
)

// I18nHandler handles i18n-related requests
type I18nHandler struct{}

// GetTranslations returns translations for the client-side JavaScript
func (h *I18nHandler) GetTranslations(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if lang != "pt-BR" && lang != "en" {
		lang = "pt-BR"
	}

	localizer := utils.GetLocalizer(lang)

	keys := []string{
		"toast_login_ok",
		"toast_login_failed",
		"toast_access_denied",
		"toast_embed_sent",
		"toast_bot_not_configured",
		"toast_payment_link_ready",
		"toast_payment_approved",
		"toast_payment_pending",
		"toast_user_created",
		"toast_user_exists",
		"toast_fill_all_fields",
		"confirm_clear_token_logs",
		"confirm_clear_message_logs",
		"confirm_clear_all_logs",
		"preview_empty",
	}

	translations := make(map[string]string, len(keys))
	for _, k := range keys {
		translations[k] = utils.T(localizer, k)
	}

	return c.JSON(translations)
}
