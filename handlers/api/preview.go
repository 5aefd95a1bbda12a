package api

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"embedpanel/discord"
	"embedpanel/models"
	"embedpanel/utils"
)

// PreviewRequest is one composer state snapshot pushed over the preview
// socket as the user types.
type PreviewRequest struct {
	Form   models.EmbedFormData   `json:"form"`
	Fields []models.ComposerField `json:"fields"`
}

// PreviewResponse carries the projected embed back, with user text
// sanitized for direct insertion into the page.
type PreviewResponse struct {
	Embed models.DiscordEmbed `json:"embed"`
	Error string              `json:"error,omitempty"`
}

// PreviewUpgrade gates the websocket upgrade for /ws/preview.
func PreviewUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// HandlePreview re-renders the embed for every form snapshot the client
// sends, until the socket closes.
func HandlePreview() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		defer conn.Close()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var req PreviewRequest
			resp := PreviewResponse{}
			if err := json.Unmarshal(raw, &req); err != nil {
				resp.Error = "invalid preview payload"
			} else {
				resp.Embed = sanitizeEmbed(discord.BuildEmbed(req.Form, req.Fields, time.Now()))
			}

			out, err := json.Marshal(resp)
			if err != nil {
				utils.Log.Error("Failed to marshal preview: %v", err)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
				return
			}
		}
	})
}

// sanitizeEmbed strips HTML from every user-entered text part before the
// preview is injected into the page.
func sanitizeEmbed(e models.DiscordEmbed) models.DiscordEmbed {
	e.Title = utils.SanitizeText(e.Title)
	e.Description = utils.SanitizeText(e.Description)
	if e.Author != nil {
		e.Author = &models.EmbedAuthor{Name: utils.SanitizeText(e.Author.Name)}
	}
	if e.Footer != nil {
		e.Footer = &models.EmbedFooter{Text: utils.SanitizeText(e.Footer.Text)}
	}
	for i, f := range e.Fields {
		e.Fields[i].Name = utils.SanitizeText(f.Name)
		e.Fields[i].Value = utils.SanitizeText(f.Value)
	}
	return e
}
