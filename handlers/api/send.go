package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"embedpanel/auth"
	"embedpanel/discord"
	"embedpanel/models"
	"embedpanel/storage"
	"embedpanel/utils"
)

// SendHandler handles embed sending
type SendHandler struct {
	store  *storage.Store
	client *discord.Client
}

// NewSendHandler creates a new send handler
func NewSendHandler(store *storage.Store, client *discord.Client) *SendHandler {
	return &SendHandler{
		store:  store,
		client: client,
	}
}

// SendRequest carries the full composer state for one send action. The
// credential fields live only in this request; they are never stored.
type SendRequest struct {
	BotToken     string                 `json:"botToken"`
	ChannelID    string                 `json:"channelId"`
	BotChannelID string                 `json:"botChannelId"`
	Form         models.EmbedFormData   `json:"form"`
	Fields       []models.ComposerField `json:"fields"`
}

// HandleSend validates the bot configuration, records one token log and one
// message log in the sender's partitions, and hands the embed to the
// (stubbed) Discord client.
func (h *SendHandler) HandleSend(c *fiber.Ctx) error {
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	if req.BotToken == "" || req.ChannelID == "" || req.BotChannelID == "" {
		return utils.ValidationError("Configure the bot before sending the embed", nil)
	}

	username := CurrentUsername(c)
	now := time.Now().UTC()
	embed := discord.BuildEmbed(req.Form, req.Fields, now)

	tokenLog := models.TokenLog{
		Token:     discord.MaskToken(req.BotToken),
		Timestamp: now.Format(time.RFC3339),
		User:      username,
		ChannelID: req.ChannelID,
	}
	if err := storage.Append(h.store, storage.ColTokenLogs, username, tokenLog); err != nil {
		return utils.InternalServerError("Failed to record token usage", err)
	}

	messageLog := models.MessageLog{
		Embed:     embed,
		Timestamp: now.Format(time.RFC3339),
		User:      username,
		ChannelID: req.ChannelID,
		Status:    "sent",
	}
	if err := storage.Append(h.store, storage.ColMessageLogs, username, messageLog); err != nil {
		return utils.InternalServerError("Failed to record message", err)
	}

	if err := h.client.SendEmbed(req.BotToken, req.ChannelID, embed); err != nil {
		return utils.InternalServerError("Failed to send embed", err)
	}

	view := auth.LogsFor(h.store, CurrentRole(c), username)

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Embed sent, sensitive fields cleared",
		"tokenLogs":   view.TokenLogs,
		"messageLogs": view.MessageLogs,
	})
}
