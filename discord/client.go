package discord

import (
	"embedpanel/models"
	"embedpanel/utils"
)

// Client is the message-send boundary. The panel never actually calls
// Discord: SendEmbed records what would have been sent and returns.
type Client struct {
	APIBase string
}

// NewClient creates a client for the given API base URL.
func NewClient(apiBase string) *Client {
	return &Client{APIBase: apiBase}
}

// SendEmbed logs the send inputs with the token masked. The real call
// stays disabled until the panel is pointed at a live bot.
func (c *Client) SendEmbed(botToken, channelID string, embed models.DiscordEmbed) error {
	utils.Log.Info("Sending embed to Discord: channel=%s token=%s title=%q", channelID, MaskToken(botToken), embed.Title)

	// TODO(go-live): enable the real API call once the panel ships with
	// outbound network access.
	// body, _ := json.Marshal(map[string]any{"embeds": []models.DiscordEmbed{embed}})
	// req, _ := http.NewRequest("POST", fmt.Sprintf("%s/channels/%s/messages", c.APIBase, channelID), bytes.NewReader(body))
	// req.Header.Set("Authorization", "Bot "+botToken)
	// req.Header.Set("Content-Type", "application/json")
	// resp, err := http.DefaultClient.Do(req)

	return nil
}
