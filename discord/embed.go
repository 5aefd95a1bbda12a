package discord

import (
	"strconv"
	"strings"
	"time"

	"embedpanel/models"
)

// BuildEmbed projects composer form state into the embed wire shape. Empty
// parts are dropped; fields missing a name or a value are dropped too.
func BuildEmbed(form models.EmbedFormData, fields []models.ComposerField, now time.Time) models.DiscordEmbed {
	embed := models.DiscordEmbed{}

	if form.EmbedTitle != "" {
		embed.Title = form.EmbedTitle
	}
	if form.EmbedDescription != "" {
		embed.Description = form.EmbedDescription
	}
	if form.EmbedColor != "" {
		embed.Color = ParseColor(form.EmbedColor)
	}
	if form.EmbedImage != "" {
		embed.Image = &models.EmbedImage{URL: form.EmbedImage}
	}
	if form.EmbedThumbnail != "" {
		embed.Thumbnail = &models.EmbedImage{URL: form.EmbedThumbnail}
	}
	if form.EmbedAuthor != "" {
		embed.Author = &models.EmbedAuthor{Name: form.EmbedAuthor}
	}
	if form.EmbedFooter != "" {
		embed.Footer = &models.EmbedFooter{Text: form.EmbedFooter}
	}
	if form.EmbedTimestamp {
		embed.Timestamp = now.UTC().Format(time.RFC3339)
	}

	for _, f := range fields {
		if f.Name == "" || f.Value == "" {
			continue
		}
		embed.Fields = append(embed.Fields, models.EmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: false,
		})
	}

	return embed
}

// ParseColor converts "#5865F2" (or "5865F2") to the integer Discord
// expects. Unparseable input yields 0.
func ParseColor(hex string) int {
	hex = strings.TrimPrefix(hex, "#")
	v, err := strconv.ParseInt(hex, 16, 64)
	if err != nil {
		return 0
	}
	return int(v)
}

// MaskToken keeps the first 10 characters and replaces the rest, which is
// all the logs ever see of a bot token.
func MaskToken(token string) string {
	if len(token) <= 10 {
		return token + "..."
	}
	return token[:10] + "..."
}
