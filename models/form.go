package models

// EmbedFormData is the composer form state persisted per user between
// sessions. The bot token and channel identifiers are deliberately absent
// from this struct: they must never reach the store.
type EmbedFormData struct {
	EmbedTitle       string `json:"embedTitle,omitempty"`
	EmbedDescription string `json:"embedDescription,omitempty"`
	EmbedColor       string `json:"embedColor,omitempty"`
	EmbedImage       string `json:"embedImage,omitempty"`
	EmbedThumbnail   string `json:"embedThumbnail,omitempty"`
	EmbedAuthor      string `json:"embedAuthor,omitempty"`
	EmbedFooter      string `json:"embedFooter,omitempty"`
	EmbedTimestamp   bool   `json:"embedTimestamp,omitempty"`
}
