package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"embedpanel/models"
)

func TestBuildEmbed_DropsEmptyParts(t *testing.T) {
	embed := BuildEmbed(models.EmbedFormData{EmbedTitle: "Promo"}, nil, time.Now())

	require.Equal(t, "Promo", embed.Title)
	require.Empty(t, embed.Description)
	require.Nil(t, embed.Image)
	require.Nil(t, embed.Thumbnail)
	require.Nil(t, embed.Author)
	require.Nil(t, embed.Footer)
	require.Empty(t, embed.Timestamp)
	require.Empty(t, embed.Fields)
}

func TestBuildEmbed_FullForm(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	form := models.EmbedFormData{
		EmbedTitle:       "Promo",
		EmbedDescription: "Desconto",
		EmbedColor:       "#5865F2",
		EmbedImage:       "https://img.test/a.png",
		EmbedThumbnail:   "https://img.test/b.png",
		EmbedAuthor:      "Loja",
		EmbedFooter:      "rodape",
		EmbedTimestamp:   true,
	}

	embed := BuildEmbed(form, nil, now)
	require.Equal(t, 0x5865F2, embed.Color)
	require.Equal(t, "https://img.test/a.png", embed.Image.URL)
	require.Equal(t, "https://img.test/b.png", embed.Thumbnail.URL)
	require.Equal(t, "Loja", embed.Author.Name)
	require.Equal(t, "rodape", embed.Footer.Text)
	require.Equal(t, "2026-03-15T12:00:00Z", embed.Timestamp)
}

func TestBuildEmbed_SkipsIncompleteFields(t *testing.T) {
	fields := []models.ComposerField{
		{ID: "1", Name: "Campo", Value: "Valor"},
		{ID: "2", Name: "SemValor", Value: ""},
		{ID: "3", Name: "", Value: "SemNome"},
	}

	embed := BuildEmbed(models.EmbedFormData{}, fields, time.Now())
	require.Len(t, embed.Fields, 1)
	require.Equal(t, "Campo", embed.Fields[0].Name)
	require.False(t, embed.Fields[0].Inline)
}

func TestParseColor(t *testing.T) {
	require.Equal(t, 0x5865F2, ParseColor("#5865F2"))
	require.Equal(t, 0x5865F2, ParseColor("5865F2"))
	require.Equal(t, 0, ParseColor("not-a-color"))
	require.Equal(t, 0, ParseColor(""))
}

func TestMaskToken(t *testing.T) {
	require.Equal(t, "MTIzNDU2Nz...", MaskToken("MTIzNDU2Nzg5MDEyMzQ1Njc4"))
	require.Equal(t, "short...", MaskToken("short"))
	require.Equal(t, "exactly10c...", MaskToken("exactly10c"))
}
