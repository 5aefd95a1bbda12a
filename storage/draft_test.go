package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveDraftForm_StripsCredentialsBeforeStore(t *testing.T) {
	s := newTestStore()

	err := s.SaveDraftForm("ana", map[string]any{
		"embedTitle": "Promo",
		"botToken":   "secret-token",
		"channelId":  "123",
	})
	require.NoError(t, err)

	raw, ok, err := s.kv.Get(Key(ColEmbedFormData, "ana"))
	require.NoError(t, err)
	require.True(t, ok)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Equal(t, "Promo", stored["embedTitle"])
	require.NotContains(t, stored, "botToken")
	require.NotContains(t, stored, "channelId")
}

func TestDraftForm_StripsCredentialsOnRead(t *testing.T) {
	s := newTestStore()

	// A draft written before the stripping rule existed.
	raw, err := json.Marshal(map[string]any{
		"embedTitle":   "Legacy",
		"botToken":     "leaked",
		"botChannelId": "456",
	})
	require.NoError(t, err)
	require.NoError(t, s.kv.Set(Key(ColEmbedFormData, "ana"), raw))

	form := s.DraftForm("ana")
	require.Equal(t, "Legacy", form["embedTitle"])
	require.NotContains(t, form, "botToken")
	require.NotContains(t, form, "botChannelId")
}

func TestSaveDraftForm_MergesLastWriteWins(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.SaveDraftForm("ana", map[string]any{
		"embedTitle": "First",
		"embedColor": "#5865F2",
	}))
	require.NoError(t, s.SaveDraftForm("ana", map[string]any{
		"embedTitle": "Second",
	}))

	form := s.DraftForm("ana")
	require.Equal(t, "Second", form["embedTitle"])
	require.Equal(t, "#5865F2", form["embedColor"])
}

func TestDraftForm_CorruptDraftYieldsEmptyForm(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.kv.Set(Key(ColEmbedFormData, "ana"), []byte("not a draft")))

	form := s.DraftForm("ana")
	require.NotNil(t, form)
	require.Empty(t, form)
}
