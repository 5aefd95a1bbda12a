package storage

import (
	"encoding/json"

	"embedpanel/utils"
)

// Credential-like fields that must never be persisted with a draft. Both the
// read and the write path strip them unconditionally.
var sensitiveFormKeys = []string{"botToken", "channelId", "botChannelId"}

// DraftForm returns the saved composer form for a user, with credential
// fields stripped. A missing or unparseable draft yields an empty form.
func (s *Store) DraftForm(scope string) map[string]any {
	raw, ok, err := s.kv.Get(Key(ColEmbedFormData, scope))
	if err != nil || !ok {
		return map[string]any{}
	}

	var form map[string]any
	if err := json.Unmarshal(raw, &form); err != nil || form == nil {
		utils.Log.Debug("Discarding unparseable draft for scope %q: %v", scope, err)
		return map[string]any{}
	}
	return stripSensitive(form)
}

// SaveDraftForm merges partial onto the stored draft, last write wins per
// field. Credential fields in partial are dropped before anything touches
// the store.
func (s *Store) SaveDraftForm(scope string, partial map[string]any) error {
	updated := s.DraftForm(scope)
	for k, v := range stripSensitive(partial) {
		updated[k] = v
	}

	raw, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return s.kv.Set(Key(ColEmbedFormData, scope), raw)
}

func stripSensitive(form map[string]any) map[string]any {
	safe := make(map[string]any, len(form))
	for k, v := range form {
		safe[k] = v
	}
	for _, k := range sensitiveFormKeys {
		delete(safe, k)
	}
	return safe
}
