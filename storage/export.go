package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"embedpanel/models"
)

// ExportDocument is the downloadable log archive. Only the unscoped
// collections are included, matching what the shared panel accumulated
// before per-user partitioning existed.
type ExportDocument struct {
	TokenLogs   []models.TokenLog   `json:"tokenLogs"`
	MessageLogs []models.MessageLog `json:"messageLogs"`
	ExportDate  string              `json:"exportDate"`
}

// Export serializes the unscoped token and message logs with an export
// timestamp. The returned filename carries the current date.
func (s *Store) Export(now time.Time) ([]byte, string, error) {
	doc := ExportDocument{
		TokenLogs:   Read[models.TokenLog](s, ColTokenLogs, ""),
		MessageLogs: Read[models.MessageLog](s, ColMessageLogs, ""),
		ExportDate:  now.UTC().Format(time.RFC3339),
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("discord-embed-logs-%s.json", now.UTC().Format("2006-01-02"))
	return raw, filename, nil
}
