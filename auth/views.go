package auth

import (
	"embedpanel/models"
	"embedpanel/storage"
)

// LogView is the role-scoped slice of the token and message logs a session
// is allowed to see.
type LogView struct {
	TokenLogs   []models.TokenLog   `json:"tokenLogs"`
	MessageLogs []models.MessageLog `json:"messageLogs"`
}

// LogsFor computes the visible logs as a pure function of role and
// username: admins see every partition merged newest first, everyone else
// sees exactly their own partition.
func LogsFor(store *storage.Store, role, username string) LogView {
	if role == models.RoleAdmin {
		return LogView{
			TokenLogs:   storage.ReadAll[models.TokenLog](store, storage.ColTokenLogs),
			MessageLogs: storage.ReadAll[models.MessageLog](store, storage.ColMessageLogs),
		}
	}
	return LogView{
		TokenLogs:   storage.Read[models.TokenLog](store, storage.ColTokenLogs, username),
		MessageLogs: storage.Read[models.MessageLog](store, storage.ColMessageLogs, username),
	}
}
