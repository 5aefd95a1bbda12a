package storage

import (
	"encoding/json"

	"embedpanel/models"
	"embedpanel/utils"
)

// SeedUsers returns the two accounts that exist before anything has ever
// been persisted. This fallback is the whole system's initial state.
func SeedUsers() map[string]models.User {
	return map[string]models.User{
		"admin": {Username: "admin", Password: "admin123", Role: models.RoleAdmin},
		"user1": {Username: "user1", Password: "user123", Role: models.RoleUser},
	}
}

// Users returns the stored user map, or the seed map if nothing is stored
// or the stored value cannot be parsed.
func (s *Store) Users() map[string]models.User {
	raw, ok, err := s.kv.Get(ColUsers)
	if err != nil || !ok {
		return SeedUsers()
	}

	var users map[string]models.User
	if err := json.Unmarshal(raw, &users); err != nil || users == nil {
		utils.Log.Debug("Discarding unparseable user map: %v", err)
		return SeedUsers()
	}
	return users
}

// WriteUsers overwrites the user map.
func (s *Store) WriteUsers(users map[string]models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.kv.Set(ColUsers, raw)
}

// AddUser upserts a single user. The store performs no uniqueness check;
// auth.CreateUser is the one place that does.
func (s *Store) AddUser(username string, user models.User) error {
	users := s.Users()
	users[username] = user
	return s.WriteUsers(users)
}
