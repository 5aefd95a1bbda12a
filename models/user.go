package models

import "strings"

// Roles understood by the panel.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a panel account. Passwords are stored in plaintext on
// purpose: the panel runs locally and the admin user list displays them.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // "admin" or "user"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewUserForm carries the admin "create user" form fields. The username is
// derived from Name, never entered directly.
type NewUserForm struct {
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// NormalizeUsername derives the storage key for a display name: lowercase
// with every whitespace run removed. Signup, admin creation and the purchase
// eligibility check all go through this one function.
func NormalizeUsername(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}
