package auth

import (
	"errors"

	"embedpanel/models"
	"embedpanel/storage"
	"embedpanel/utils"
)

// Login failures. Both are terminal for the attempt; they differ only in
// what the user is told.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccessDenied       = errors.New("access has not been purchased")
)

// Session is an authenticated login scoped to a role. There is no expiry
// and no refresh; logout is the only transition back to anonymous.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Gate validates login attempts against the record store and the
// access-eligibility rule.
type Gate struct {
	store *storage.Store
}

// NewGate creates a gate over the given store.
func NewGate(store *storage.Store) *Gate {
	return &Gate{store: store}
}

// Login turns a username/password pair into a session. A password match is
// not enough: non-admin, non-seed users must also have an approved purchase
// log whose buyer name derives to their username.
func (g *Gate) Login(username, password string) (*Session, error) {
	users := g.store.Users()

	user, ok := users[username]
	if !ok || user.Password != password {
		return nil, ErrInvalidCredentials
	}

	if !g.eligible(user, username) {
		utils.Log.Warn("Login for %q denied: no approved purchase", username)
		return nil, ErrAccessDenied
	}

	return &Session{Username: username, Role: user.Role}, nil
}

// eligible applies the access rule: admins and the two seed accounts are
// always in; everyone else needs an approved purchase.
func (g *Gate) eligible(user models.User, username string) bool {
	if user.Role == models.RoleAdmin {
		return true
	}
	if username == "admin" || username == "user1" {
		return true
	}

	purchases := storage.Read[models.PurchaseLog](g.store, storage.ColPurchaseLogs, "")
	for _, p := range purchases {
		if p.Status == models.PurchaseApproved && models.NormalizeUsername(p.BuyerName) == username {
			return true
		}
	}
	return false
}

// CreateUser is the single place usernames are checked for uniqueness. The
// store's AddUser is a raw upsert; both admin creation and purchase
// provisioning must come through here.
func CreateUser(store *storage.Store, displayName, password, role string) (models.User, error) {
	username := models.NormalizeUsername(displayName)
	if username == "" || password == "" {
		return models.User{}, utils.ValidationError("Name and password are required", nil)
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		role = models.RoleUser
	}

	if _, exists := store.Users()[username]; exists {
		return models.User{}, utils.ValidationError("Username already exists", nil).
			WithContext("username", username)
	}

	user := models.User{Username: username, Password: password, Role: role}
	if err := store.AddUser(username, user); err != nil {
		return models.User{}, err
	}

	utils.Log.Info("User %q created with role %s", username, role)
	return user, nil
}
