package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"embedpanel/models"
	"embedpanel/storage"
)

func newTestStore() *storage.Store {
	return storage.New(storage.NewMemoryKV())
}

func TestLogin_SeedAccounts(t *testing.T) {
	g := NewGate(newTestStore())

	sess, err := g.Login("admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, sess.Role)

	sess, err = g.Login("user1", "user123")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, sess.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	g := NewGate(newTestStore())

	_, err := g.Login("admin", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	g := NewGate(newTestStore())

	_, err := g.Login("ghost", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ValidPasswordWithoutPurchaseIsDenied(t *testing.T) {
	store := newTestStore()
	g := NewGate(store)

	_, err := CreateUser(store, "Ana Silva", "pw", models.RoleUser)
	require.NoError(t, err)

	_, err = g.Login("anasilva", "pw")
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestLogin_ApprovedPurchaseGrantsAccess(t *testing.T) {
	store := newTestStore()
	g := NewGate(store)

	_, err := CreateUser(store, "Ana Silva", "pw", models.RoleUser)
	require.NoError(t, err)

	// The buyer name derives to the username even when cased and
	// spaced differently.
	require.NoError(t, storage.Append(store, storage.ColPurchaseLogs, "", models.PurchaseLog{
		BuyerName: "ANA  silva",
		Status:    models.PurchaseApproved,
	}))

	sess, err := g.Login("anasilva", "pw")
	require.NoError(t, err)
	require.Equal(t, "anasilva", sess.Username)
}

func TestLogin_PendingPurchaseDoesNotGrantAccess(t *testing.T) {
	store := newTestStore()
	g := NewGate(store)

	_, err := CreateUser(store, "Ana Silva", "pw", models.RoleUser)
	require.NoError(t, err)
	require.NoError(t, storage.Append(store, storage.ColPurchaseLogs, "", models.PurchaseLog{
		BuyerName: "Ana Silva",
		Status:    models.PurchasePending,
	}))

	_, err = g.Login("anasilva", "pw")
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestLogin_AdminRoleBypassesPurchaseCheck(t *testing.T) {
	store := newTestStore()
	g := NewGate(store)

	_, err := CreateUser(store, "Chefe", "pw", models.RoleAdmin)
	require.NoError(t, err)

	sess, err := g.Login("chefe", "pw")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, sess.Role)
}

func TestCreateUser_DerivesUsernameFromDisplayName(t *testing.T) {
	store := newTestStore()

	user, err := CreateUser(store, "Ana Silva", "pw", models.RoleUser)
	require.NoError(t, err)
	require.Equal(t, "anasilva", user.Username)
	require.Contains(t, store.Users(), "anasilva")
}

func TestCreateUser_RejectsNormalizedDuplicates(t *testing.T) {
	store := newTestStore()

	_, err := CreateUser(store, "Ana Silva", "pw", models.RoleUser)
	require.NoError(t, err)

	// "ana  silva" collapses to the same username.
	_, err = CreateUser(store, "ana  silva", "pw2", models.RoleUser)
	require.Error(t, err)

	require.Equal(t, "pw", store.Users()["anasilva"].Password)
}

func TestCreateUser_RejectsEmptyNameOrPassword(t *testing.T) {
	store := newTestStore()

	_, err := CreateUser(store, "   ", "pw", models.RoleUser)
	require.Error(t, err)

	_, err = CreateUser(store, "Ana", "", models.RoleUser)
	require.Error(t, err)
}

func TestCreateUser_UnknownRoleDefaultsToUser(t *testing.T) {
	store := newTestStore()

	user, err := CreateUser(store, "Ana", "pw", "superuser")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
}
