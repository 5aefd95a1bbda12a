package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"embedpanel/models"
	"embedpanel/storage"
)

func pinnedPassword(length int) string {
	return strings.Repeat("x", length)
}

func TestProvision_CreatesUserAndApprovedLog(t *testing.T) {
	store := storage.New(storage.NewMemoryKV())

	creds, err := Provision(store, "Carlos Souza", "Carlinhos", "MP-123", 29.90, pinnedPassword)
	require.NoError(t, err)
	require.Equal(t, "carlinhos", creds.Username)
	require.Equal(t, "xxxxxxxx", creds.Password)

	user, ok := store.Users()["carlinhos"]
	require.True(t, ok)
	require.Equal(t, models.RoleUser, user.Role)
	require.Equal(t, "xxxxxxxx", user.Password)

	purchases := storage.Read[models.PurchaseLog](store, storage.ColPurchaseLogs, "")
	require.Len(t, purchases, 1)
	require.Equal(t, "Carlos Souza", purchases[0].BuyerName)
	require.Equal(t, models.PurchaseApproved, purchases[0].Status)
	require.Equal(t, "MP-123", purchases[0].PaymentID)
	require.Equal(t, 29.90, purchases[0].Amount)
}

func TestProvision_DuplicateUsernameFails(t *testing.T) {
	store := storage.New(storage.NewMemoryKV())

	_, err := Provision(store, "Carlos Souza", "Carlinhos", "MP-1", 29.90, pinnedPassword)
	require.NoError(t, err)

	_, err = Provision(store, "Outro Carlos", "carlinhos", "MP-2", 29.90, pinnedPassword)
	require.Error(t, err)

	// The failed provision leaves no purchase record behind.
	purchases := storage.Read[models.PurchaseLog](store, storage.ColPurchaseLogs, "")
	require.Len(t, purchases, 1)
}

func TestProvision_DefaultGeneratorYieldsEightChars(t *testing.T) {
	store := storage.New(storage.NewMemoryKV())

	creds, err := Provision(store, "Ana", "ana77", "MP-9", 29.90, nil)
	require.NoError(t, err)
	require.Len(t, creds.Password, 8)
}

func TestRandomPassword_AlphabetAndLength(t *testing.T) {
	pw := RandomPassword(10)
	require.Len(t, pw, 10)
	for _, c := range pw {
		require.Contains(t, passwordAlphabet, string(c))
	}
}
