package payment

import (
	"math/rand"
	"time"

	"embedpanel/auth"
	"embedpanel/models"
	"embedpanel/storage"
	"embedpanel/utils"
)

const passwordAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// PasswordGenerator produces throwaway account passwords. Injectable so
// tests can pin the output.
type PasswordGenerator func(length int) string

// RandomPassword returns length base36 characters.
func RandomPassword(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = passwordAlphabet[rng.Intn(len(passwordAlphabet))]
	}
	return string(b)
}

// Credentials are handed to the buyer exactly once after approval.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Provision turns an approved payment into an account: a user with role
// "user" and a generated 8-character password, plus an approved purchase
// log. This is the only path by which paying customers enter the system.
func Provision(store *storage.Store, buyerName, desiredUsername, paymentID string, price float64, gen PasswordGenerator) (Credentials, error) {
	if gen == nil {
		gen = RandomPassword
	}
	password := gen(8)

	user, err := auth.CreateUser(store, desiredUsername, password, models.RoleUser)
	if err != nil {
		return Credentials{}, err
	}

	log := models.PurchaseLog{
		ID:        paymentID,
		BuyerName: buyerName,
		Amount:    price,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    models.PurchaseApproved,
		PaymentID: paymentID,
	}
	if err := storage.Append(store, storage.ColPurchaseLogs, "", log); err != nil {
		return Credentials{}, err
	}

	utils.Log.Info("Payment %s approved, user %q provisioned", paymentID, user.Username)
	return Credentials{Username: user.Username, Password: password}, nil
}
