package api

import (
	"github.com/gofiber/fiber/v2"

	"embedpanel/models"
	"embedpanel/payment"
	"embedpanel/storage"
	"embedpanel/utils"
)

// PaymentHandler drives the simulated purchase flow on the public home
// page. No session is required: buyers do not have accounts yet.
type PaymentHandler struct {
	store  *storage.Store
	client *payment.Client
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(store *storage.Store, client *payment.Client) *PaymentHandler {
	return &PaymentHandler{
		store:  store,
		client: client,
	}
}

// PreferenceRequest is the purchase form: who is paying and which username
// they want.
type PreferenceRequest struct {
	BuyerName       string `json:"buyerName" form:"buyerName"`
	DesiredUsername string `json:"desiredUsername" form:"desiredUsername"`
}

// CreatePreference validates the form, rejects already-taken usernames up
// front, and returns the simulated checkout link.
func (h *PaymentHandler) CreatePreference(c *fiber.Ctx) error {
	var req PreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	if req.BuyerName == "" || req.DesiredUsername == "" {
		return utils.ValidationError("Fill in every field before continuing", nil)
	}

	username := models.NormalizeUsername(req.DesiredUsername)
	if _, exists := h.store.Users()[username]; exists {
		return utils.ValidationError("Username already exists, choose another", nil)
	}

	pref := h.client.CreatePreference(req.BuyerName)

	return c.JSON(fiber.Map{
		"success":    true,
		"paymentId":  pref.ID,
		"initPoint":  pref.SandboxInitPoint,
	})
}

// StatusRequest identifies the payment being polled, carrying the original
// form along since nothing is stored server-side before approval.
type StatusRequest struct {
	PaymentID       string `json:"paymentId" form:"paymentId"`
	BuyerName       string `json:"buyerName" form:"buyerName"`
	DesiredUsername string `json:"desiredUsername" form:"desiredUsername"`
}

// CheckStatus polls the simulated provider. On approval it provisions the
// account and returns the one-time credentials; otherwise the payment stays
// pending and nothing changes.
func (h *PaymentHandler) CheckStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}
	if req.PaymentID == "" {
		return utils.BadRequestError("Payment ID required", nil)
	}

	if !h.client.CheckStatus(req.PaymentID) {
		return c.JSON(fiber.Map{
			"success": true,
			"status":  models.PurchasePending,
		})
	}

	creds, err := payment.Provision(h.store, req.BuyerName, req.DesiredUsername, req.PaymentID, h.client.Price, nil)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"status":      models.PurchaseApproved,
		"credentials": creds,
	})
}
