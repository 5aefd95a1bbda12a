package payment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"embedpanel/utils"
)

// Approver decides whether a status check comes back approved. Production
// uses the random draw; tests inject a fixed outcome.
type Approver interface {
	Approve() bool
}

// RandomApprover approves with a fixed probability.
type RandomApprover struct {
	Rate float64
	rng  *rand.Rand
}

// NewRandomApprover seeds an approver with the given approval rate.
func NewRandomApprover(rate float64) *RandomApprover {
	return &RandomApprover{
		Rate: rate,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (a *RandomApprover) Approve() bool {
	return a.rng.Float64() < a.Rate
}

// PreferenceItem mirrors the payment provider's line-item shape.
type PreferenceItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

// Preference is the provider's answer to a checkout-preference request.
type Preference struct {
	ID               string `json:"id"`
	Reference        string `json:"external_reference"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// Client simulates the payment-provider boundary. Nothing leaves the
// process: preference creation and status checks are logged, not sent.
type Client struct {
	Price       float64
	CheckoutURL string
	SandboxURL  string
	approver    Approver
}

// NewClient builds a client with the configured price and approver.
func NewClient(price float64, checkoutURL, sandboxURL string, approver Approver) *Client {
	return &Client{
		Price:       price,
		CheckoutURL: checkoutURL,
		SandboxURL:  sandboxURL,
		approver:    approver,
	}
}

// CreatePreference simulates creating a checkout preference for the buyer.
// In a real integration this would POST to the provider; here the request
// is logged and a locally minted preference comes back.
func (c *Client) CreatePreference(buyerName string) Preference {
	item := PreferenceItem{
		Title:       "Acesso Discord Embed Manager",
		Description: "Acesso completo ao sistema de gerenciamento de embeds",
		Quantity:    1,
		CurrencyID:  "BRL",
		UnitPrice:   c.Price,
	}
	utils.Log.Info("Creating payment preference: buyer=%s item=%q price=%.2f", buyerName, item.Title, item.UnitPrice)

	id := fmt.Sprintf("MP-%d", time.Now().UnixMilli())
	return Preference{
		ID:               id,
		Reference:        uuid.New().String(),
		InitPoint:        fmt.Sprintf("%s?pref_id=%s", c.CheckoutURL, id),
		SandboxInitPoint: fmt.Sprintf("%s?pref_id=%s", c.SandboxURL, id),
	}
}

// CheckStatus simulates polling the provider for a payment's status.
func (c *Client) CheckStatus(paymentID string) bool {
	utils.Log.Info("Checking payment status: %s", paymentID)
	return c.approver.Approve()
}
