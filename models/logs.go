package models

// TokenLog records one use of a bot token. The token is stored masked, never
// in full.
type TokenLog struct {
	Token     string `json:"token"`
	Timestamp string `json:"timestamp"` // ISO-8601
	User      string `json:"user"`
	ChannelID string `json:"channelId"`
}

// MessageLog records one send action with a snapshot of the composed embed.
type MessageLog struct {
	Embed     DiscordEmbed `json:"embed"`
	Timestamp string       `json:"timestamp"`
	User      string       `json:"user"`
	ChannelID string       `json:"channelId"`
	Status    string       `json:"status"`
}

// PurchaseLog is an append-only record of a simulated purchase. Approved
// entries are the only proof of payment the access gate accepts.
type PurchaseLog struct {
	ID        string  `json:"id"`
	BuyerName string  `json:"buyerName"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
	Status    string  `json:"status"` // "approved" or "pending"
	PaymentID string  `json:"paymentId"`
}

// Purchase statuses.
const (
	PurchaseApproved = "approved"
	PurchasePending  = "pending"
)

// When returns the entry's timestamp; log types implement this so the store
// can order mixed per-user partitions newest first.
func (l TokenLog) When() string    { return l.Timestamp }
func (l MessageLog) When() string  { return l.Timestamp }
func (l PurchaseLog) When() string { return l.Timestamp }
