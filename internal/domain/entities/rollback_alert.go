package entities

import "time"

type AlertDeliveryState string

const (
	AlertDelivered          AlertDeliveryState = "delivered"
	AlertPartiallyDelivered AlertDeliveryState = "partially_delivered"
	AlertFailed             AlertDeliveryState = "failed"
	AlertUndelivered        AlertDeliveryState = "undelivered"
)

// ChannelDelivery is the outcome of sending one alert through one channel.
type ChannelDelivery struct {
	Channel     string    `json:"channel"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// RollbackAlert is the critical report raised when a multi-step transition
// failed and could not be undone cleanly.
type RollbackAlert struct {
	ID             string             `json:"id"`
	TransactionID  string             `json:"transaction_id"`
	Operation      string             `json:"operation"`
	AuctionID      string             `json:"auction_id,omitempty"`
	Severity       string             `json:"severity"`
	FailedStep     string             `json:"failed_step"`
	CompletedSteps int                `json:"completed_steps"`
	TotalSteps     int                `json:"total_steps"`
	Error          string             `json:"error"`
	RollbackErrors []string           `json:"rollback_errors"`
	Deliveries     []ChannelDelivery  `json:"deliveries"`
	DeliveryState  AlertDeliveryState `json:"delivery_state"`
	CreatedAt      time.Time          `json:"created_at"`
}
