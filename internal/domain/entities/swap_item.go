package entities

import "time"

const (
	ItemStatusAvailable = "available"

	VerificationStatusVerified = "verified"
)

// SwapItem is the read-only view of a booking owned by the booking service.
// Auctions use it for the event date; booking proposals use it for ownership
// and availability checks.
type SwapItem struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"owner_id"`
	EventDate          time.Time `json:"event_date"`
	Status             string    `json:"status"`
	VerificationStatus string    `json:"verification_status"`
}

func (i SwapItem) IsAvailable() bool {
	return i.Status == ItemStatusAvailable
}

func (i SwapItem) IsVerified() bool {
	return i.VerificationStatus == VerificationStatusVerified
}
