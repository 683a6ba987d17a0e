package entities

import "time"

type NotificationType string

const (
	NotificationAuctionCreated    NotificationType = "auction_created"
	NotificationAuctionEnded      NotificationType = "auction_ended"
	NotificationAuctionCancelled  NotificationType = "auction_cancelled"
	NotificationProposalReceived  NotificationType = "proposal_received"
	NotificationProposalWon       NotificationType = "proposal_won"
	NotificationProposalLost      NotificationType = "proposal_lost"
	NotificationSelectionReminder NotificationType = "selection_reminder"
)

// Notification is a fire-and-forget message for a single recipient.
type Notification struct {
	ID          string            `json:"id"`
	Type        NotificationType  `json:"type"`
	RecipientID string            `json:"recipient_id"`
	AuctionID   string            `json:"auction_id"`
	ProposalID  string            `json:"proposal_id,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
