package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProposalType string

const (
	ProposalTypeBooking ProposalType = "booking"
	ProposalTypeCash    ProposalType = "cash"
)

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// CashOffer is the payload of a cash proposal. Payment capture happens elsewhere.
type CashOffer struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PaymentMethodID string          `json:"payment_method_id"`
	EscrowRequired  bool            `json:"escrow_required"`
}

// Proposal is a bid submitted against an auction by a third party.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (auction_id-index): auction_id
type Proposal struct {
	ID           string         `json:"id"`
	AuctionID    string         `json:"auction_id"`
	ProposerID   string         `json:"proposer_id"`
	ProposalType ProposalType   `json:"proposal_type"`
	BookingID    string         `json:"booking_id,omitempty"`
	Cash         *CashOffer     `json:"cash,omitempty"`
	Message      string         `json:"message,omitempty"`
	Status       ProposalStatus `json:"status"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (p Proposal) IsPending() bool {
	return p.Status == ProposalStatusPending
}

// CashAmount returns the offered amount, or zero for non-cash proposals.
func (p Proposal) CashAmount() decimal.Decimal {
	if p.Cash == nil {
		return decimal.Zero
	}
	return p.Cash.Amount
}

// ProposalFilter narrows proposal listings. Zero values mean "any".
type ProposalFilter struct {
	AuctionID  string
	ProposerID string
	Status     ProposalStatus
}
