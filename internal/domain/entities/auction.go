package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus represents the lifecycle of an auction.
//
// Transitions:
//   - active -> ended (end date reached, owner ended it, or deadline conversion)
//   - active -> cancelled (owner)
//
// ended and cancelled are terminal; an ended auction may still acquire a winner once.
type AuctionStatus string

const (
	AuctionStatusActive    AuctionStatus = "active"
	AuctionStatusEnded     AuctionStatus = "ended"
	AuctionStatusCancelled AuctionStatus = "cancelled"
)

// AuctionSettings is the validated, immutable configuration of an auction.
type AuctionSettings struct {
	EndDate               time.Time        `json:"end_date"`
	AllowBookingProposals bool             `json:"allow_booking_proposals"`
	AllowCashProposals    bool             `json:"allow_cash_proposals"`
	MinimumCashOffer      *decimal.Decimal `json:"minimum_cash_offer,omitempty"`
	AutoSelectAfterHours  *int             `json:"auto_select_after_hours,omitempty"`
}

// Allows reports whether proposals of type t may be submitted.
func (s AuctionSettings) Allows(t ProposalType) bool {
	switch t {
	case ProposalTypeBooking:
		return s.AllowBookingProposals
	case ProposalTypeCash:
		return s.AllowCashProposals
	}
	return false
}

// Auction offers a single swap item for competing proposals until EndDate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (swap_id-index): swap_id
//
// EventDate is a snapshot of the offered booking's event date taken at creation;
// the booking itself is owned elsewhere and looked up through ItemID.
type Auction struct {
	ID                string          `json:"id"`
	SwapID            string          `json:"swap_id"`
	ItemID            string          `json:"item_id"`
	OwnerID           string          `json:"owner_id"`
	EventDate         time.Time       `json:"event_date"`
	Status            AuctionStatus   `json:"status"`
	Settings          AuctionSettings `json:"settings"`
	WinningProposalID string          `json:"winning_proposal_id,omitempty"`
	EndedAt           *time.Time      `json:"ended_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Proposals is populated on reads; it is not part of the stored auction record.
	Proposals []Proposal `json:"proposals,omitempty"`
}

func (a Auction) HasWinner() bool {
	return a.WinningProposalID != ""
}

// AutoSelectDeadline returns when automatic selection becomes due, if configured.
func (a Auction) AutoSelectDeadline() (time.Time, bool) {
	if a.Settings.AutoSelectAfterHours == nil || a.EndedAt == nil {
		return time.Time{}, false
	}
	return a.EndedAt.Add(time.Duration(*a.Settings.AutoSelectAfterHours) * time.Hour), true
}

// PendingProposals returns the proposals still in pending status, preserving order.
func (a Auction) PendingProposals() []Proposal {
	out := make([]Proposal, 0, len(a.Proposals))
	for _, p := range a.Proposals {
		if p.Status == ProposalStatusPending {
			out = append(out, p)
		}
	}
	return out
}

// AuctionFilter narrows auction listings. Zero values mean "any".
type AuctionFilter struct {
	Status    AuctionStatus
	HasWinner *bool
}
