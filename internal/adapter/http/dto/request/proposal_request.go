package request

import (
	"strings"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/validation"
)

type CashOfferRequest struct {
	Amount          *float64 `json:"amount"`
	Currency        string   `json:"currency"`
	PaymentMethodID string   `json:"payment_method_id"`
	EscrowRequired  bool     `json:"escrow_required"`
}

type ProposalRequest struct {
	ProposalType string            `json:"proposal_type" binding:"required"`
	BookingID    string            `json:"booking_id"`
	CashOffer    *CashOfferRequest `json:"cash_offer"`
	Message      string            `json:"message"`
}

// ToInput maps the payload onto the validator input. Field-level rules
// (amount, payment method, booking ownership) are left to the validator so
// every violation is reported together.
func (r ProposalRequest) ToInput(auctionID, proposerID string) validation.ProposalInput {
	in := validation.ProposalInput{
		AuctionID:    strings.TrimSpace(auctionID),
		ProposerID:   strings.TrimSpace(proposerID),
		ProposalType: entities.ProposalType(strings.ToLower(strings.TrimSpace(r.ProposalType))),
		BookingID:    strings.TrimSpace(r.BookingID),
		Message:      strings.TrimSpace(r.Message),
	}
	if r.CashOffer != nil {
		in.CashAmount = r.CashOffer.Amount
		in.Currency = strings.TrimSpace(r.CashOffer.Currency)
		in.PaymentMethodID = strings.TrimSpace(r.CashOffer.PaymentMethodID)
		in.EscrowRequired = r.CashOffer.EscrowRequired
	}
	return in
}
