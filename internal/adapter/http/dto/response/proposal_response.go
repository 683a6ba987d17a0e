package response

import (
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/validation"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"
)

type CashOfferResponse struct {
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	PaymentMethodID string `json:"payment_method_id"`
	EscrowRequired  bool   `json:"escrow_required"`
}

type ProposalResponse struct {
	ID           string             `json:"id"`
	AuctionID    string             `json:"auction_id"`
	ProposerID   string             `json:"proposer_id"`
	ProposalType string             `json:"proposal_type"`
	BookingID    string             `json:"booking_id,omitempty"`
	CashOffer    *CashOfferResponse `json:"cash_offer,omitempty"`
	Message      string             `json:"message,omitempty"`
	Status       string             `json:"status"`
	SubmittedAt  time.Time          `json:"submitted_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	resp := ProposalResponse{
		ID:           p.ID,
		AuctionID:    p.AuctionID,
		ProposerID:   p.ProposerID,
		ProposalType: string(p.ProposalType),
		BookingID:    p.BookingID,
		Message:      p.Message,
		Status:       string(p.Status),
		SubmittedAt:  p.SubmittedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Cash != nil {
		resp.CashOffer = &CashOfferResponse{
			Amount:          p.Cash.Amount.StringFixed(2),
			Currency:        p.Cash.Currency,
			PaymentMethodID: p.Cash.PaymentMethodID,
			EscrowRequired:  p.Cash.EscrowRequired,
		}
	}
	return resp
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

type ProposalSubmissionResponse struct {
	Proposal ProposalResponse    `json:"proposal"`
	Warnings []*validation.Error `json:"warnings"`
}

func FromSubmission(s usecase.ProposalSubmission) ProposalSubmissionResponse {
	warnings := s.Warnings
	if warnings == nil {
		warnings = []*validation.Error{}
	}
	return ProposalSubmissionResponse{Proposal: FromProposal(s.Proposal), Warnings: warnings}
}

type ValidationResponse struct {
	IsValid  bool                `json:"is_valid"`
	Errors   []*validation.Error `json:"errors"`
	Warnings []*validation.Error `json:"warnings"`
}

func FromValidation(r validation.Result) ValidationResponse {
	resp := ValidationResponse{IsValid: r.IsValid, Errors: r.Errors, Warnings: r.Warnings}
	if resp.Errors == nil {
		resp.Errors = []*validation.Error{}
	}
	if resp.Warnings == nil {
		resp.Warnings = []*validation.Error{}
	}
	return resp
}
