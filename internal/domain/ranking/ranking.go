package ranking

import (
	"sort"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Result is the outcome of ranking the pending proposals of one auction.
type Result struct {
	BookingProposals    []entities.Proposal `json:"booking_proposals"`
	CashProposals       []entities.Proposal `json:"cash_proposals"`
	RankedCashProposals []entities.Proposal `json:"ranked_cash_proposals"`
	HighestCashOffer    *decimal.Decimal    `json:"highest_cash_offer,omitempty"`
	RecommendedProposal *entities.Proposal  `json:"recommended_proposal,omitempty"`
}

// Rank applies the recommendation policy to the pending proposals:
//  1. cash proposals are ranked by amount, highest first
//  2. equal amounts keep submission order (earliest first)
//  3. the top cash proposal is recommended; without cash, the earliest booking proposal
//
// The input slice is not modified.
func Rank(proposals []entities.Proposal) Result {
	pending := make([]entities.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if p.IsPending() {
			pending = append(pending, p)
		}
	}

	// Establish submission order first so the amount sort below can stay stable.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].SubmittedAt.Before(pending[j].SubmittedAt)
	})

	res := Result{
		BookingProposals:    make([]entities.Proposal, 0),
		CashProposals:       make([]entities.Proposal, 0),
		RankedCashProposals: make([]entities.Proposal, 0),
	}
	for _, p := range pending {
		switch p.ProposalType {
		case entities.ProposalTypeBooking:
			res.BookingProposals = append(res.BookingProposals, p)
		case entities.ProposalTypeCash:
			res.CashProposals = append(res.CashProposals, p)
		}
	}

	res.RankedCashProposals = append(res.RankedCashProposals, res.CashProposals...)
	sort.SliceStable(res.RankedCashProposals, func(i, j int) bool {
		return res.RankedCashProposals[i].CashAmount().GreaterThan(res.RankedCashProposals[j].CashAmount())
	})

	if len(res.RankedCashProposals) > 0 {
		top := res.RankedCashProposals[0]
		highest := top.CashAmount()
		res.HighestCashOffer = &highest
		res.RecommendedProposal = &top
	} else if len(res.BookingProposals) > 0 {
		first := res.BookingProposals[0]
		res.RecommendedProposal = &first
	}

	return res
}
