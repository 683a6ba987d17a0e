package response

import (
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/ranking"
	"github.com/bushboy/bookingswap-sub016/internal/domain/timing"
)

type AuctionSettingsResponse struct {
	EndDate               time.Time `json:"end_date"`
	AllowBookingProposals bool      `json:"allow_booking_proposals"`
	AllowCashProposals    bool      `json:"allow_cash_proposals"`
	MinimumCashOffer      string    `json:"minimum_cash_offer,omitempty"`
	AutoSelectAfterHours  *int      `json:"auto_select_after_hours,omitempty"`
}

type AuctionResponse struct {
	ID                 string                  `json:"id"`
	SwapID             string                  `json:"swap_id"`
	ItemID             string                  `json:"item_id"`
	OwnerID            string                  `json:"owner_id"`
	EventDate          time.Time               `json:"event_date"`
	Status             string                  `json:"status"`
	Settings           AuctionSettingsResponse `json:"settings"`
	WinningProposalID  string                  `json:"winning_proposal_id,omitempty"`
	AutoSelectDeadline *time.Time              `json:"auto_select_deadline,omitempty"`
	EndedAt            *time.Time              `json:"ended_at,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
	Proposals          []ProposalResponse      `json:"proposals"`
}

func FromAuction(a entities.Auction) AuctionResponse {
	resp := AuctionResponse{
		ID:        a.ID,
		SwapID:    a.SwapID,
		ItemID:    a.ItemID,
		OwnerID:   a.OwnerID,
		EventDate: a.EventDate,
		Status:    string(a.Status),
		Settings: AuctionSettingsResponse{
			EndDate:               a.Settings.EndDate,
			AllowBookingProposals: a.Settings.AllowBookingProposals,
			AllowCashProposals:    a.Settings.AllowCashProposals,
			AutoSelectAfterHours:  a.Settings.AutoSelectAfterHours,
		},
		WinningProposalID: a.WinningProposalID,
		EndedAt:           a.EndedAt,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
		Proposals:         FromProposals(a.Proposals),
	}
	if a.Settings.MinimumCashOffer != nil {
		resp.Settings.MinimumCashOffer = a.Settings.MinimumCashOffer.StringFixed(2)
	}
	if deadline, ok := a.AutoSelectDeadline(); ok {
		resp.AutoSelectDeadline = &deadline
	}
	return resp
}

type RankingResponse struct {
	BookingProposals    []ProposalResponse `json:"booking_proposals"`
	CashProposals       []ProposalResponse `json:"cash_proposals"`
	RankedCashProposals []ProposalResponse `json:"ranked_cash_proposals"`
	HighestCashOffer    string             `json:"highest_cash_offer,omitempty"`
	RecommendedProposal *ProposalResponse  `json:"recommended_proposal,omitempty"`
}

func FromRanking(r ranking.Result) RankingResponse {
	resp := RankingResponse{
		BookingProposals:    FromProposals(r.BookingProposals),
		CashProposals:       FromProposals(r.CashProposals),
		RankedCashProposals: FromProposals(r.RankedCashProposals),
	}
	if r.HighestCashOffer != nil {
		resp.HighestCashOffer = r.HighestCashOffer.StringFixed(2)
	}
	if r.RecommendedProposal != nil {
		p := FromProposal(*r.RecommendedProposal)
		resp.RecommendedProposal = &p
	}
	return resp
}

type TimingResponse struct {
	EventDate         time.Time  `json:"event_date"`
	MinimumEndDate    time.Time  `json:"minimum_end_date"`
	SuggestedEndDate  *time.Time `json:"suggested_end_date,omitempty"`
	IsLastMinute      bool       `json:"is_last_minute"`
	Urgency           string     `json:"urgency"`
	HoursUntilEvent   float64    `json:"hours_until_event"`
	AuctionsAvailable bool       `json:"auctions_available"`
}

func FromAdvice(a timing.Advice) TimingResponse {
	return TimingResponse{
		EventDate:         a.EventDate,
		MinimumEndDate:    a.MinimumEndDate,
		SuggestedEndDate:  a.SuggestedEndDate,
		IsLastMinute:      a.IsLastMinute,
		Urgency:           string(a.Urgency),
		HoursUntilEvent:   a.TimeUntilEvent.Hours(),
		AuctionsAvailable: !a.IsLastMinute,
	}
}
