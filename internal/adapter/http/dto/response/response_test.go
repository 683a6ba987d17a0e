package response

import (
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/ranking"
	"github.com/bushboy/bookingswap-sub016/internal/domain/timing"
	"github.com/bushboy/bookingswap-sub016/internal/domain/validation"

	"github.com/shopspring/decimal"
)

func TestFromAuction(t *testing.T) {
	ended := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	hours := 24
	minimum := decimal.NewFromInt(100)
	a := entities.Auction{
		ID:      "a1",
		SwapID:  "s1",
		OwnerID: "owner",
		Status:  entities.AuctionStatusEnded,
		Settings: entities.AuctionSettings{
			AllowCashProposals:   true,
			MinimumCashOffer:     &minimum,
			AutoSelectAfterHours: &hours,
		},
		EndedAt: &ended,
		Proposals: []entities.Proposal{{
			ID:           "p1",
			ProposalType: entities.ProposalTypeCash,
			Cash:         &entities.CashOffer{Amount: decimal.RequireFromString("99.5"), Currency: "USD"},
			Status:       entities.ProposalStatusPending,
		}},
	}

	got := FromAuction(a)
	if got.Status != "ended" {
		t.Fatalf("expected ended, got %q", got.Status)
	}
	if got.Settings.MinimumCashOffer != "100.00" {
		t.Fatalf("expected 100.00, got %q", got.Settings.MinimumCashOffer)
	}
	if got.AutoSelectDeadline == nil || !got.AutoSelectDeadline.Equal(ended.Add(24*time.Hour)) {
		t.Fatalf("expected auto select deadline 24h after end, got %v", got.AutoSelectDeadline)
	}
	if len(got.Proposals) != 1 || got.Proposals[0].CashOffer.Amount != "99.50" {
		t.Fatalf("unexpected proposals %+v", got.Proposals)
	}
}

func TestFromAuction_NoProposals(t *testing.T) {
	got := FromAuction(entities.Auction{ID: "a1"})
	if got.Proposals == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if got.AutoSelectDeadline != nil {
		t.Fatalf("expected no deadline, got %v", got.AutoSelectDeadline)
	}
}

func TestFromRanking(t *testing.T) {
	top := entities.Proposal{ID: "p2", ProposalType: entities.ProposalTypeCash,
		Cash: &entities.CashOffer{Amount: decimal.NewFromInt(200)}, Status: entities.ProposalStatusPending}
	highest := decimal.NewFromInt(200)

	got := FromRanking(ranking.Result{
		CashProposals:       []entities.Proposal{top},
		RankedCashProposals: []entities.Proposal{top},
		HighestCashOffer:    &highest,
		RecommendedProposal: &top,
	})
	if got.HighestCashOffer != "200.00" {
		t.Fatalf("expected 200.00, got %q", got.HighestCashOffer)
	}
	if got.RecommendedProposal == nil || got.RecommendedProposal.ID != "p2" {
		t.Fatalf("expected p2 recommended, got %+v", got.RecommendedProposal)
	}
	if got.BookingProposals == nil {
		t.Fatalf("expected empty booking slice")
	}
}

func TestFromAdvice(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got := FromAdvice(timing.Advise(now.Add(72*time.Hour), now))
	if !got.IsLastMinute || got.AuctionsAvailable {
		t.Fatalf("expected last minute without auctions, got %+v", got)
	}
	if got.HoursUntilEvent != 72 {
		t.Fatalf("expected 72 hours, got %v", got.HoursUntilEvent)
	}
}

func TestFromValidation_EmptySlices(t *testing.T) {
	got := FromValidation(validation.Result{IsValid: true})
	if got.Errors == nil || got.Warnings == nil {
		t.Fatalf("expected non-nil slices, got %+v", got)
	}
}

func TestFromAlerts(t *testing.T) {
	got := FromAlerts([]entities.RollbackAlert{{ID: "al-1", DeliveryState: entities.AlertFailed}})
	if got.Count != 1 || got.Alerts[0].DeliveryState != "failed" {
		t.Fatalf("unexpected alerts %+v", got)
	}
}
