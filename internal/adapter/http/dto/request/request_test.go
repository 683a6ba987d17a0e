package request

import (
	"errors"
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
)

func TestCreateAuctionRequest_ToCommand(t *testing.T) {
	hours := 24
	r := CreateAuctionRequest{
		SwapID: " swap-1 ",
		ItemID: "item-1",
		Settings: AuctionSettingsRequest{
			EndDate:              " 2026-03-10T00:00:00Z ",
			AllowCashProposals:   true,
			AutoSelectAfterHours: &hours,
		},
	}

	cmd := r.ToCommand(" owner ")
	if cmd.SwapID != "swap-1" || cmd.OwnerID != "owner" {
		t.Fatalf("expected trimmed ids, got %+v", cmd)
	}
	if cmd.Settings.EndDate != "2026-03-10T00:00:00Z" {
		t.Fatalf("expected trimmed end date, got %q", cmd.Settings.EndDate)
	}
	if cmd.Settings.AutoSelectAfterHours == nil || *cmd.Settings.AutoSelectAfterHours != 24 {
		t.Fatalf("expected auto select hours 24, got %v", cmd.Settings.AutoSelectAfterHours)
	}
}

func TestProposalRequest_ToInput(t *testing.T) {
	amount := 150.5
	r := ProposalRequest{
		ProposalType: " CASH ",
		CashOffer:    &CashOfferRequest{Amount: &amount, Currency: "usd", PaymentMethodID: " visa "},
	}

	in := r.ToInput("a1", "u1")
	if in.ProposalType != entities.ProposalTypeCash {
		t.Fatalf("expected cash, got %q", in.ProposalType)
	}
	if in.CashAmount == nil || *in.CashAmount != 150.5 {
		t.Fatalf("expected amount 150.5, got %v", in.CashAmount)
	}
	if in.PaymentMethodID != "visa" {
		t.Fatalf("expected visa, got %q", in.PaymentMethodID)
	}

	booking := ProposalRequest{ProposalType: "booking", BookingID: "b1"}.ToInput("a1", "u1")
	if booking.CashAmount != nil || booking.BookingID != "b1" {
		t.Fatalf("unexpected booking input %+v", booking)
	}
}

func TestParseEventDate(t *testing.T) {
	got, err := ParseEventDate("2026-04-01T10:00:00+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)) || got.Location() != time.UTC {
		t.Fatalf("expected UTC instant, got %v", got)
	}

	for _, raw := range []string{"", "  ", "next week", "2026-04-01"} {
		if _, err := ParseEventDate(raw); !errors.Is(err, ErrInvalidEventDate) {
			t.Fatalf("expected ErrInvalidEventDate for %q, got %v", raw, err)
		}
	}
}

func TestAlertFilter(t *testing.T) {
	f, err := AlertFilter("tx-1", "failed", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.TransactionID != "tx-1" || f.State != entities.AlertFailed || f.Limit != 5 {
		t.Fatalf("unexpected filter %+v", f)
	}

	if _, err := AlertFilter("", "lost", ""); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if _, err := AlertFilter("", "", "-2"); !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}
