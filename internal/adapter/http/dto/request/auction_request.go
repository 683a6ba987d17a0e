package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/validation"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"
)

var (
	ErrInvalidEventDate = errors.New("event_date must be an RFC 3339 timestamp")
	ErrInvalidLimit     = errors.New("limit must be a non-negative integer")
	ErrInvalidState     = errors.New("unknown alert delivery state")
)

type AuctionSettingsRequest struct {
	EndDate               string   `json:"end_date" binding:"required"`
	AllowBookingProposals bool     `json:"allow_booking_proposals"`
	AllowCashProposals    bool     `json:"allow_cash_proposals"`
	MinimumCashOffer      *float64 `json:"minimum_cash_offer"`
	AutoSelectAfterHours  *int     `json:"auto_select_after_hours"`
}

type CreateAuctionRequest struct {
	SwapID   string                 `json:"swap_id" binding:"required"`
	ItemID   string                 `json:"item_id" binding:"required"`
	Settings AuctionSettingsRequest `json:"settings" binding:"required"`
}

// ToCommand builds the usecase command; the caller becomes the auction owner.
func (r CreateAuctionRequest) ToCommand(callerID string) usecase.CreateAuctionCommand {
	return usecase.CreateAuctionCommand{
		SwapID:  strings.TrimSpace(r.SwapID),
		ItemID:  strings.TrimSpace(r.ItemID),
		OwnerID: strings.TrimSpace(callerID),
		Settings: validation.SettingsInput{
			EndDate:               strings.TrimSpace(r.Settings.EndDate),
			AllowBookingProposals: r.Settings.AllowBookingProposals,
			AllowCashProposals:    r.Settings.AllowCashProposals,
			MinimumCashOffer:      r.Settings.MinimumCashOffer,
			AutoSelectAfterHours:  r.Settings.AutoSelectAfterHours,
		},
	}
}

type SelectWinnerRequest struct {
	ProposalID string `json:"proposal_id" binding:"required"`
}

type ConvertToFirstMatchRequest struct {
	Reason string `json:"reason"`
}

// ParseEventDate reads the event_date query parameter of the timing endpoint.
func ParseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidEventDate
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidEventDate
	}
	return t.UTC(), nil
}

// AlertFilter converts the query string of GET /alerts.
func AlertFilter(transactionID, state, limit string) (usecase.AlertFilter, error) {
	f := usecase.AlertFilter{TransactionID: strings.TrimSpace(transactionID)}

	switch s := entities.AlertDeliveryState(strings.TrimSpace(state)); s {
	case "":
	case entities.AlertDelivered, entities.AlertPartiallyDelivered, entities.AlertFailed, entities.AlertUndelivered:
		f.State = s
	default:
		return usecase.AlertFilter{}, ErrInvalidState
	}

	if limit = strings.TrimSpace(limit); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return usecase.AlertFilter{}, ErrInvalidLimit
		}
		f.Limit = n
	}
	return f, nil
}
