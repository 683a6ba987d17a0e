package validation

import (
	"strings"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/timing"

	"github.com/shopspring/decimal"
)

// SettingsInput is the raw auction configuration as supplied by a caller.
type SettingsInput struct {
	EndDate               string
	AllowBookingProposals bool
	AllowCashProposals    bool
	MinimumCashOffer      *float64
	AutoSelectAfterHours  *int
}

// ValidateSettings checks auction settings against the event date, stopping at
// the first violation. On success the end date is returned parsed and in UTC.
func ValidateSettings(in SettingsInput, eventDate, now time.Time) (entities.AuctionSettings, error) {
	endDate, err := parseInstant(in.EndDate)
	if err != nil {
		return entities.AuctionSettings{}, newError(CodeInvalidEndDate, "end_date", in.EndDate,
			"end date must be an RFC 3339 timestamp")
	}
	if !endDate.After(now) {
		return entities.AuctionSettings{}, newError(CodeEndDateInPast, "end_date", in.EndDate,
			"end date must be in the future")
	}

	if timing.IsLastMinute(eventDate, now) {
		return entities.AuctionSettings{}, newError(CodeEventLastMinute, "event_date", eventDate.UTC().Format(time.RFC3339),
			"event on %s is less than one week away; auctions are not available for last-minute bookings",
			eventDate.UTC().Format(time.RFC3339))
	}

	maxEnd := timing.MinimumEndDate(eventDate)
	if endDate.After(maxEnd) {
		return entities.AuctionSettings{}, newError(CodeEndDateTooCloseToEvent, "end_date", in.EndDate,
			"auction must end at least one week before the event; latest allowed end date is %s",
			maxEnd.UTC().Format(time.RFC3339))
	}

	if in.AutoSelectAfterHours != nil && *in.AutoSelectAfterHours < 1 {
		return entities.AuctionSettings{}, newError(CodeInvalidAutoSelectHours, "auto_select_after_hours", *in.AutoSelectAfterHours,
			"auto select timeout must be at least 1 hour")
	}

	var minimum *decimal.Decimal
	if in.MinimumCashOffer != nil {
		if *in.MinimumCashOffer <= 0 {
			return entities.AuctionSettings{}, newError(CodeInvalidMinimumCashOffer, "minimum_cash_offer", *in.MinimumCashOffer,
				"minimum cash offer must be greater than zero")
		}
		d := decimal.NewFromFloat(*in.MinimumCashOffer)
		minimum = &d
	}

	if !in.AllowBookingProposals && !in.AllowCashProposals {
		return entities.AuctionSettings{}, newError(CodeNoProposalTypesAllowed, "allow_booking_proposals", false,
			"at least one proposal type must be allowed")
	}

	var autoSelect *int
	if in.AutoSelectAfterHours != nil {
		h := *in.AutoSelectAfterHours
		autoSelect = &h
	}

	return entities.AuctionSettings{
		EndDate:               endDate.UTC(),
		AllowBookingProposals: in.AllowBookingProposals,
		AllowCashProposals:    in.AllowCashProposals,
		MinimumCashOffer:      minimum,
		AutoSelectAfterHours:  autoSelect,
	}, nil
}

func parseInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
