package validation

import (
	"fmt"
	"strings"
)

// Error codes. They are part of the API contract and safe to show to end users.
const (
	CodeInvalidEndDate          = "INVALID_END_DATE"
	CodeEndDateInPast           = "END_DATE_IN_PAST"
	CodeEventLastMinute         = "EVENT_LAST_MINUTE"
	CodeEndDateTooCloseToEvent  = "END_DATE_TOO_CLOSE_TO_EVENT"
	CodeInvalidAutoSelectHours  = "INVALID_AUTO_SELECT_HOURS"
	CodeInvalidMinimumCashOffer = "INVALID_MINIMUM_CASH_OFFER"
	CodeNoProposalTypesAllowed  = "NO_PROPOSAL_TYPES_ALLOWED"

	CodeAuctionNotFound         = "AUCTION_NOT_FOUND"
	CodeAuctionNotActive        = "AUCTION_NOT_ACTIVE"
	CodeOwnProposal             = "CANNOT_PROPOSE_ON_OWN_AUCTION"
	CodeProposalTypeNotAllowed  = "PROPOSAL_TYPE_NOT_ALLOWED"
	CodeInvalidProposalType     = "INVALID_PROPOSAL_TYPE"
	CodeBookingRequired         = "BOOKING_REQUIRED"
	CodeBookingNotFound         = "BOOKING_NOT_FOUND"
	CodeBookingNotOwned         = "BOOKING_NOT_OWNED"
	CodeBookingNotAvailable     = "BOOKING_NOT_AVAILABLE"
	CodeBookingNotVerified      = "BOOKING_NOT_VERIFIED"
	CodeCashOfferRequired       = "CASH_OFFER_REQUIRED"
	CodeInvalidCashAmount       = "INVALID_CASH_AMOUNT"
	CodeCashBelowMinimum        = "CASH_BELOW_MINIMUM"
	CodePaymentMethodRequired   = "PAYMENT_METHOD_REQUIRED"
	CodeDuplicatePendingWarning = "DUPLICATE_PENDING_PROPOSAL"
)

// Error is a single rule violation with the offending field and value.
type Error struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newError(code, field string, value any, format string, args ...any) *Error {
	return &Error{Code: code, Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}

// Errors is an accumulated list of violations; it is returned as a single error.
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether any violation carries the given code.
func (es Errors) Has(code string) bool {
	for _, e := range es {
		if e.Code == code {
			return true
		}
	}
	return false
}
