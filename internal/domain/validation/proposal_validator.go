package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ItemLookup resolves bookings referenced by booking proposals.
type ItemLookup interface {
	GetItemByID(ctx context.Context, id string) (entities.SwapItem, error)
}

// ProposalInput is a proposal as submitted, before it is persisted.
type ProposalInput struct {
	AuctionID       string
	ProposerID      string
	ProposalType    entities.ProposalType
	BookingID       string
	CashAmount      *float64
	Currency        string
	PaymentMethodID string
	EscrowRequired  bool
	Message         string
}

// Result reports every violation found, plus non-blocking warnings.
type Result struct {
	IsValid  bool     `json:"is_valid"`
	Errors   Errors   `json:"errors"`
	Warnings []*Error `json:"warnings"`
}

// Err returns the accumulated violations as an error, or nil when valid.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return r.Errors
}

func (r *Result) fail(e *Error) {
	r.Errors = append(r.Errors, e)
	r.IsValid = false
}

// ValidateProposal checks a proposal against the auction and its current
// proposals. Unlike settings validation it does not stop at the first problem:
// every independent rule is evaluated so callers see all violations at once.
//
// The auction must carry its proposals for the duplicate warning to work.
// The returned error is non-nil only when the item lookup itself fails.
func ValidateProposal(ctx context.Context, in ProposalInput, auction *entities.Auction, items ItemLookup) (Result, error) {
	res := Result{IsValid: true, Errors: Errors{}, Warnings: []*Error{}}

	if auction == nil || auction.ID == "" {
		res.fail(newError(CodeAuctionNotFound, "auction_id", in.AuctionID, "auction not found"))
		return res, nil
	}
	if auction.Status != entities.AuctionStatusActive {
		res.fail(newError(CodeAuctionNotActive, "auction_id", in.AuctionID,
			"auction is %s and no longer accepts proposals", auction.Status))
		return res, nil
	}

	if strings.TrimSpace(in.ProposerID) == auction.OwnerID {
		res.fail(newError(CodeOwnProposal, "proposer_id", in.ProposerID,
			"auction owner cannot submit proposals on their own auction"))
	}

	switch in.ProposalType {
	case entities.ProposalTypeBooking, entities.ProposalTypeCash:
		if !auction.Settings.Allows(in.ProposalType) {
			res.fail(newError(CodeProposalTypeNotAllowed, "proposal_type", string(in.ProposalType),
				"%s proposals are not allowed for this auction", in.ProposalType))
		}
	default:
		res.fail(newError(CodeInvalidProposalType, "proposal_type", string(in.ProposalType),
			"proposal type must be %q or %q", entities.ProposalTypeBooking, entities.ProposalTypeCash))
	}

	switch in.ProposalType {
	case entities.ProposalTypeBooking:
		if err := validateBooking(ctx, in, items, &res); err != nil {
			return res, err
		}
	case entities.ProposalTypeCash:
		validateCash(in, auction.Settings, &res)
	}

	for _, p := range auction.PendingProposals() {
		if p.ProposerID == in.ProposerID {
			res.Warnings = append(res.Warnings, newError(CodeDuplicatePendingWarning, "proposer_id", in.ProposerID,
				"you already have a pending proposal on this auction"))
			break
		}
	}

	return res, nil
}

func validateBooking(ctx context.Context, in ProposalInput, items ItemLookup, res *Result) error {
	bookingID := strings.TrimSpace(in.BookingID)
	if bookingID == "" {
		res.fail(newError(CodeBookingRequired, "booking_id", in.BookingID, "booking proposals must reference a booking"))
		return nil
	}
	if items == nil {
		return fmt.Errorf("item lookup not configured")
	}

	item, err := items.GetItemByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("lookup booking %s: %w", bookingID, err)
	}
	if item.ID == "" {
		res.fail(newError(CodeBookingNotFound, "booking_id", bookingID, "booking not found"))
		return nil
	}
	if item.OwnerID != in.ProposerID {
		res.fail(newError(CodeBookingNotOwned, "booking_id", bookingID, "booking is not owned by the proposer"))
	}
	if !item.IsAvailable() {
		res.fail(newError(CodeBookingNotAvailable, "booking_id", bookingID, "booking is %s, not available", item.Status))
	}
	if !item.IsVerified() {
		res.fail(newError(CodeBookingNotVerified, "booking_id", bookingID, "booking has not been verified"))
	}
	return nil
}

func validateCash(in ProposalInput, settings entities.AuctionSettings, res *Result) {
	if in.CashAmount == nil {
		res.fail(newError(CodeCashOfferRequired, "cash_amount", nil, "cash proposals must include an amount"))
	} else {
		amount := decimal.NewFromFloat(*in.CashAmount)
		if !amount.IsPositive() {
			res.fail(newError(CodeInvalidCashAmount, "cash_amount", *in.CashAmount, "cash amount must be greater than zero"))
		} else if settings.MinimumCashOffer != nil && amount.LessThan(*settings.MinimumCashOffer) {
			res.fail(newError(CodeCashBelowMinimum, "cash_amount", *in.CashAmount,
				"cash offer must be at least %s", settings.MinimumCashOffer.String()))
		}
	}
	if strings.TrimSpace(in.PaymentMethodID) == "" {
		res.fail(newError(CodePaymentMethodRequired, "payment_method_id", in.PaymentMethodID, "payment method is required"))
	}
}
