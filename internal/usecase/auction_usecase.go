package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/ranking"
	"github.com/bushboy/bookingswap-sub016/internal/domain/validation"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ReasonEnded                   = "end_date_reached"
	ReasonDeadlineApproaching     = "event_deadline_approaching"
	ReasonRescheduledInsideBuffer = "event_rescheduled_inside_buffer"

	CodePaymentMethodUnverified = "PAYMENT_METHOD_UNVERIFIED"
)

// CreateAuctionCommand carries the input of CreateAuction.
// OwnerID may be empty, in which case the booking owner is used.
type CreateAuctionCommand struct {
	SwapID   string
	ItemID   string
	OwnerID  string
	Settings validation.SettingsInput
}

// ProposalSubmission is a stored proposal plus the warnings raised while validating it.
type ProposalSubmission struct {
	Proposal entities.Proposal
	Warnings []*validation.Error
}

// AutoSelectionOutcome tells what HandleAutoSelection did.
type AutoSelectionOutcome string

const (
	AutoSelectionNotDue         AutoSelectionOutcome = "not_due"
	AutoSelectionNoProposals    AutoSelectionOutcome = "no_proposals"
	AutoSelectionSelected       AutoSelectionOutcome = "selected"
	AutoSelectionAlreadyDecided AutoSelectionOutcome = "already_decided"
)

// IAuctionUseCase is the auction lifecycle state machine.
//
//   - CreateAuction / SubmitProposal => caller driven
//   - EndAuction / HandleAutoSelection / ConvertToFirstMatch => also driven by the deadline sweeper
//   - CancelAuction / SelectWinningProposal => owner only
type IAuctionUseCase interface {
	CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (entities.Auction, error)
	SubmitProposal(ctx context.Context, in validation.ProposalInput) (ProposalSubmission, error)
	ValidateProposal(ctx context.Context, in validation.ProposalInput) (validation.Result, error)
	EndAuction(ctx context.Context, auctionID string) (entities.Auction, error)
	CancelAuction(ctx context.Context, auctionID, callerID string) (entities.Auction, error)
	SelectWinningProposal(ctx context.Context, auctionID, proposalID, callerID string) (entities.Auction, error)
	ConvertToFirstMatch(ctx context.Context, auctionID, reason string) (entities.Auction, error)
	HandleAutoSelection(ctx context.Context, auctionID string) (AutoSelectionOutcome, error)
	GetAuction(ctx context.Context, auctionID string) (entities.Auction, error)
	GetAuctionBySwapID(ctx context.Context, swapID string) (entities.Auction, error)
	GetRanking(ctx context.Context, auctionID string) (ranking.Result, error)
}

type AuctionUseCase struct {
	auctions       interfaces.IAuctionRepository
	proposals      interfaces.IProposalRepository
	items          interfaces.IItemLookup
	ledger         interfaces.ILedgerService
	notifier       interfaces.INotificationService
	alerter        IRollbackAlerter
	paymentMethods interfaces.IPaymentMethodDirectory
	now            func() time.Time
}

var _ IAuctionUseCase = (*AuctionUseCase)(nil)

type AuctionOption func(*AuctionUseCase)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) AuctionOption {
	return func(u *AuctionUseCase) { u.now = now }
}

// WithPaymentMethodDirectory enables the payment-method warning on cash proposals.
func WithPaymentMethodDirectory(d interfaces.IPaymentMethodDirectory) AuctionOption {
	return func(u *AuctionUseCase) { u.paymentMethods = d }
}

func NewAuctionUseCase(
	auctions interfaces.IAuctionRepository,
	proposals interfaces.IProposalRepository,
	items interfaces.IItemLookup,
	ledger interfaces.ILedgerService,
	notifier interfaces.INotificationService,
	alerter IRollbackAlerter,
	opts ...AuctionOption,
) *AuctionUseCase {
	u := &AuctionUseCase{
		auctions:  auctions,
		proposals: proposals,
		items:     items,
		ledger:    ledger,
		notifier:  notifier,
		alerter:   alerter,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *AuctionUseCase) CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (entities.Auction, error) {
	swapID := strings.TrimSpace(cmd.SwapID)
	itemID := strings.TrimSpace(cmd.ItemID)
	log.Printf("[auction][usecase] create start swap_id=%q item_id=%q", swapID, itemID)
	if swapID == "" || itemID == "" {
		return entities.Auction{}, ErrInvalidReferenceID
	}

	item, err := u.items.GetItemByID(ctx, itemID)
	if err != nil {
		log.Printf("[auction][usecase] item lookup failed item_id=%s err=%v", itemID, err)
		return entities.Auction{}, collaboratorFailure("item lookup", "get item", err)
	}
	if item.ID == "" {
		return entities.Auction{}, ErrItemNotFound
	}

	ownerID := strings.TrimSpace(cmd.OwnerID)
	if ownerID == "" {
		ownerID = item.OwnerID
	}
	if ownerID != item.OwnerID {
		log.Printf("[auction][usecase] caller does not own item item_id=%s caller=%s", itemID, ownerID)
		return entities.Auction{}, ErrNotAuctionOwner
	}

	now := u.now()
	settings, err := validation.ValidateSettings(cmd.Settings, item.EventDate, now)
	if err != nil {
		log.Printf("[auction][usecase] settings rejected swap_id=%s err=%v", swapID, err)
		return entities.Auction{}, err
	}

	existing, err := u.auctions.GetBySwapID(ctx, swapID)
	if err != nil {
		return entities.Auction{}, collaboratorFailure("auction store", "get by swap id", err)
	}
	if existing.ID != "" && existing.Status == entities.AuctionStatusActive {
		return entities.Auction{}, conflict(existing.ID, string(existing.Status), ErrAuctionExists)
	}

	auction := entities.Auction{
		ID:        uuid.NewString(),
		SwapID:    swapID,
		ItemID:    itemID,
		OwnerID:   ownerID,
		EventDate: item.EventDate.UTC(),
		Status:    entities.AuctionStatusActive,
		Settings:  settings,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Creation is only complete once the ledger has it; otherwise the stored
	// record is removed again.
	var created entities.Auction
	seq := newCompletionSequence("create_auction", auction.ID, u.alerter)
	seq.add("persist_auction",
		func(ctx context.Context) error {
			var err error
			created, err = u.auctions.Create(ctx, auction)
			if err != nil {
				return collaboratorFailure("auction store", "create", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			log.Printf("[auction][usecase] compensating creation auction_id=%s", auction.ID)
			return u.auctions.Delete(ctx, auction.ID)
		},
	)
	seq.add("record_creation",
		func(ctx context.Context) error {
			if u.ledger == nil {
				return collaboratorFailure("ledger", "record auction creation", errors.New("ledger service not configured"))
			}
			confirmation, err := u.ledger.RecordAuctionCreation(ctx, created)
			if err != nil {
				return collaboratorFailure("ledger", "record auction creation", err)
			}
			log.Printf("[auction][usecase] creation recorded auction_id=%s confirmation=%s", created.ID, confirmation)
			return nil
		},
		nil,
	)
	if err := seq.run(ctx); err != nil {
		log.Printf("[auction][usecase] create failed swap_id=%s auction_id=%s err=%v", swapID, auction.ID, err)
		return entities.Auction{}, err
	}

	u.notify(ctx, entities.NotificationAuctionCreated, created.OwnerID, created.ID, "", map[string]string{
		"swap_id":  created.SwapID,
		"end_date": created.Settings.EndDate.Format(time.RFC3339),
	})
	log.Printf("[auction][usecase] create success auction_id=%s swap_id=%s end_date=%s", created.ID, created.SwapID, created.Settings.EndDate.Format(time.RFC3339))
	return created, nil
}

func (u *AuctionUseCase) SubmitProposal(ctx context.Context, in validation.ProposalInput) (ProposalSubmission, error) {
	in.AuctionID = strings.TrimSpace(in.AuctionID)
	in.ProposerID = strings.TrimSpace(in.ProposerID)
	log.Printf("[proposal][usecase] submit start auction_id=%s proposer_id=%s type=%s", in.AuctionID, in.ProposerID, in.ProposalType)
	if in.AuctionID == "" {
		return ProposalSubmission{}, ErrInvalidAuctionID
	}
	if in.ProposerID == "" {
		return ProposalSubmission{}, ErrInvalidCallerID
	}

	auction, err := u.loadWithProposals(ctx, in.AuctionID)
	if err != nil {
		return ProposalSubmission{}, err
	}
	if auction.Status != entities.AuctionStatusActive {
		return ProposalSubmission{}, conflict(auction.ID, string(auction.Status), ErrInvalidStatus)
	}
	now := u.now()
	if now.After(auction.Settings.EndDate) {
		return ProposalSubmission{}, conflict(auction.ID, string(auction.Status), ErrAuctionClosed)
	}

	res, err := validation.ValidateProposal(ctx, in, &auction, u.items)
	if err != nil {
		return ProposalSubmission{}, collaboratorFailure("item lookup", "validate booking", err)
	}
	if !res.IsValid {
		log.Printf("[proposal][usecase] proposal rejected auction_id=%s proposer_id=%s errors=%d", auction.ID, in.ProposerID, len(res.Errors))
		return ProposalSubmission{}, res.Err()
	}
	warnings := append(res.Warnings, u.paymentMethodWarnings(ctx, in)...)

	proposal := entities.Proposal{
		ID:           uuid.NewString(),
		AuctionID:    auction.ID,
		ProposerID:   in.ProposerID,
		ProposalType: in.ProposalType,
		Message:      strings.TrimSpace(in.Message),
		Status:       entities.ProposalStatusPending,
		SubmittedAt:  now,
		UpdatedAt:    now,
	}
	switch in.ProposalType {
	case entities.ProposalTypeBooking:
		proposal.BookingID = strings.TrimSpace(in.BookingID)
	case entities.ProposalTypeCash:
		proposal.Cash = &entities.CashOffer{
			Amount:          decimal.NewFromFloat(*in.CashAmount),
			Currency:        strings.ToUpper(strings.TrimSpace(in.Currency)),
			PaymentMethodID: strings.TrimSpace(in.PaymentMethodID),
			EscrowRequired:  in.EscrowRequired,
		}
	}

	created, err := u.proposals.Create(ctx, proposal)
	if err != nil {
		log.Printf("[proposal][usecase] store create failed auction_id=%s err=%v", auction.ID, err)
		return ProposalSubmission{}, collaboratorFailure("proposal store", "create", err)
	}

	u.notify(ctx, entities.NotificationProposalReceived, auction.OwnerID, auction.ID, created.ID, map[string]string{
		"proposal_type": string(created.ProposalType),
	})
	u.recordSoft("record auction proposal", auction.ID, func() (string, error) {
		return u.ledger.RecordAuctionProposal(ctx, auction, created)
	})

	log.Printf("[proposal][usecase] submit success auction_id=%s proposal_id=%s warnings=%d", auction.ID, created.ID, len(warnings))
	return ProposalSubmission{Proposal: created, Warnings: warnings}, nil
}

// ValidateProposal runs proposal validation without storing anything.
func (u *AuctionUseCase) ValidateProposal(ctx context.Context, in validation.ProposalInput) (validation.Result, error) {
	in.AuctionID = strings.TrimSpace(in.AuctionID)
	in.ProposerID = strings.TrimSpace(in.ProposerID)

	var auction *entities.Auction
	if in.AuctionID != "" {
		a, err := u.loadWithProposals(ctx, in.AuctionID)
		switch {
		case err == nil:
			auction = &a
		case !errors.Is(err, ErrAuctionNotFound):
			return validation.Result{}, err
		}
	}

	res, err := validation.ValidateProposal(ctx, in, auction, u.items)
	if err != nil {
		return validation.Result{}, collaboratorFailure("item lookup", "validate booking", err)
	}
	if res.IsValid {
		res.Warnings = append(res.Warnings, u.paymentMethodWarnings(ctx, in)...)
	}
	return res, nil
}

func (u *AuctionUseCase) EndAuction(ctx context.Context, auctionID string) (entities.Auction, error) {
	return u.endAuction(ctx, auctionID, ReasonEnded)
}

func (u *AuctionUseCase) endAuction(ctx context.Context, auctionID, reason string) (entities.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	log.Printf("[auction][usecase] end start auction_id=%s reason=%s", auctionID, reason)
	if auctionID == "" {
		return entities.Auction{}, ErrInvalidAuctionID
	}

	auction, err := u.load(ctx, auctionID)
	if err != nil {
		return entities.Auction{}, err
	}
	if auction.Status != entities.AuctionStatusActive {
		return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrInvalidStatus)
	}

	ended, err := u.transition(ctx, auction.ID, entities.AuctionStatusActive, entities.AuctionStatusEnded)
	if err != nil {
		return entities.Auction{}, err
	}

	pending := u.pendingProposals(ctx, ended.ID)
	ended.Proposals = pending

	u.recordSoft("record auction completion", ended.ID, func() (string, error) {
		return u.ledger.RecordAuctionCompletion(ctx, ended, reason)
	})

	data := map[string]string{"reason": reason, "proposal_count": strconv.Itoa(len(pending))}
	u.notify(ctx, entities.NotificationAuctionEnded, ended.OwnerID, ended.ID, "", data)
	for _, proposerID := range uniqueProposers(pending) {
		u.notify(ctx, entities.NotificationAuctionEnded, proposerID, ended.ID, "", data)
	}

	// Auto-selection itself is performed later by the deadline sweeper; here the
	// owner is only told when it will happen.
	if deadline, ok := ended.AutoSelectDeadline(); ok && len(pending) > 0 {
		log.Printf("[auction][usecase] auto-selection scheduled auction_id=%s due_at=%s", ended.ID, deadline.Format(time.RFC3339))
		u.notify(ctx, entities.NotificationSelectionReminder, ended.OwnerID, ended.ID, "", map[string]string{
			"auto_select_at": deadline.Format(time.RFC3339),
		})
	}

	log.Printf("[auction][usecase] end success auction_id=%s pending_proposals=%d", ended.ID, len(pending))
	return ended, nil
}

func (u *AuctionUseCase) CancelAuction(ctx context.Context, auctionID, callerID string) (entities.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	callerID = strings.TrimSpace(callerID)
	log.Printf("[auction][usecase] cancel start auction_id=%s caller_id=%s", auctionID, callerID)
	if auctionID == "" {
		return entities.Auction{}, ErrInvalidAuctionID
	}
	if callerID == "" {
		return entities.Auction{}, ErrInvalidCallerID
	}

	auction, err := u.load(ctx, auctionID)
	if err != nil {
		return entities.Auction{}, err
	}
	if auction.OwnerID != callerID {
		return entities.Auction{}, ErrNotAuctionOwner
	}
	if auction.Status != entities.AuctionStatusActive {
		return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrInvalidStatus)
	}

	cancelled, err := u.transition(ctx, auction.ID, entities.AuctionStatusActive, entities.AuctionStatusCancelled)
	if err != nil {
		return entities.Auction{}, err
	}

	pending := u.pendingProposals(ctx, cancelled.ID)
	cancelled.Proposals = pending

	u.recordSoft("record auction cancellation", cancelled.ID, func() (string, error) {
		return u.ledger.RecordAuctionCancellation(ctx, cancelled)
	})
	for _, proposerID := range uniqueProposers(pending) {
		u.notify(ctx, entities.NotificationAuctionCancelled, proposerID, cancelled.ID, "", nil)
	}

	log.Printf("[auction][usecase] cancel success auction_id=%s notified=%d", cancelled.ID, len(uniqueProposers(pending)))
	return cancelled, nil
}

func (u *AuctionUseCase) SelectWinningProposal(ctx context.Context, auctionID, proposalID, callerID string) (entities.Auction, error) {
	return u.selectWinner(ctx, auctionID, proposalID, callerID, false)
}

func (u *AuctionUseCase) selectWinner(ctx context.Context, auctionID, proposalID, callerID string, automatic bool) (entities.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	proposalID = strings.TrimSpace(proposalID)
	callerID = strings.TrimSpace(callerID)
	log.Printf("[auction][usecase] select-winner start auction_id=%s proposal_id=%s caller_id=%s automatic=%t", auctionID, proposalID, callerID, automatic)
	switch {
	case auctionID == "":
		return entities.Auction{}, ErrInvalidAuctionID
	case proposalID == "":
		return entities.Auction{}, ErrInvalidProposalID
	case callerID == "":
		return entities.Auction{}, ErrInvalidCallerID
	}

	auction, err := u.load(ctx, auctionID)
	if err != nil {
		return entities.Auction{}, err
	}
	if auction.OwnerID != callerID {
		return entities.Auction{}, ErrNotAuctionOwner
	}
	if auction.HasWinner() {
		return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrAlreadyDecided)
	}
	if auction.Status != entities.AuctionStatusEnded {
		return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrInvalidStatus)
	}

	all, err := u.proposals.List(ctx, entities.ProposalFilter{AuctionID: auction.ID})
	if err != nil {
		return entities.Auction{}, collaboratorFailure("proposal store", "list", err)
	}
	var (
		winner *entities.Proposal
		losers []entities.Proposal
	)
	for i := range all {
		switch {
		case all[i].ID == proposalID:
			winner = &all[i]
		case all[i].IsPending():
			losers = append(losers, all[i])
		}
	}
	if winner == nil {
		other, err := u.proposals.GetByID(ctx, proposalID)
		if err != nil {
			return entities.Auction{}, collaboratorFailure("proposal store", "get", err)
		}
		if other.ID != "" && other.AuctionID != auction.ID {
			log.Printf("[auction][usecase] select-winner proposal belongs elsewhere auction_id=%s proposal_id=%s other_auction_id=%s", auction.ID, proposalID, other.AuctionID)
			return entities.Auction{}, ErrProposalMismatch
		}
		return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrProposalNotFound)
	}
	if !winner.IsPending() {
		// A selection that completed between our reads leaves the proposal
		// accepted; report that as the decision it is.
		if u.decidedMeanwhile(ctx, auction.ID) {
			return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrAlreadyDecided)
		}
		return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrProposalNotPending)
	}

	var decided entities.Auction
	seq := newCompletionSequence("select_winner", auction.ID, u.alerter)
	seq.add("set_winning_proposal",
		func(ctx context.Context) error {
			updated, err := u.auctions.SetWinningProposal(ctx, auction.ID, winner.ID, u.now())
			if err != nil {
				return collaboratorFailure("auction store", "set winning proposal", err)
			}
			if updated.ID == "" {
				return conflict(auction.ID, string(auction.Status), ErrAlreadyDecided)
			}
			decided = updated
			return nil
		},
		func(ctx context.Context) error {
			return u.auctions.ClearWinningProposal(ctx, auction.ID, winner.ID)
		},
	)
	seq.add("accept_proposal:"+winner.ID,
		func(ctx context.Context) error {
			return u.moveProposal(ctx, auction.ID, winner.ID, entities.ProposalStatusPending, entities.ProposalStatusAccepted)
		},
		func(ctx context.Context) error {
			return u.moveProposal(ctx, auction.ID, winner.ID, entities.ProposalStatusAccepted, entities.ProposalStatusPending)
		},
	)
	for _, loser := range losers {
		loserID := loser.ID
		rejected := false
		seq.add("reject_proposal:"+loserID,
			func(ctx context.Context) error {
				updated, err := u.proposals.UpdateStatus(ctx, loserID, entities.ProposalStatusPending, entities.ProposalStatusRejected)
				if err != nil {
					return collaboratorFailure("proposal store", "reject proposal", err)
				}
				rejected = updated.ID != ""
				return nil
			},
			func(ctx context.Context) error {
				if !rejected {
					return nil
				}
				return u.moveProposal(ctx, auction.ID, loserID, entities.ProposalStatusRejected, entities.ProposalStatusPending)
			},
		)
	}
	if err := seq.run(ctx); err != nil {
		log.Printf("[auction][usecase] select-winner failed auction_id=%s proposal_id=%s err=%v", auction.ID, winner.ID, err)
		return entities.Auction{}, err
	}

	winner.Status = entities.ProposalStatusAccepted
	for i := range losers {
		losers[i].Status = entities.ProposalStatusRejected
	}
	decided.Proposals = append([]entities.Proposal{*winner}, losers...)

	u.recordSoft("record winner selection", decided.ID, func() (string, error) {
		return u.ledger.RecordWinnerSelection(ctx, decided, *winner, automatic)
	})
	u.notify(ctx, entities.NotificationProposalWon, winner.ProposerID, decided.ID, winner.ID, map[string]string{
		"automatic": strconv.FormatBool(automatic),
	})
	for _, l := range losers {
		u.notify(ctx, entities.NotificationProposalLost, l.ProposerID, decided.ID, l.ID, nil)
	}

	log.Printf("[auction][usecase] select-winner success auction_id=%s proposal_id=%s rejected=%d automatic=%t", decided.ID, winner.ID, len(losers), automatic)
	return decided, nil
}

// ConvertToFirstMatch ends the auction early because its event is close and,
// when pending proposals exist, immediately selects the recommended one.
func (u *AuctionUseCase) ConvertToFirstMatch(ctx context.Context, auctionID, reason string) (entities.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = ReasonDeadlineApproaching
	}
	log.Printf("[auction][usecase] convert start auction_id=%s reason=%s", auctionID, reason)
	if auctionID == "" {
		return entities.Auction{}, ErrInvalidAuctionID
	}

	auction, err := u.load(ctx, auctionID)
	if err != nil {
		return entities.Auction{}, err
	}

	switch auction.Status {
	case entities.AuctionStatusActive:
		ended, err := u.endAuction(ctx, auction.ID, reason)
		switch {
		case err == nil:
			auction = ended
		case errors.Is(err, ErrInvalidStatus):
			// Someone else ended it in the meantime; continue from the fresh state.
			if auction, err = u.load(ctx, auction.ID); err != nil {
				return entities.Auction{}, err
			}
			if auction.Status != entities.AuctionStatusEnded {
				return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrInvalidStatus)
			}
			u.recordSoft("record auction completion", auction.ID, func() (string, error) {
				return u.ledger.RecordAuctionCompletion(ctx, auction, reason)
			})
		default:
			return entities.Auction{}, err
		}
	case entities.AuctionStatusEnded:
		u.recordSoft("record auction completion", auction.ID, func() (string, error) {
			return u.ledger.RecordAuctionCompletion(ctx, auction, reason)
		})
	default:
		return entities.Auction{}, conflict(auction.ID, string(auction.Status), ErrInvalidStatus)
	}

	if auction.HasWinner() {
		log.Printf("[auction][usecase] convert done, winner already set auction_id=%s", auction.ID)
		return u.withProposals(ctx, auction)
	}

	rec := ranking.Rank(u.pendingProposals(ctx, auction.ID)).RecommendedProposal
	if rec == nil {
		log.Printf("[auction][usecase] convert done, no pending proposals auction_id=%s", auction.ID)
		return u.withProposals(ctx, auction)
	}

	decided, err := u.selectWinner(ctx, auction.ID, rec.ID, auction.OwnerID, true)
	if errors.Is(err, ErrAlreadyDecided) {
		log.Printf("[auction][usecase] convert raced with another selection auction_id=%s", auction.ID)
		return u.GetAuction(ctx, auction.ID)
	}
	if err != nil {
		return entities.Auction{}, err
	}
	log.Printf("[auction][usecase] convert success auction_id=%s winner=%s", decided.ID, rec.ID)
	return decided, nil
}

// HandleAutoSelection picks the recommended proposal once the auto-select
// timeout has elapsed. It is safe to call repeatedly and concurrently: calls
// that find the work already done report AutoSelectionAlreadyDecided.
func (u *AuctionUseCase) HandleAutoSelection(ctx context.Context, auctionID string) (AutoSelectionOutcome, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return "", ErrInvalidAuctionID
	}

	auction, err := u.load(ctx, auctionID)
	if err != nil {
		return "", err
	}
	if auction.HasWinner() {
		return AutoSelectionAlreadyDecided, nil
	}
	deadline, ok := auction.AutoSelectDeadline()
	if auction.Status != entities.AuctionStatusEnded || !ok || u.now().Before(deadline) {
		return AutoSelectionNotDue, nil
	}

	rec := ranking.Rank(u.pendingProposals(ctx, auction.ID)).RecommendedProposal
	if rec == nil {
		if u.decidedMeanwhile(ctx, auction.ID) {
			return AutoSelectionAlreadyDecided, nil
		}
		log.Printf("[auction][usecase] auto-select found no pending proposals auction_id=%s", auction.ID)
		return AutoSelectionNoProposals, nil
	}

	if _, err := u.selectWinner(ctx, auction.ID, rec.ID, auction.OwnerID, true); err != nil {
		if errors.Is(err, ErrAlreadyDecided) {
			log.Printf("[auction][usecase] auto-select lost race, already decided auction_id=%s", auction.ID)
			return AutoSelectionAlreadyDecided, nil
		}
		return "", err
	}
	return AutoSelectionSelected, nil
}

func (u *AuctionUseCase) GetAuction(ctx context.Context, auctionID string) (entities.Auction, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return entities.Auction{}, ErrInvalidAuctionID
	}
	return u.loadWithProposals(ctx, auctionID)
}

func (u *AuctionUseCase) GetAuctionBySwapID(ctx context.Context, swapID string) (entities.Auction, error) {
	swapID = strings.TrimSpace(swapID)
	if swapID == "" {
		return entities.Auction{}, ErrInvalidReferenceID
	}
	a, err := u.auctions.GetBySwapID(ctx, swapID)
	if err != nil {
		return entities.Auction{}, collaboratorFailure("auction store", "get by swap id", err)
	}
	if a.ID == "" {
		return entities.Auction{}, ErrAuctionNotFound
	}
	return u.withProposals(ctx, a)
}

func (u *AuctionUseCase) GetRanking(ctx context.Context, auctionID string) (ranking.Result, error) {
	auction, err := u.GetAuction(ctx, auctionID)
	if err != nil {
		return ranking.Result{}, err
	}
	return ranking.Rank(auction.Proposals), nil
}

func (u *AuctionUseCase) load(ctx context.Context, auctionID string) (entities.Auction, error) {
	a, err := u.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return entities.Auction{}, collaboratorFailure("auction store", "get", err)
	}
	if a.ID == "" {
		return entities.Auction{}, ErrAuctionNotFound
	}
	return a, nil
}

func (u *AuctionUseCase) loadWithProposals(ctx context.Context, auctionID string) (entities.Auction, error) {
	a, err := u.load(ctx, auctionID)
	if err != nil {
		return entities.Auction{}, err
	}
	return u.withProposals(ctx, a)
}

func (u *AuctionUseCase) withProposals(ctx context.Context, a entities.Auction) (entities.Auction, error) {
	proposals, err := u.proposals.List(ctx, entities.ProposalFilter{AuctionID: a.ID})
	if err != nil {
		return entities.Auction{}, collaboratorFailure("proposal store", "list", err)
	}
	a.Proposals = proposals
	return a, nil
}

// transition applies a guarded status change and turns a failed guard into a
// state conflict carrying the status that won.
func (u *AuctionUseCase) transition(ctx context.Context, auctionID string, from, to entities.AuctionStatus) (entities.Auction, error) {
	updated, err := u.auctions.UpdateStatus(ctx, auctionID, from, to, u.now())
	if err != nil {
		log.Printf("[auction][usecase] status update failed auction_id=%s to=%s err=%v", auctionID, to, err)
		return entities.Auction{}, collaboratorFailure("auction store", "update status", err)
	}
	if updated.ID != "" {
		return updated, nil
	}
	current, err := u.load(ctx, auctionID)
	if err != nil {
		return entities.Auction{}, err
	}
	log.Printf("[auction][usecase] status changed concurrently auction_id=%s want=%s->%s current=%s", auctionID, from, to, current.Status)
	return entities.Auction{}, conflict(auctionID, string(current.Status), ErrInvalidStatus)
}

func (u *AuctionUseCase) decidedMeanwhile(ctx context.Context, auctionID string) bool {
	fresh, err := u.load(ctx, auctionID)
	return err == nil && fresh.HasWinner()
}

func (u *AuctionUseCase) moveProposal(ctx context.Context, auctionID, id string, from, to entities.ProposalStatus) error {
	updated, err := u.proposals.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return collaboratorFailure("proposal store", "update status", err)
	}
	if updated.ID == "" {
		return conflict(auctionID, "", fmt.Errorf("proposal %s is no longer %s: %w", id, from, ErrProposalNotPending))
	}
	return nil
}

func (u *AuctionUseCase) pendingProposals(ctx context.Context, auctionID string) []entities.Proposal {
	pending, err := u.proposals.List(ctx, entities.ProposalFilter{AuctionID: auctionID, Status: entities.ProposalStatusPending})
	if err != nil {
		log.Printf("[auction][usecase] listing pending proposals failed auction_id=%s err=%v", auctionID, err)
		return nil
	}
	return pending
}

func (u *AuctionUseCase) paymentMethodWarnings(ctx context.Context, in validation.ProposalInput) []*validation.Error {
	if u.paymentMethods == nil || in.ProposalType != entities.ProposalTypeCash || strings.TrimSpace(in.PaymentMethodID) == "" {
		return nil
	}
	ok, err := u.paymentMethods.IsSupported(ctx, strings.TrimSpace(in.PaymentMethodID))
	if err != nil {
		log.Printf("[proposal][usecase] payment method check failed payment_method_id=%s err=%v", in.PaymentMethodID, err)
		return nil
	}
	if ok {
		return nil
	}
	return []*validation.Error{{
		Code:    CodePaymentMethodUnverified,
		Field:   "payment_method_id",
		Value:   in.PaymentMethodID,
		Message: "payment method is not recognised by the payment provider",
	}}
}

func (u *AuctionUseCase) notify(ctx context.Context, typ entities.NotificationType, recipientID, auctionID, proposalID string, data map[string]string) {
	if u.notifier == nil {
		return
	}
	n := entities.Notification{
		ID:          uuid.NewString(),
		Type:        typ,
		RecipientID: recipientID,
		AuctionID:   auctionID,
		ProposalID:  proposalID,
		Data:        data,
		CreatedAt:   u.now(),
	}
	if err := u.notifier.Send(ctx, n); err != nil {
		log.Printf("[notify][usecase] send failed type=%s recipient_id=%s auction_id=%s err=%v", typ, recipientID, auctionID, err)
	}
}

func (u *AuctionUseCase) recordSoft(op, auctionID string, record func() (string, error)) {
	if u.ledger == nil {
		log.Printf("[ledger][usecase] ledger not configured; skipped %s auction_id=%s", op, auctionID)
		return
	}
	confirmation, err := record()
	if err != nil {
		log.Printf("[ledger][usecase] %s failed auction_id=%s err=%v", op, auctionID, err)
		return
	}
	log.Printf("[ledger][usecase] %s ok auction_id=%s confirmation=%s", op, auctionID, confirmation)
}

func uniqueProposers(proposals []entities.Proposal) []string {
	seen := make(map[string]bool, len(proposals))
	out := make([]string, 0, len(proposals))
	for _, p := range proposals {
		if seen[p.ProposerID] {
			continue
		}
		seen[p.ProposerID] = true
		out = append(out, p.ProposerID)
	}
	return out
}
