package interfaces

import (
	"context"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
)

// IAuctionRepository abstracts persistence for Auction.
//
// Not-found reads return a zero Auction (ID == "") and a nil error.
// Conditional writes return a zero Auction when their guard does not hold,
// which lets callers tell "state already moved on" apart from storage failures.
type IAuctionRepository interface {
	Create(ctx context.Context, a entities.Auction) (entities.Auction, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Auction, error)
	GetBySwapID(ctx context.Context, swapID string) (entities.Auction, error)

	// UpdateStatus moves an auction from one status to another. When to is
	// ended, at is stored as ended_at.
	UpdateStatus(ctx context.Context, id string, from, to entities.AuctionStatus, at time.Time) (entities.Auction, error)

	// SetWinningProposal sets winning_proposal_id only if the auction is ended
	// and has no winner yet. The check and the write are a single atomic operation.
	SetWinningProposal(ctx context.Context, auctionID, proposalID string, at time.Time) (entities.Auction, error)

	// ClearWinningProposal undoes SetWinningProposal when winner selection
	// could not be completed. It only clears the given proposal id.
	ClearWinningProposal(ctx context.Context, auctionID, proposalID string) error

	ListExpired(ctx context.Context, now time.Time) ([]entities.Auction, error)
	List(ctx context.Context, filter entities.AuctionFilter) ([]entities.Auction, error)
}
