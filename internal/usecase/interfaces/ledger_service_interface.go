package interfaces

import (
	"context"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
)

// ILedgerService anchors auction state transitions on an external append-only log.
// Each call returns an opaque confirmation id.
type ILedgerService interface {
	RecordAuctionCreation(ctx context.Context, a entities.Auction) (string, error)
	RecordAuctionProposal(ctx context.Context, a entities.Auction, p entities.Proposal) (string, error)
	RecordAuctionCompletion(ctx context.Context, a entities.Auction, reason string) (string, error)
	RecordAuctionCancellation(ctx context.Context, a entities.Auction) (string, error)
	RecordWinnerSelection(ctx context.Context, a entities.Auction, winner entities.Proposal, automatic bool) (string, error)
}
