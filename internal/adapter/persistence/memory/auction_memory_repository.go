package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("memory: duplicate id")

// AuctionMemoryRepository keeps auctions in process memory. Every conditional
// write holds the lock across check and set, mirroring the DynamoDB condition
// expressions.
type AuctionMemoryRepository struct {
	mu       sync.RWMutex
	auctions map[string]entities.Auction
}

var _ interfaces.IAuctionRepository = (*AuctionMemoryRepository)(nil)

func NewAuctionMemoryRepository() *AuctionMemoryRepository {
	return &AuctionMemoryRepository{auctions: make(map[string]entities.Auction)}
}

func (r *AuctionMemoryRepository) Create(_ context.Context, a entities.Auction) (entities.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.auctions[a.ID]; ok {
		return entities.Auction{}, ErrDuplicateID
	}
	a.Proposals = nil
	r.auctions[a.ID] = a
	return a, nil
}

func (r *AuctionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.auctions, id)
	return nil
}

func (r *AuctionMemoryRepository) GetByID(_ context.Context, id string) (entities.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.auctions[id], nil
}

// GetBySwapID prefers an active auction, then the most recently created one.
func (r *AuctionMemoryRepository) GetBySwapID(_ context.Context, swapID string) (entities.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found entities.Auction
	for _, a := range r.auctions {
		if a.SwapID != swapID {
			continue
		}
		if found.ID == "" || preferSwapMatch(a, found) {
			found = a
		}
	}
	return found, nil
}

func (r *AuctionMemoryRepository) UpdateStatus(_ context.Context, id string, from, to entities.AuctionStatus, at time.Time) (entities.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[id]
	if !ok || a.Status != from {
		return entities.Auction{}, nil
	}
	a.Status = to
	a.UpdatedAt = at
	if to == entities.AuctionStatusEnded {
		endedAt := at
		a.EndedAt = &endedAt
	}
	r.auctions[id] = a
	return a, nil
}

func (r *AuctionMemoryRepository) SetWinningProposal(_ context.Context, auctionID, proposalID string, at time.Time) (entities.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[auctionID]
	if !ok || a.Status != entities.AuctionStatusEnded || a.WinningProposalID != "" {
		return entities.Auction{}, nil
	}
	a.WinningProposalID = proposalID
	a.UpdatedAt = at
	r.auctions[auctionID] = a
	return a, nil
}

func (r *AuctionMemoryRepository) ClearWinningProposal(_ context.Context, auctionID, proposalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[auctionID]
	if !ok || a.WinningProposalID != proposalID {
		return nil
	}
	a.WinningProposalID = ""
	r.auctions[auctionID] = a
	return nil
}

func (r *AuctionMemoryRepository) ListExpired(_ context.Context, now time.Time) ([]entities.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Auction, 0)
	for _, a := range r.auctions {
		if a.Status == entities.AuctionStatusActive && !a.Settings.EndDate.After(now) {
			out = append(out, a)
		}
	}
	sortAuctions(out)
	return out, nil
}

func (r *AuctionMemoryRepository) List(_ context.Context, filter entities.AuctionFilter) ([]entities.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Auction, 0)
	for _, a := range r.auctions {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.HasWinner != nil && a.HasWinner() != *filter.HasWinner {
			continue
		}
		out = append(out, a)
	}
	sortAuctions(out)
	return out, nil
}

func preferSwapMatch(candidate, current entities.Auction) bool {
	candActive := candidate.Status == entities.AuctionStatusActive
	curActive := current.Status == entities.AuctionStatusActive
	if candActive != curActive {
		return candActive
	}
	return candidate.CreatedAt.After(current.CreatedAt)
}

func sortAuctions(as []entities.Auction) {
	sort.Slice(as, func(i, j int) bool {
		if as[i].CreatedAt.Equal(as[j].CreatedAt) {
			return as[i].ID < as[j].ID
		}
		return as[i].CreatedAt.Before(as[j].CreatedAt)
	})
}
