package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"
)

type ProposalMemoryRepository struct {
	mu        sync.RWMutex
	proposals map[string]entities.Proposal
	// seq records insertion order; it breaks ties between equal SubmittedAt values.
	seq     map[string]uint64
	nextSeq uint64
	now     func() time.Time
}

var _ interfaces.IProposalRepository = (*ProposalMemoryRepository)(nil)

func NewProposalMemoryRepository() *ProposalMemoryRepository {
	return &ProposalMemoryRepository{
		proposals: make(map[string]entities.Proposal),
		seq:       make(map[string]uint64),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *ProposalMemoryRepository) Create(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.proposals[p.ID]; ok {
		return entities.Proposal{}, ErrDuplicateID
	}
	r.proposals[p.ID] = p
	r.seq[p.ID] = r.nextSeq
	r.nextSeq++
	return p, nil
}

func (r *ProposalMemoryRepository) GetByID(_ context.Context, id string) (entities.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.proposals[id], nil
}

// List returns matching proposals in submission order.
func (r *ProposalMemoryRepository) List(_ context.Context, filter entities.ProposalFilter) ([]entities.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Proposal, 0)
	for _, p := range r.proposals {
		if filter.AuctionID != "" && p.AuctionID != filter.AuctionID {
			continue
		}
		if filter.ProposerID != "" && p.ProposerID != filter.ProposerID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return r.seq[out[i].ID] < r.seq[out[j].ID]
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out, nil
}

func (r *ProposalMemoryRepository) UpdateStatus(_ context.Context, id string, from, to entities.ProposalStatus) (entities.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.proposals[id]
	if !ok || p.Status != from {
		return entities.Proposal{}, nil
	}
	p.Status = to
	p.UpdatedAt = r.now()
	r.proposals[id] = p
	return p, nil
}
