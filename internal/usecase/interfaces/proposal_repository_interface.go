package interfaces

import (
	"context"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
)

// IProposalRepository abstracts persistence for Proposal.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, filter entities.ProposalFilter) ([]entities.Proposal, error)

	// UpdateStatus changes status only when the current status equals from.
	// A zero Proposal is returned when the guard fails.
	UpdateStatus(ctx context.Context, id string, from, to entities.ProposalStatus) (entities.Proposal, error)
}
