package memory

import (
	"context"
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/domain/ranking"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

func TestProposalMemoryRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cash := func(id string, submitted time.Time) entities.Proposal {
		return entities.Proposal{
			ID:           id,
			AuctionID:    "a1",
			ProposerID:   "proposer-" + id,
			ProposalType: entities.ProposalTypeCash,
			Cash:         &entities.CashOffer{Amount: decimal.NewFromInt(100), Currency: "usd"},
			Status:       entities.ProposalStatusPending,
			SubmittedAt:  submitted,
		}
	}

	t.Run("equal timestamps keep insertion order", func(t *testing.T) {
		repo := NewProposalMemoryRepository()
		for _, id := range []string{"zeta", "mike", "alpha"} {
			_, err := repo.Create(ctx, cash(id, now))
			assert.NoError(t, err)
		}

		got, err := repo.List(ctx, entities.ProposalFilter{AuctionID: "a1"})
		assert.NoError(t, err)
		assert.Equal(t, 3, len(got))
		check.Equal(t, "zeta", got[0].ID)
		check.Equal(t, "mike", got[1].ID)
		check.Equal(t, "alpha", got[2].ID)

		res := ranking.Rank(got)
		assert.NotNil(t, res.RecommendedProposal)
		check.Equal(t, "zeta", res.RecommendedProposal.ID)
	})

	t.Run("earlier submission sorts first regardless of insertion", func(t *testing.T) {
		repo := NewProposalMemoryRepository()
		_, err := repo.Create(ctx, cash("late", now.Add(time.Minute)))
		assert.NoError(t, err)
		_, err = repo.Create(ctx, cash("early", now))
		assert.NoError(t, err)

		got, err := repo.List(ctx, entities.ProposalFilter{AuctionID: "a1"})
		assert.NoError(t, err)
		assert.Equal(t, 2, len(got))
		check.Equal(t, "early", got[0].ID)
		check.Equal(t, "late", got[1].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		repo := NewProposalMemoryRepository()
		_, err := repo.Create(ctx, cash("p1", now))
		assert.NoError(t, err)
		_, err = repo.Create(ctx, cash("p2", now))
		assert.NoError(t, err)
		_, err = repo.UpdateStatus(ctx, "p1", entities.ProposalStatusPending, entities.ProposalStatusRejected)
		assert.NoError(t, err)

		pending, err := repo.List(ctx, entities.ProposalFilter{AuctionID: "a1", Status: entities.ProposalStatusPending})
		assert.NoError(t, err)
		assert.Equal(t, 1, len(pending))
		check.Equal(t, "p2", pending[0].ID)
	})
}
