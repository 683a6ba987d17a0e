package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestAuctionMemoryRepository_Conditionals(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("UpdateStatus only applies from the expected status", func(t *testing.T) {
		repo := NewAuctionMemoryRepository()
		_, err := repo.Create(ctx, entities.Auction{ID: "a1", Status: entities.AuctionStatusActive})
		assert.NoError(t, err)

		ended, err := repo.UpdateStatus(ctx, "a1", entities.AuctionStatusActive, entities.AuctionStatusEnded, now)
		assert.NoError(t, err)
		check.Equal(t, entities.AuctionStatusEnded, ended.Status)
		assert.NotNil(t, ended.EndedAt)
		check.True(t, ended.EndedAt.Equal(now))

		again, err := repo.UpdateStatus(ctx, "a1", entities.AuctionStatusActive, entities.AuctionStatusCancelled, now)
		check.NoError(t, err)
		check.Equal(t, "", again.ID)

		missing, err := repo.UpdateStatus(ctx, "nope", entities.AuctionStatusActive, entities.AuctionStatusEnded, now)
		check.NoError(t, err)
		check.Equal(t, "", missing.ID)
	})

	t.Run("SetWinningProposal admits exactly one winner under contention", func(t *testing.T) {
		repo := NewAuctionMemoryRepository()
		_, err := repo.Create(ctx, entities.Auction{ID: "a1", Status: entities.AuctionStatusEnded})
		assert.NoError(t, err)

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins []string
		)
		for _, pid := range []string{"p1", "p2", "p3", "p4"} {
			wg.Add(1)
			go func(pid string) {
				defer wg.Done()
				a, err := repo.SetWinningProposal(ctx, "a1", pid, now)
				if err == nil && a.ID != "" {
					mu.Lock()
					wins = append(wins, pid)
					mu.Unlock()
				}
			}(pid)
		}
		wg.Wait()

		assert.Equal(t, 1, len(wins))
		stored, _ := repo.GetByID(ctx, "a1")
		check.Equal(t, wins[0], stored.WinningProposalID)
	})

	t.Run("SetWinningProposal requires ended status", func(t *testing.T) {
		repo := NewAuctionMemoryRepository()
		_, _ = repo.Create(ctx, entities.Auction{ID: "a1", Status: entities.AuctionStatusActive})

		a, err := repo.SetWinningProposal(ctx, "a1", "p1", now)
		check.NoError(t, err)
		check.Equal(t, "", a.ID)
	})

	t.Run("ClearWinningProposal only clears the given proposal", func(t *testing.T) {
		repo := NewAuctionMemoryRepository()
		_, _ = repo.Create(ctx, entities.Auction{ID: "a1", Status: entities.AuctionStatusEnded})
		_, _ = repo.SetWinningProposal(ctx, "a1", "p1", now)

		check.NoError(t, repo.ClearWinningProposal(ctx, "a1", "p2"))
		stored, _ := repo.GetByID(ctx, "a1")
		check.Equal(t, "p1", stored.WinningProposalID)

		check.NoError(t, repo.ClearWinningProposal(ctx, "a1", "p1"))
		stored, _ = repo.GetByID(ctx, "a1")
		check.Equal(t, "", stored.WinningProposalID)
	})

	t.Run("Create rejects duplicate ids", func(t *testing.T) {
		repo := NewAuctionMemoryRepository()
		_, err := repo.Create(ctx, entities.Auction{ID: "a1"})
		assert.NoError(t, err)
		_, err = repo.Create(ctx, entities.Auction{ID: "a1"})
		check.Error(t, err)
	})
}

func TestAuctionMemoryRepository_Queries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewAuctionMemoryRepository()

	seed := []entities.Auction{
		{ID: "expired", SwapID: "s1", Status: entities.AuctionStatusActive, CreatedAt: now.Add(-3 * time.Hour),
			Settings: entities.AuctionSettings{EndDate: now.Add(-time.Minute)}},
		{ID: "running", SwapID: "s2", Status: entities.AuctionStatusActive, CreatedAt: now.Add(-2 * time.Hour),
			Settings: entities.AuctionSettings{EndDate: now.Add(time.Hour)}},
		{ID: "old", SwapID: "s2", Status: entities.AuctionStatusCancelled, CreatedAt: now.Add(-time.Hour),
			Settings: entities.AuctionSettings{EndDate: now.Add(-time.Hour)}},
		{ID: "decided", SwapID: "s3", Status: entities.AuctionStatusEnded, WinningProposalID: "p1", CreatedAt: now},
	}
	for _, a := range seed {
		_, err := repo.Create(ctx, a)
		assert.NoError(t, err)
	}

	t.Run("ListExpired returns active auctions past their end date", func(t *testing.T) {
		got, err := repo.ListExpired(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(got))
		check.Equal(t, "expired", got[0].ID)
	})

	t.Run("List filters by status and winner", func(t *testing.T) {
		active, err := repo.List(ctx, entities.AuctionFilter{Status: entities.AuctionStatusActive})
		assert.NoError(t, err)
		check.Equal(t, 2, len(active))

		yes := true
		withWinner, err := repo.List(ctx, entities.AuctionFilter{HasWinner: &yes})
		assert.NoError(t, err)
		assert.Equal(t, 1, len(withWinner))
		check.Equal(t, "decided", withWinner[0].ID)
	})

	t.Run("GetBySwapID prefers the active auction", func(t *testing.T) {
		got, err := repo.GetBySwapID(ctx, "s2")
		assert.NoError(t, err)
		check.Equal(t, "running", got.ID)

		none, err := repo.GetBySwapID(ctx, "unknown")
		assert.NoError(t, err)
		check.Equal(t, "", none.ID)
	})
}

func TestProposalMemoryRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewProposalMemoryRepository()

	for i, id := range []string{"p3", "p1", "p2"} {
		_, err := repo.Create(ctx, entities.Proposal{
			ID: id, AuctionID: "a1", ProposerID: "u" + id,
			Status: entities.ProposalStatusPending, SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		})
		assert.NoError(t, err)
	}
	_, _ = repo.Create(ctx, entities.Proposal{ID: "other", AuctionID: "a2", Status: entities.ProposalStatusPending})

	t.Run("List keeps submission order", func(t *testing.T) {
		got, err := repo.List(ctx, entities.ProposalFilter{AuctionID: "a1"})
		assert.NoError(t, err)
		assert.Equal(t, 3, len(got))
		check.Equal(t, "p3", got[0].ID)
		check.Equal(t, "p1", got[1].ID)
		check.Equal(t, "p2", got[2].ID)
	})

	t.Run("UpdateStatus is guarded by the current status", func(t *testing.T) {
		accepted, err := repo.UpdateStatus(ctx, "p1", entities.ProposalStatusPending, entities.ProposalStatusAccepted)
		assert.NoError(t, err)
		check.Equal(t, entities.ProposalStatusAccepted, accepted.Status)

		again, err := repo.UpdateStatus(ctx, "p1", entities.ProposalStatusPending, entities.ProposalStatusRejected)
		assert.NoError(t, err)
		check.Equal(t, "", again.ID)

		pending, err := repo.List(ctx, entities.ProposalFilter{AuctionID: "a1", Status: entities.ProposalStatusPending})
		assert.NoError(t, err)
		check.Equal(t, 2, len(pending))
	})
}
